package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

// CameraSystem locks the camera onto the player with no lag or offset.
type CameraSystem struct {
	logger *zap.Logger
	player presence
	camera presence
}

func NewCameraSystem(logger *zap.Logger) *CameraSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CameraSystem{
		logger: logger.Named("camera"),
		player: presence{what: "player"},
		camera: presence{what: "camera"},
	}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, okPlayer := w.Singletons().Player(w)
	camera, okCamera := w.Singletons().Camera(w)
	okPlayer = cs.player.check(cs.logger, okPlayer)
	okCamera = cs.camera.check(cs.logger, okCamera)
	if !okPlayer || !okCamera {
		return
	}

	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !ok {
		return
	}

	camTransform.X = target.X
	camTransform.Y = target.Y
	camTransform.Rotation = target.Rotation
}
