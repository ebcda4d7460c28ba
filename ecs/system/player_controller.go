package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

const defaultPlayerMoveSpeed = 300.0

// PlayerControllerSystem moves the player horizontally by its input
// direction. Vertical motion is left to physics.
type PlayerControllerSystem struct {
	logger *zap.Logger
	player presence
}

func NewPlayerControllerSystem(logger *zap.Logger) *PlayerControllerSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlayerControllerSystem{
		logger: logger.Named("player_controller"),
		player: presence{what: "player"},
	}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := w.Singletons().Player(w)
	if !p.player.check(p.logger, ok) {
		return
	}

	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	speed := defaultPlayerMoveSpeed
	if pc, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && pc.MoveSpeed > 0 {
		speed = pc.MoveSpeed
	}

	transform.X += input.MoveX * speed * w.Time().Delta()
}
