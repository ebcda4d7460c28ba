package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

// NewCameraFromSpec spawns the camera and registers it as the world's camera.
func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	if cameraSpec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), transformFromSpec(cameraSpec.Transform)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	w.Singletons().SetCamera(camera)
	return camera, nil
}
