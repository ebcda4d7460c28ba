package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewGround(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadGroundSpec()
	if err != nil {
		return 0, fmt.Errorf("ground: load spec: %w", err)
	}
	return NewGroundFromSpec(w, spec)
}

// NewGroundFromSpec spawns a static platform centred on the spec transform.
func NewGroundFromSpec(w *ecs.World, spec *prefabs.GroundSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("ground: nil spec")
	}

	ground := ecs.CreateEntity(w)
	if err := ecs.Add(w, ground, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add tag: %w", err)
	}
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), transformFromSpec(spec.Transform)); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.PhysicsBodyComponent.Kind(), physicsBodyFromSpec(spec.Collider, true)); err != nil {
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	return ground, nil
}
