package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec)
}

// NewPlayerFromSpec spawns the player and registers it as the world's player.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	anim, timer, err := AnimationFromSpec(spec.Animation)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), transformFromSpec(spec.Transform)); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	sprite := &component.Sprite{
		Sheet:   spec.Sprite.Image,
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}
	if rect, ok := anim.Layout.Rect(anim.Index); ok {
		sprite.Source = rect
		sprite.UseSource = true
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, player, component.FrameTimerComponent.Kind(), timer); err != nil {
		return 0, fmt.Errorf("player: add frame timer: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), physicsBodyFromSpec(spec.Collider, false)); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.GravityScale}); err != nil {
		return 0, fmt.Errorf("player: add gravity scale: %w", err)
	}

	w.Singletons().SetPlayer(player)
	return player, nil
}

// ApplyPlayerSpec re-applies tuning from spec to a live player: move speed,
// gravity scale, frame interval and animation ranges. Position, velocity and
// the active state are kept; the frame index is snapped into the new range.
func ApplyPlayerSpec(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	if !ecs.IsAlive(w, player) {
		return fmt.Errorf("player: apply spec: %w", component.ErrEntityNotAlive)
	}
	anim, timer, err := AnimationFromSpec(spec.Animation)
	if err != nil {
		return fmt.Errorf("player: apply spec: %w", err)
	}

	if pc, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		pc.MoveSpeed = spec.MoveSpeed
	}
	if gs, ok := ecs.Get(w, player, component.GravityScaleComponent.Kind()); ok {
		gs.Scale = spec.GravityScale
	}
	if cur, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		cur.Layout = anim.Layout
		cur.Ranges = anim.Ranges
		if r, ok := cur.Range(); !ok || !r.Contains(cur.Index) {
			cur.State = anim.State
			cur.Index = anim.Index
		}
	}
	if cur, ok := ecs.Get(w, player, component.FrameTimerComponent.Kind()); ok {
		cur.Interval = timer.Interval
		if cur.Remaining > cur.Interval {
			cur.Remaining = cur.Interval
		}
	}
	return nil
}
