package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const defaultFrameInterval = 0.5

func transformFromSpec(spec prefabs.TransformSpec) *component.Transform {
	t := &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

// AnimationFromSpec builds the animator and its frame timer. Every state
// range must fit inside the atlas and the initial state must be defined.
func AnimationFromSpec(spec prefabs.AnimationSpec) (*component.Animation, *component.FrameTimer, error) {
	layout := component.NewTextureAtlasLayout(spec.CellWidth, spec.CellHeight, spec.Columns, spec.Rows)
	if layout == nil {
		return nil, nil, fmt.Errorf("animation: invalid atlas %dx%d cells of %dx%d", spec.Columns, spec.Rows, spec.CellWidth, spec.CellHeight)
	}

	ranges := make(map[component.AnimationState]component.FrameRange, len(spec.States))
	for name, r := range spec.States {
		state, err := component.ParseAnimationState(name)
		if err != nil {
			return nil, nil, fmt.Errorf("animation: %w", err)
		}
		fr := component.FrameRange{First: r.First, Last: r.Last}
		if fr.Len() <= 0 || fr.First < 0 || fr.Last >= layout.Len() {
			return nil, nil, fmt.Errorf("animation: state %s range [%d,%d] outside atlas of %d frames", name, r.First, r.Last, layout.Len())
		}
		ranges[state] = fr
	}

	initialName := spec.Initial
	if initialName == "" {
		initialName = component.AnimationIdle.String()
	}
	initial, err := component.ParseAnimationState(initialName)
	if err != nil {
		return nil, nil, fmt.Errorf("animation: initial: %w", err)
	}
	start, ok := ranges[initial]
	if !ok {
		return nil, nil, fmt.Errorf("animation: initial state %s has no frame range", initial)
	}

	interval := spec.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	anim := &component.Animation{
		Layout: layout,
		Ranges: ranges,
		State:  initial,
		Index:  start.First,
	}
	return anim, component.NewFrameTimer(interval), nil
}

func physicsBodyFromSpec(spec prefabs.ColliderSpec, static bool) *component.PhysicsBody {
	return &component.PhysicsBody{
		Width:        spec.Width,
		Height:       spec.Height,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Elasticity:   spec.Elasticity,
		Static:       static,
		LockRotation: !static,
	}
}
