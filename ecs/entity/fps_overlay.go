package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewFPSOverlay(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadOverlaySpec()
	if err != nil {
		return 0, fmt.Errorf("fps overlay: load spec: %w", err)
	}
	return NewFPSOverlayFromSpec(w, spec)
}

// NewFPSOverlayFromSpec spawns the screen-space FPS label.
func NewFPSOverlayFromSpec(w *ecs.World, spec *prefabs.OverlaySpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("fps overlay: nil spec")
	}

	var c color.Color = color.White
	if spec.Color.Color != nil {
		c = spec.Color.Color
	}

	overlay := ecs.CreateEntity(w)
	if err := ecs.Add(w, overlay, component.FPSOverlayTagComponent.Kind(), &component.FPSOverlayTag{}); err != nil {
		return 0, fmt.Errorf("fps overlay: add tag: %w", err)
	}
	if err := ecs.Add(w, overlay, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("fps overlay: add screen space: %w", err)
	}
	if err := ecs.Add(w, overlay, component.ScreenAnchorComponent.Kind(), &component.ScreenAnchor{X: spec.OffsetX, Y: spec.OffsetY}); err != nil {
		return 0, fmt.Errorf("fps overlay: add anchor: %w", err)
	}
	if err := ecs.Add(w, overlay, component.TextComponent.Kind(), &component.Text{Value: spec.Placeholder, Color: c}); err != nil {
		return 0, fmt.Errorf("fps overlay: add text: %w", err)
	}

	w.Singletons().SetOverlay(overlay)
	return overlay, nil
}
