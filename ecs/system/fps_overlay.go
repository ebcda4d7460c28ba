package system

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// FPSOverlaySystem writes the averaged frame rate into every FPS overlay
// text. Without a sample the text is left as it is.
type FPSOverlaySystem struct {
	diag *FrameDiagnostics
}

func NewFPSOverlaySystem(diag *FrameDiagnostics) *FPSOverlaySystem {
	return &FPSOverlaySystem{diag: diag}
}

func (s *FPSOverlaySystem) Update(w *ecs.World) {
	fps, ok := s.diag.Average()
	if !ok {
		return
	}
	label := FormatFPS(fps)
	ecs.ForEach2(w, component.FPSOverlayTagComponent.Kind(), component.TextComponent.Kind(), func(_ ecs.Entity, _ *component.FPSOverlayTag, text *component.Text) {
		text.Value = label
	})
}

// FormatFPS renders a frame rate rounded to a whole number.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("FPS: %.0f", fps)
}
