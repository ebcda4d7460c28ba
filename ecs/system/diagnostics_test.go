package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func addOverlay(t *testing.T, w *ecs.World) *component.Text {
	t.Helper()
	e := ecs.CreateEntity(w)
	text := &component.Text{Value: "FPS"}
	require.NoError(t, ecs.Add(w, e, component.FPSOverlayTagComponent.Kind(), &component.FPSOverlayTag{}))
	require.NoError(t, ecs.Add(w, e, component.TextComponent.Kind(), text))
	w.Singletons().SetOverlay(e)
	return text
}

func TestFrameDiagnosticsAverage(t *testing.T) {
	d := NewFrameDiagnostics(3)

	_, ok := d.Average()
	assert.False(t, ok)

	d.Record(0)
	d.Record(-1)
	_, ok = d.Average()
	assert.False(t, ok, "non-positive intervals are dropped")

	d.Record(0.5)  // 2 fps
	d.Record(0.25) // 4 fps
	fps, ok := d.Average()
	require.True(t, ok)
	assert.InDelta(t, 3, fps, 1e-9)

	d.Record(0.1) // 10 fps
	d.Record(0.1) // evicts 2 fps
	fps, _ = d.Average()
	assert.InDelta(t, 8, fps, 1e-9)

	frameTime, ok := d.FrameTime()
	require.True(t, ok)
	assert.Equal(t, 0.1, frameTime)
}

func TestFormatFPS(t *testing.T) {
	tests := []struct {
		fps  float64
		want string
	}{
		{59.7, "FPS: 60"},
		{60, "FPS: 60"},
		{0.4, "FPS: 0"},
		{144.2, "FPS: 144"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFPS(tt.fps))
		})
	}
}

func TestFPSOverlaySystem(t *testing.T) {
	t.Run("untouched_without_sample", func(t *testing.T) {
		w := ecs.NewWorld()
		text := addOverlay(t, w)
		diag := NewFrameDiagnostics(0)

		// the first frame has no delta, so nothing is recorded
		step(w, 0, diag, NewFPSOverlaySystem(diag))
		assert.Equal(t, "FPS", text.Value)
	})

	t.Run("writes_average", func(t *testing.T) {
		w := ecs.NewWorld()
		text := addOverlay(t, w)
		diag := NewFrameDiagnostics(0)

		step(w, 1/59.7, diag, NewFPSOverlaySystem(diag))
		assert.Equal(t, "FPS: 60", text.Value)
	})
}

func TestDiagnosticsLogSystemInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := ecs.NewWorld()
	diag := NewFrameDiagnostics(0)
	sys := NewDiagnosticsLogSystem(diag, 1, zap.New(core))

	for i := 0; i < 119; i++ {
		step(w, 1.0/60, diag, sys)
	}
	// 119 frames at 60 fps crosses the 1 s interval once
	entries := logs.FilterMessage("frame diagnostics").All()
	require.Len(t, entries, 1)
	assert.InDelta(t, 60, entries[0].ContextMap()["fps"], 1e-6)
}
