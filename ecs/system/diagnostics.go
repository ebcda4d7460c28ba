package system

import (
	"github.com/milk9111/platformer/ecs"
	"go.uber.org/zap"
)

const defaultDiagnosticsHistory = 120

// FrameDiagnostics keeps a rolling window of per-frame frame rates.
type FrameDiagnostics struct {
	samples []float64
	next    int
	count   int
	sum     float64
	last    float64
}

func NewFrameDiagnostics(historyLength int) *FrameDiagnostics {
	if historyLength <= 0 {
		historyLength = defaultDiagnosticsHistory
	}
	return &FrameDiagnostics{samples: make([]float64, historyLength)}
}

// Record adds one frame interval in seconds. Non-positive intervals carry
// no rate information and are dropped.
func (d *FrameDiagnostics) Record(dt float64) {
	if d == nil || dt <= 0 {
		return
	}
	fps := 1 / dt
	if d.count == len(d.samples) {
		d.sum -= d.samples[d.next]
	} else {
		d.count++
	}
	d.samples[d.next] = fps
	d.sum += fps
	d.next = (d.next + 1) % len(d.samples)
	d.last = dt
}

// Average returns the mean frame rate over the window. ok is false until at
// least one sample has been recorded.
func (d *FrameDiagnostics) Average() (float64, bool) {
	if d == nil || d.count == 0 {
		return 0, false
	}
	return d.sum / float64(d.count), true
}

// FrameTime returns the last recorded frame interval in seconds.
func (d *FrameDiagnostics) FrameTime() (float64, bool) {
	if d == nil || d.count == 0 {
		return 0, false
	}
	return d.last, true
}

func (d *FrameDiagnostics) Update(w *ecs.World) {
	d.Record(w.Time().Delta())
}

// DiagnosticsLogSystem writes the frame rate to the log at a fixed interval
// of frame time.
type DiagnosticsLogSystem struct {
	diag     *FrameDiagnostics
	logger   *zap.Logger
	interval float64
	elapsed  float64
}

func NewDiagnosticsLogSystem(diag *FrameDiagnostics, interval float64, logger *zap.Logger) *DiagnosticsLogSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 1
	}
	return &DiagnosticsLogSystem{
		diag:     diag,
		logger:   logger.Named("diagnostics"),
		interval: interval,
	}
}

func (s *DiagnosticsLogSystem) Update(w *ecs.World) {
	s.elapsed += w.Time().Delta()
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0

	fps, ok := s.diag.Average()
	if !ok {
		return
	}
	frameTime, _ := s.diag.FrameTime()
	s.logger.Info("frame diagnostics",
		zap.Float64("fps", fps),
		zap.Float64("frame_time_ms", frameTime*1000),
		zap.Uint64("frame", w.Time().Frame()),
	)
}
