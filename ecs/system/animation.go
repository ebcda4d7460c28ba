package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationSystem steps sprite-sheet animations on a fixed interval.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := w.Time().Delta()
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.FrameTimerComponent.Kind(), func(e ecs.Entity, anim *component.Animation, timer *component.FrameTimer) {
		r, ok := anim.Range()
		if !ok {
			return
		}
		if !r.Contains(anim.Index) {
			anim.Index = r.First
		}

		if Tick(timer, dt) {
			anim.Index = r.Advance(anim.Index)
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if rect, ok := anim.Layout.Rect(anim.Index); ok {
				sprite.Source = rect
				sprite.UseSource = true
			}
		}
	})
}

// Tick counts timer down by dt and reports whether it fired. A fired timer
// restarts at the full interval; overshoot is dropped.
func Tick(timer *component.FrameTimer, dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	timer.Remaining -= dt
	if timer.Remaining > 0 {
		return false
	}
	timer.Remaining = timer.Interval
	if timer.Remaining < 0 {
		timer.Remaining = 0
	}
	return true
}
