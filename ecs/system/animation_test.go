package system

import (
	"image"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addAnimated(t *testing.T, w *ecs.World, interval float64) (ecs.Entity, *component.Animation, *component.FrameTimer) {
	t.Helper()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{
		Layout: component.NewTextureAtlasLayout(16, 16, 14, 4),
		Ranges: map[component.AnimationState]component.FrameRange{
			component.AnimationIdle: {First: 0, Last: 13},
			component.AnimationRun:  {First: 14, Last: 27},
		},
		State: component.AnimationIdle,
	}
	timer := component.NewFrameTimer(interval)
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))
	require.NoError(t, ecs.Add(w, e, component.FrameTimerComponent.Kind(), timer))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Sheet: "player.png"}))
	return e, anim, timer
}

func TestAnimationSingleLongFrame(t *testing.T) {
	w := ecs.NewWorld()
	e, anim, timer := addAnimated(t, w, 0.5)

	step(w, 0.6, NewAnimationSystem())

	assert.Equal(t, 1, anim.Index)
	assert.Equal(t, 0.5, timer.Remaining, "overshoot is not carried")

	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	require.True(t, ok)
	assert.True(t, sprite.UseSource)
	assert.Equal(t, image.Rect(16, 0, 32, 16), sprite.Source)
}

func TestAnimationWrapsAfterFullCycle(t *testing.T) {
	w := ecs.NewWorld()
	_, anim, _ := addAnimated(t, w, 0.5)
	sys := NewAnimationSystem()

	for i := 0; i < 14; i++ {
		step(w, 0.5, sys)
		assert.True(t, anim.Index >= 0 && anim.Index <= 13, "index %d out of range", anim.Index)
	}
	assert.Equal(t, 0, anim.Index)
}

func TestAnimationTimerNeverNegative(t *testing.T) {
	w := ecs.NewWorld()
	_, anim, timer := addAnimated(t, w, 0.5)
	sys := NewAnimationSystem()

	for _, dt := range []float64{0.1, 0.7, 3.0, 0.49, 0.01, 0} {
		before := anim.Index
		step(w, dt, sys)
		assert.GreaterOrEqual(t, timer.Remaining, 0.0)
		assert.LessOrEqual(t, timer.Remaining, timer.Interval)
		if anim.Index != before {
			assert.Equal(t, timer.Interval, timer.Remaining)
		}
	}
}

func TestAnimationOneAdvancePerUpdate(t *testing.T) {
	w := ecs.NewWorld()
	_, anim, _ := addAnimated(t, w, 0.5)

	step(w, 10, NewAnimationSystem())

	assert.Equal(t, 1, anim.Index)
}

func TestAnimationSnapsOutOfRangeIndex(t *testing.T) {
	w := ecs.NewWorld()
	_, anim, _ := addAnimated(t, w, 0.5)
	anim.State = component.AnimationRun
	anim.Index = 3

	step(w, 0.1, NewAnimationSystem())

	assert.Equal(t, 14, anim.Index)
}

func TestTick(t *testing.T) {
	tests := []struct {
		name      string
		timer     component.FrameTimer
		dt        float64
		fired     bool
		remaining float64
	}{
		{"counts_down", component.FrameTimer{Remaining: 0.5, Interval: 0.5}, 0.2, false, 0.3},
		{"exact", component.FrameTimer{Remaining: 0.5, Interval: 0.5}, 0.5, true, 0.5},
		{"overshoot", component.FrameTimer{Remaining: 0.1, Interval: 0.5}, 0.4, true, 0.5},
		{"negative_dt", component.FrameTimer{Remaining: 0.5, Interval: 0.5}, -1, false, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := tt.timer
			assert.Equal(t, tt.fired, Tick(&timer, tt.dt))
			assert.InDelta(t, tt.remaining, timer.Remaining, 1e-9)
		})
	}
}

func TestPlayerAnimationState(t *testing.T) {
	tests := []struct {
		name  string
		moveX float64
		vy    float64
		want  component.AnimationState
	}{
		{"idle", 0, 0, component.AnimationIdle},
		{"run", 1, 0, component.AnimationRun},
		{"rising", 1, -300, component.AnimationJump},
		{"falling", 0, 300, component.AnimationFall},
		{"resting_jitter", 0, 5, component.AnimationIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlayerAnimationState(tt.moveX, tt.vy))
		})
	}
}

func TestPlayerAnimationSystemFlipsSprite(t *testing.T) {
	w := ecs.NewWorld()
	e, anim, _ := addAnimated(t, w, 0.5)
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	w.Singletons().SetPlayer(e)

	sys := NewPlayerAnimationSystem()
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

	step(w, 0.1, NewInputSystem(fakeKeys{ActionMoveLeft: true}), sys)
	assert.Equal(t, component.AnimationRun, anim.State)
	assert.Equal(t, 14, anim.Index)
	assert.True(t, sprite.FacingLeft)

	step(w, 0.1, NewInputSystem(fakeKeys{}), sys)
	assert.Equal(t, component.AnimationIdle, anim.State)
	assert.True(t, sprite.FacingLeft, "facing is kept while idle")

	step(w, 0.1, NewInputSystem(fakeKeys{ActionMoveRight: true}), sys)
	assert.False(t, sprite.FacingLeft)
}
