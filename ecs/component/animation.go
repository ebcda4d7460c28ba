package component

import "fmt"

// AnimationState selects which frame range of the sheet is eligible.
type AnimationState uint8

const (
	AnimationIdle AnimationState = iota
	AnimationRun
	AnimationJump
	AnimationFall
)

var animationStateNames = [...]string{"idle", "run", "jump", "fall"}

func (s AnimationState) String() string {
	if int(s) < len(animationStateNames) {
		return animationStateNames[s]
	}
	return fmt.Sprintf("AnimationState(%d)", uint8(s))
}

// ParseAnimationState maps a prefab name to a state.
func ParseAnimationState(name string) (AnimationState, error) {
	for i, n := range animationStateNames {
		if n == name {
			return AnimationState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation state %q", name)
}

// FrameRange is an inclusive range of atlas indices.
type FrameRange struct {
	First int
	Last  int
}

func (r FrameRange) Len() int {
	return r.Last - r.First + 1
}

func (r FrameRange) Contains(index int) bool {
	return index >= r.First && index <= r.Last
}

// Animation is the sprite animator state of one entity.
type Animation struct {
	Layout *TextureAtlasLayout
	Ranges map[AnimationState]FrameRange
	State  AnimationState
	Index  int
}

// SetState switches to state and rewinds to its first frame. Setting the
// current state again is a no-op so a running cycle is not restarted.
func (a *Animation) SetState(state AnimationState) {
	if a.State == state {
		return
	}
	a.State = state
	if r, ok := a.Ranges[state]; ok {
		a.Index = r.First
	}
}

// Range returns the frame range of the active state.
func (a *Animation) Range() (FrameRange, bool) {
	r, ok := a.Ranges[a.State]
	if !ok || r.Len() <= 0 {
		return FrameRange{}, false
	}
	return r, true
}

var AnimationComponent = NewComponent[Animation]()

// FrameTimer counts down to the next frame advance.
type FrameTimer struct {
	Remaining float64
	Interval  float64
}

// NewFrameTimer returns a timer that fires after interval seconds.
func NewFrameTimer(interval float64) *FrameTimer {
	return &FrameTimer{Remaining: interval, Interval: interval}
}

var FrameTimerComponent = NewComponent[FrameTimer]()

// Advance returns the index after index, wrapping to First past Last.
func (r FrameRange) Advance(index int) int {
	if index < r.First || index >= r.Last {
		return r.First
	}
	return index + 1
}
