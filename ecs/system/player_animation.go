package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// airborneSpeed is the vertical speed in px/s above which the player counts
// as jumping or falling.
const airborneSpeed = 20.0

// PlayerAnimationSystem picks the player's animation state from its input
// and vertical velocity, and flips the sprite toward the move direction.
type PlayerAnimationSystem struct{}

func NewPlayerAnimationSystem() *PlayerAnimationSystem {
	return &PlayerAnimationSystem{}
}

func (p *PlayerAnimationSystem) Update(w *ecs.World) {
	e, ok := w.Singletons().Player(w)
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}

	moveX := 0.0
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		moveX = input.MoveX
	}
	vy := 0.0
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		vy = body.Body.Velocity().Y
	}

	anim.SetState(PlayerAnimationState(moveX, vy))

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		if moveX < 0 {
			sprite.FacingLeft = true
		} else if moveX > 0 {
			sprite.FacingLeft = false
		}
	}
}

// PlayerAnimationState maps horizontal input and vertical velocity (y down)
// to an animation state.
func PlayerAnimationState(moveX, vy float64) component.AnimationState {
	switch {
	case vy < -airborneSpeed:
		return component.AnimationJump
	case vy > airborneSpeed:
		return component.AnimationFall
	case moveX != 0:
		return component.AnimationRun
	default:
		return component.AnimationIdle
	}
}
