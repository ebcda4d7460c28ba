package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Action is a logical input independent of the physical key bound to it.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionQuit
)

// KeySource reports whether any key bound to an action is held down.
type KeySource interface {
	Pressed(action Action) bool
}

// InputSystem samples the key source once per frame and writes the result
// into every Input component.
type InputSystem struct {
	keys KeySource
	quit bool
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.keys == nil {
		return
	}

	moveX := 0.0
	if i.keys.Pressed(ActionMoveLeft) {
		moveX -= 1
	}
	if i.keys.Pressed(ActionMoveRight) {
		moveX += 1
	}
	if i.keys.Pressed(ActionQuit) {
		i.quit = true
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
	})
}

// QuitRequested reports whether the quit action has been seen. It latches.
func (i *InputSystem) QuitRequested() bool {
	return i.quit
}
