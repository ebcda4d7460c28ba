package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs/system"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[system.Action][]ebiten.Key{
	system.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	system.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	system.ActionQuit:      {ebiten.KeyEscape},
}

// ebitenKeys reads the live keyboard state.
type ebitenKeys struct {
	bindings map[system.Action][]ebiten.Key
}

func newEbitenKeys() *ebitenKeys {
	return &ebitenKeys{bindings: keyBindings}
}

func (k *ebitenKeys) Pressed(action system.Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
