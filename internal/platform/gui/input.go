package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakthrough/internal/core"
)

// DefaultBindings maps every game action to its keys.
func DefaultBindings() map[core.Action][]ebiten.Key {
	return map[core.Action][]ebiten.Key{
		core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
		core.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
		core.ActionLaunch:  {ebiten.KeySpace},
		core.ActionConfirm: {ebiten.KeyEnter},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionBack:    {ebiten.KeyEscape},
		core.ActionQuit:    {ebiten.KeyQ},
	}
}

// KeyInput polls the keyboard. Windows report key releases, so it is
// handed to the game as is; the game detects edges itself.
type KeyInput struct {
	bindings map[core.Action][]ebiten.Key
	pressed  func(ebiten.Key) bool
}

// NewKeyInput creates an input over the given bindings; nil uses
// DefaultBindings.
func NewKeyInput(bindings map[core.Action][]ebiten.Key) *KeyInput {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &KeyInput{bindings: bindings, pressed: ebiten.IsKeyPressed}
}

// Pressed implements core.Input.
func (k *KeyInput) Pressed(a core.Action) bool {
	for _, key := range k.bindings[a] {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
