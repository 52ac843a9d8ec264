// Package resource keeps named assets (textures, sounds) behind opaque
// handles. The simulation stores handles on its objects and never touches
// the assets; frontends register the concrete values they know how to use.
package resource

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when a name has not been registered.
var ErrNotFound = errors.New("resource: not found")

// Handle identifies a registered resource. The zero Handle is invalid.
type Handle uint32

// Valid reports whether h refers to a registered resource.
func (h Handle) Valid() bool {
	return h != 0
}

// Resolver maps resource names to handles.
type Resolver interface {
	Lookup(name string) (Handle, error)
}

// Table is a name -> value registry with handle lookup.
// It is safe for concurrent use.
type Table[T any] struct {
	mu     sync.RWMutex
	byName map[string]Handle
	values []T
	names  []string
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		byName: make(map[string]Handle),
	}
}

// Register stores a value under name and returns its handle.
// Registering an existing name replaces the value and keeps the handle.
func (t *Table[T]) Register(name string, v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byName[name]; ok {
		t.values[h-1] = v
		return h
	}

	t.values = append(t.values, v)
	t.names = append(t.names, name)
	h := Handle(len(t.values))
	t.byName[name] = h
	return h
}

// Lookup returns the handle registered under name.
func (t *Table[T]) Lookup(name string) (Handle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return h, nil
}

// Get returns the value behind a handle.
func (t *Table[T]) Get(h Handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var zero T
	if !h.Valid() || int(h) > len(t.values) {
		return zero, false
	}
	return t.values[h-1], true
}

// MustGet is Get for handles that were resolved at startup. An unknown
// handle panics.
func (t *Table[T]) MustGet(h Handle) T {
	v, ok := t.Get(h)
	if !ok {
		panic(fmt.Sprintf("resource: invalid handle %d", h))
	}
	return v
}

// Name returns the name a handle was registered under.
func (t *Table[T]) Name(h Handle) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !h.Valid() || int(h) > len(t.names) {
		return ""
	}
	return t.names[h-1]
}

// Names returns all registered names in sorted order.
func (t *Table[T]) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.names))
	copy(names, t.names)
	sort.Strings(names)
	return names
}

// Len returns the number of registered resources.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// LookupAll resolves every name and fails on the first missing one.
func LookupAll(r Resolver, names ...string) (map[string]Handle, error) {
	out := make(map[string]Handle, len(names))
	for _, name := range names {
		h, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		out[name] = h
	}
	return out, nil
}

// Names shared between the simulation and its frontends.
const (
	TextureBackground    = "background"
	TextureFace          = "face"
	TextureBlock         = "block"
	TextureBlockSolid    = "block_solid"
	TexturePaddle        = "paddle"
	TextureParticle      = "particle"
	TexturePowerSpeed    = "powerup_speed"
	TexturePowerSticky   = "powerup_sticky"
	TexturePowerPassThru = "powerup_passthrough"
	TexturePowerIncrease = "powerup_increase"
	TexturePowerConfuse  = "powerup_confuse"
	TexturePowerChaos    = "powerup_chaos"
	SoundBleep           = "bleep"
	SoundSolid           = "solid"
	SoundPowerUp         = "powerup"
	SoundMusic           = "breakout"
)

// TextureNames lists every texture the game requires.
var TextureNames = []string{
	TextureBackground, TextureFace, TextureBlock, TextureBlockSolid,
	TexturePaddle, TextureParticle,
	TexturePowerSpeed, TexturePowerSticky, TexturePowerPassThru,
	TexturePowerIncrease, TexturePowerConfuse, TexturePowerChaos,
}

// SoundNames lists every sound the game requires.
var SoundNames = []string{SoundBleep, SoundSolid, SoundPowerUp, SoundMusic}
