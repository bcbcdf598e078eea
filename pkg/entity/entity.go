// Package entity defines what every simulated thing shares: a body in the
// play area, a readiness gate and the per-frame update contract.
package entity

import (
	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

// Clock is the frame bookkeeping of a session, passed by value into every
// update instead of living in globals.
type Clock struct {
	Frames   int // ticks since the session started
	Seconds  int // whole seconds elapsed, advanced every TicksPerSecond frames
	SpawnGap int // ticks since the last patrol spawn
}

// Entity is anything the loop advances once per frame
type Entity interface {
	// Update draws the entity and then integrates it. A no-op until ready.
	Update(dst render.Surface, clk Clock)
	// Draw renders without moving. A no-op until ready.
	Draw(dst render.Surface)
	// Alive reports whether the loop should keep the entity
	Alive() bool
}

// Body is the sprite-backed rectangle shared by road and vehicles
type Body struct {
	Pos    geom.Vec
	W, H   float64
	Sprite *asset.Sprite
	ready  bool
}

// Ready reports whether the body has been sized from its sprite
func (b *Body) Ready() bool {
	return b.ready
}

// Settle records the body size once the sprite arrived. Called from an
// asset.Sprite OnReady callback.
func (b *Body) Settle(w, h float64) {
	b.W = w
	b.H = h
	b.ready = true
}

// Rect returns the current bounding box
func (b *Body) Rect() geom.Rect {
	return geom.NewRect(b.Pos, b.W, b.H)
}

// Retain keeps the items for which keep returns true, preserving order. It
// compacts in place in a single pass so no element is skipped or visited
// twice, and clears the tail so dropped items can be collected.
func Retain[T any](items []T, keep func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
