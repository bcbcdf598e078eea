// Package render is the drawing contract between the simulation and a
// backend. The simulation only issues calls on a Surface; it never owns the
// window or terminal behind it.
package render

import (
	"image/color"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/geom"
)

// Surface is a 2D drawing target
type Surface interface {
	// Clear wipes the whole play area
	Clear()
	// DrawSprite draws s stretched into r with the given opacity
	DrawSprite(s *asset.Sprite, r geom.Rect, alpha float64)
	// FillCircle draws a filled circle with the given opacity
	FillCircle(center geom.Vec, radius float64, clr color.Color, alpha float64)
}

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpClear OpKind = iota
	OpSprite
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpSprite:
		return "sprite"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	Sprite *asset.Sprite
	Rect   geom.Rect
	Center geom.Vec
	Radius float64
	Color  color.Color
	Alpha  float64
}

// List records the draw calls of a frame so a backend can replay them later,
// e.g. from ebiten's Draw after the tick ran in Update.
type List struct {
	ops []Op
}

// Clear drops everything recorded and records the clear itself
func (l *List) Clear() {
	l.ops = append(l.ops[:0], Op{Kind: OpClear})
}

func (l *List) DrawSprite(s *asset.Sprite, r geom.Rect, alpha float64) {
	l.ops = append(l.ops, Op{Kind: OpSprite, Sprite: s, Rect: r, Alpha: alpha})
}

func (l *List) FillCircle(center geom.Vec, radius float64, clr color.Color, alpha float64) {
	l.ops = append(l.ops, Op{Kind: OpCircle, Center: center, Radius: radius, Color: clr, Alpha: alpha})
}

// Ops returns the recorded calls in order
func (l *List) Ops() []Op {
	return l.ops
}

// Len is the number of recorded calls
func (l *List) Len() int {
	return len(l.ops)
}

// Count returns how many calls of kind k were recorded
func (l *List) Count(k OpKind) int {
	n := 0
	for _, op := range l.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets everything without recording a clear
func (l *List) Reset() {
	l.ops = l.ops[:0]
}

// Replay issues every recorded call on dst in order
func (l *List) Replay(dst Surface) {
	for _, op := range l.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpSprite:
			dst.DrawSprite(op.Sprite, op.Rect, op.Alpha)
		case OpCircle:
			dst.FillCircle(op.Center, op.Radius, op.Color, op.Alpha)
		}
	}
}
