// Package road implements the endlessly scrolling background: one texture
// tile scaled to the play width and stacked upward as often as needed.
package road

import (
	"math"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

var _ entity.Entity = (*Road)(nil)

// initialSpeed is the scroll speed in pixels per frame at session start
const initialSpeed = 1.0

// Road scrolls downward and speeds up every rampEvery frames. The speed
// never resets during a session.
type Road struct {
	entity.Body
	VelY       float64
	playHeight float64
	increment  float64
	rampEvery  int
}

// New creates the road. Once sprite is ready the tile is scaled to the play
// width and its bottom edge is aligned with the bottom of the play area.
func New(sprite *asset.Sprite, playWidth, playHeight, increment float64, rampEvery int) *Road {
	r := &Road{
		Body:       entity.Body{Sprite: sprite},
		VelY:       initialSpeed,
		playHeight: playHeight,
		increment:  increment,
		rampEvery:  rampEvery,
	}
	sprite.OnReady(func(s *asset.Sprite) {
		w, h := s.Size()
		ratio := w / playWidth
		r.Settle(w/ratio, h/ratio)
		r.Pos.Y = r.base()
	})
	return r
}

// base is the resting offset: bottom tile flush with the bottom edge
func (r *Road) base() float64 {
	return r.playHeight - r.H
}

// Tiles is how many stacked copies cover the play area
func (r *Road) Tiles() int {
	if !r.Ready() || r.H <= 0 {
		return 0
	}
	return int(math.Ceil(r.playHeight/r.H)) + 1
}

// Draw renders the tile stack from the current offset upward
func (r *Road) Draw(dst render.Surface) {
	if !r.Ready() {
		return
	}
	for i := 0; i < r.Tiles(); i++ {
		dst.DrawSprite(r.Sprite, geom.Rect{X: r.Pos.X, Y: r.Pos.Y - r.H*float64(i), W: r.W, H: r.H}, 1)
	}
}

// Update wraps the offset back by whole tiles, draws, ramps the speed on
// every rampEvery-th frame and scrolls.
func (r *Road) Update(dst render.Surface, clk entity.Clock) {
	if !r.Ready() {
		return
	}
	if over := r.Pos.Y - r.base(); over >= r.H {
		r.Pos.Y = r.base() + math.Mod(over, r.H)
	}
	r.Draw(dst)
	if r.rampEvery > 0 && clk.Frames%r.rampEvery == 0 {
		r.VelY += r.increment
	}
	r.Pos.Y += r.VelY
}

// Alive is always true; the road lasts for the whole session
func (r *Road) Alive() bool {
	return true
}
