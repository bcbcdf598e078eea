package vehicle

import (
	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

const (
	// patrolBaseSpeed is the downward speed of a patrol spawned on frame 0
	patrolBaseSpeed = 10.0
	// patrolRampFrames adds one pixel per frame of speed per this many frames
	patrolRampFrames = 100.0
	// spawnDrop places a fresh patrol this far below the top minus its width
	spawnDrop = 200.0
)

// Patrol is an oncoming car locked to one lane
type Patrol struct {
	Vehicle
	Lane    int
	wrecked bool
}

// NewPatrol creates a patrol in lane at x. Its speed is fixed from the frame
// count at spawn so later patrols are faster. The sprite decides its size
// and starting height once ready.
func NewPatrol(sprite *asset.Sprite, scale float64, lane int, x float64, clk entity.Clock) *Patrol {
	p := &Patrol{
		Vehicle: Vehicle{
			Body:  entity.Body{Sprite: sprite},
			VelY:  patrolBaseSpeed + float64(clk.Frames)/patrolRampFrames,
			Alpha: 1,
		},
		Lane: lane,
	}
	p.Pos.X = x
	sprite.OnReady(func(s *asset.Sprite) {
		w, h := s.Size()
		p.Settle(w*scale, h*scale)
		p.Pos.Y = spawnDrop - p.W
	})
	return p
}

func (p *Patrol) Update(dst render.Surface, _ entity.Clock) {
	if !p.Ready() {
		return
	}
	p.Draw(dst)
	p.integrate()
}

// Passed reports whether the patrol has left the bottom of the play area
func (p *Patrol) Passed(playHeight float64) bool {
	return p.Ready() && p.Pos.Y >= playHeight
}

// Wreck takes the patrol out of play after a crash
func (p *Patrol) Wreck() {
	p.wrecked = true
}

func (p *Patrol) Alive() bool {
	return !p.wrecked
}
