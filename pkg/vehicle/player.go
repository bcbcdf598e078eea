package vehicle

import (
	"math"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

// bottomMargin is the gap between the player's centre line and the bottom
// of the play area
const bottomMargin = 100.0

// Player is the car controlled by the keyboard. It only moves sideways.
type Player struct {
	Vehicle
	playWidth float64
	step      float64
}

// NewPlayer creates the player car. It stays inert until sprite is ready,
// then takes its scaled size and parks centred near the bottom edge.
func NewPlayer(sprite *asset.Sprite, scale, playWidth, playHeight, step float64) *Player {
	p := &Player{
		Vehicle: Vehicle{
			Body:  entity.Body{Sprite: sprite},
			Alpha: 1,
		},
		playWidth: playWidth,
		step:      step,
	}
	sprite.OnReady(func(s *asset.Sprite) {
		w, h := s.Size()
		p.Settle(w*scale, h*scale)
		p.Pos.X = playWidth/2 - p.W/2
		p.Pos.Y = playHeight - p.H/2 - bottomMargin
	})
	return p
}

// Update draws the car then moves it by its current velocity
func (p *Player) Update(dst render.Surface, _ entity.Clock) {
	if !p.Ready() {
		return
	}
	p.Draw(dst)
	p.integrate()
}

// Alive is always true; a crashed player only turns invisible
func (p *Player) Alive() bool {
	return true
}

// Steer sets the horizontal velocity for the next update from the input
// flags. Holding a direction accelerates by one step per frame; a turn that
// would push the car past an edge, or no input at all, stops it dead.
func (p *Player) Steer(left, right bool) {
	if !p.Ready() {
		return
	}
	if left {
		vx := math.Min(p.VelX, 0) - p.step
		if p.Pos.X+vx >= 0 {
			p.VelX = vx
			return
		}
	} else if right {
		vx := math.Max(p.VelX, 0) + p.step
		if p.Pos.X+vx+p.W <= p.playWidth {
			p.VelX = vx
			return
		}
	}
	p.VelX = 0
}
