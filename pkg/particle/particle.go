// Package particle implements the crash explosion: bursts of small fading
// circles thrown out from the centre of a wrecked car.
package particle

import (
	"image/color"
	"math/rand"

	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/render"
	"golang.org/x/image/colornames"
)

const (
	// FadeStep is how much alpha a particle loses per update
	FadeStep = 0.01
	// maxRadius bounds the random particle size
	maxRadius = 3.0
	// maxSpread bounds the random per-axis speed factor
	maxSpread = 6.0
)

var _ entity.Entity = (*Particle)(nil)

// palette is what a burning particle flickers between
var palette = []color.Color{colornames.Red, colornames.Orange}

// Particle is a short-lived dot that fades out linearly
type Particle struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Alpha  float64
	rng    *rand.Rand
}

// New creates a particle at pos. rng picks the flicker colour on each draw.
func New(pos, vel geom.Vec, radius float64, rng *rand.Rand) *Particle {
	return &Particle{Pos: pos, Vel: vel, Radius: radius, Alpha: 1, rng: rng}
}

// Draw renders the particle in a random fire colour
func (p *Particle) Draw(dst render.Surface) {
	dst.FillCircle(p.Pos, p.Radius, palette[p.rng.Intn(len(palette))], p.Alpha)
}

// Update draws, fades by FadeStep and moves the particle. Alpha never drops
// below zero.
func (p *Particle) Update(dst render.Surface, _ entity.Clock) {
	p.Draw(dst)
	p.Alpha -= FadeStep
	if p.Alpha < 0 {
		p.Alpha = 0
	}
	p.Pos = p.Pos.Add(p.Vel)
}

// Alive reports whether the particle is still visible
func (p *Particle) Alive() bool {
	return p.Alpha > 0
}

// Explode appends count particles centred on r to ps
func Explode(ps []*Particle, r geom.Rect, count int, rng *rand.Rand) []*Particle {
	c := r.Center()
	for i := 0; i < count; i++ {
		vel := geom.Vec{
			X: (rng.Float64() - 0.5) * (rng.Float64() * maxSpread),
			Y: (rng.Float64() - 0.5) * (rng.Float64() * maxSpread),
		}
		ps = append(ps, New(c, vel, rng.Float64()*maxRadius, rng))
	}
	return ps
}
