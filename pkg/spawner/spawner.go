// Package spawner decides when a patrol enters the road and in which lane.
package spawner

import (
	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/vehicle"
)

// maxDraws caps how often Pick resamples before stepping to the next lane
const maxDraws = 16

// Source is the random stream lane selection draws from; *rand.Rand fits
type Source interface {
	Float64() float64
}

// LanePicker splits the play width into equal lanes and never returns the
// same lane twice in a row.
type LanePicker struct {
	lanes     int
	laneWidth float64
	rng       Source
	prev      int // 1-based, 0 before the first pick
}

// NewLanePicker needs at least two lanes to be able to alternate
func NewLanePicker(lanes int, playWidth float64, rng Source) *LanePicker {
	return &LanePicker{
		lanes:     lanes,
		laneWidth: playWidth / float64(lanes),
		rng:       rng,
	}
}

// laneFor maps u in [0, 1) onto lanes 1..N in equal slices
func (lp *LanePicker) laneFor(u float64) int {
	lane := int(u*float64(lp.lanes)) + 1
	if lane > lp.lanes {
		lane = lp.lanes
	}
	if lane < 1 {
		lane = 1
	}
	return lane
}

// Pick returns a 1-based lane and the x of its left edge
func (lp *LanePicker) Pick() (lane int, x float64) {
	lane = lp.prev
	for i := 0; i < maxDraws && lane == lp.prev; i++ {
		lane = lp.laneFor(lp.rng.Float64())
	}
	if lane == lp.prev {
		lane = lp.prev%lp.lanes + 1
	}
	lp.prev = lane
	return lane, lp.LaneX(lane)
}

// LaneX is the left edge of a 1-based lane
func (lp *LanePicker) LaneX(lane int) float64 {
	return float64(lane-1) * lp.laneWidth
}

// Prev is the last lane picked, 0 if none yet
func (lp *LanePicker) Prev() int {
	return lp.prev
}

// Spawner emits one patrol every interval ticks of its own counter
type Spawner struct {
	interval int
	scale    float64
	sprite   *asset.Sprite
	picker   *LanePicker
}

func New(interval int, sprite *asset.Sprite, scale float64, picker *LanePicker) *Spawner {
	return &Spawner{
		interval: interval,
		scale:    scale,
		sprite:   sprite,
		picker:   picker,
	}
}

// Advance moves the spawn counter on by one tick. It reports a spawn when
// the counter reaches the interval, and then restarts it from zero.
func (s *Spawner) Advance(gap int) (next int, due bool) {
	next = gap + 1
	if next >= s.interval {
		return 0, true
	}
	return next, false
}

// Spawn creates a patrol in a fresh lane
func (s *Spawner) Spawn(clk entity.Clock) *vehicle.Patrol {
	lane, x := s.picker.Pick()
	return vehicle.NewPatrol(s.sprite, s.scale, lane, x, clk)
}
