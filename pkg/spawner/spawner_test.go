package spawner

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/entity"
)

// fixed always returns the same draw
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

// seq replays draws in a loop
type seq struct {
	vals []float64
	i    int
}

func (s *seq) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestLaneThresholds(t *testing.T) {
	lp := NewLanePicker(5, 300, fixed(0))
	tests := []struct {
		u    float64
		lane int
	}{
		{0, 1}, {0.19, 1}, {0.39, 2}, {0.4, 3},
		{0.6, 4}, {0.79, 4}, {0.8, 5}, {0.999999, 5},

		// Equal-width slices: a boundary value opens the next lane, and the
		// narrow bands between the classic 0.20/0.21 style cut-offs belong
		// to the lane they sit in rather than falling through to lane 5.
		{0.2, 2}, {0.205, 2}, {0.405, 3}, {0.605, 4}, {0.805, 5},
	}
	for _, tt := range tests {
		if got := lp.laneFor(tt.u); got != tt.lane {
			t.Errorf("laneFor(%v) = %d, want %d", tt.u, got, tt.lane)
		}
	}
}

func TestPickNeverRepeats(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		lp := NewLanePicker(5, 300, rand.New(rand.NewSource(seed)))
		prev := 0
		for i := 0; i < 2000; i++ {
			lane, x := lp.Pick()
			if lane == prev {
				t.Fatalf("seed %d: lane %d picked twice in a row at draw %d", seed, lane, i)
			}
			if lane < 1 || lane > 5 {
				t.Fatalf("lane %d out of range", lane)
			}
			if x != float64(lane-1)*60 {
				t.Fatalf("lane %d at x=%v, want %v", lane, x, float64(lane-1)*60)
			}
			prev = lane
		}
	}
}

func TestPickResamplesRepeat(t *testing.T) {
	// 0.1 maps to lane 1 twice, then 0.5 maps to lane 3.
	lp := NewLanePicker(5, 300, &seq{vals: []float64{0.1, 0.1, 0.5}})
	if lane, _ := lp.Pick(); lane != 1 {
		t.Fatalf("first pick should be lane 1, got %d", lane)
	}
	if lane, _ := lp.Pick(); lane != 3 {
		t.Fatalf("repeat should be resampled to lane 3, got %d", lane)
	}
}

func TestPickStuckSourceStillAlternates(t *testing.T) {
	lp := NewLanePicker(5, 300, fixed(0.95))
	prev := 0
	for i := 0; i < 10; i++ {
		lane, _ := lp.Pick()
		if lane == prev {
			t.Fatalf("stuck source repeated lane %d", lane)
		}
		prev = lane
	}
}

func TestAdvanceSpawnsEveryInterval(t *testing.T) {
	s := New(50, asset.Blank("patrol", 10, 20), 1, NewLanePicker(5, 300, fixed(0.3)))
	gap, spawns := 0, 0
	var at []int
	for tick := 1; tick <= 200; tick++ {
		var due bool
		gap, due = s.Advance(gap)
		if due {
			spawns++
			at = append(at, tick)
			if gap != 0 {
				t.Fatalf("counter should reset after spawn, got %d", gap)
			}
		}
	}
	if spawns != 4 || at[0] != 50 || at[3] != 200 {
		t.Fatalf("expected spawns at 50,100,150,200, got %v", at)
	}
}

func TestSpawnUsesPickedLane(t *testing.T) {
	s := New(50, asset.Blank("patrol", 10, 20), 1.75, NewLanePicker(5, 300, &seq{vals: []float64{0.5, 0.9}}))
	a := s.Spawn(entity.Clock{Frames: 100})
	b := s.Spawn(entity.Clock{Frames: 150})
	if a.Lane != 3 || a.Pos.X != 120 {
		t.Fatalf("unexpected first patrol lane=%d x=%v", a.Lane, a.Pos.X)
	}
	if b.Lane != 5 || b.Pos.X != 240 {
		t.Fatalf("unexpected second patrol lane=%d x=%v", b.Lane, b.Pos.X)
	}
	if a.VelY != 11 || b.VelY != 11.5 {
		t.Fatalf("unexpected speeds %v %v", a.VelY, b.VelY)
	}
}
