package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

func TestParticleFadesByFixedStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := New(geom.Vec{X: 10, Y: 10}, geom.Vec{X: 1, Y: -1}, 2, rng)
	var l render.List

	updates := 0
	prev := p.Alpha
	for p.Alive() {
		l.Reset()
		p.Update(&l, entity.Clock{})
		updates++

		op := l.Ops()[0]
		if op.Kind != render.OpCircle || op.Alpha <= 0 {
			t.Fatalf("update %d drew %+v", updates, op)
		}
		if p.Alpha >= prev {
			t.Fatalf("alpha did not decrease: %v -> %v", prev, p.Alpha)
		}
		if p.Alpha > 0 && math.Abs(prev-p.Alpha-FadeStep) > 1e-9 {
			t.Fatalf("alpha step %v, want %v", prev-p.Alpha, FadeStep)
		}
		prev = p.Alpha
		if updates > 200 {
			t.Fatal("particle never faded out")
		}
	}

	if p.Alpha != 0 {
		t.Fatalf("faded particle should sit at 0 alpha, got %v", p.Alpha)
	}
	if updates < 100 || updates > 101 {
		t.Fatalf("expected about 100 updates, got %d", updates)
	}
	if p.Pos.X != 10+float64(updates) || p.Pos.Y != 10-float64(updates) {
		t.Fatalf("unexpected position %v after %d updates", p.Pos, updates)
	}
}

func TestExplodeCentresBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	r := geom.Rect{X: 100, Y: 200, W: 40, H: 60}

	ps := Explode(nil, r, 300, rng)
	ps = Explode(ps, r, 300, rng)
	if len(ps) != 600 {
		t.Fatalf("expected 600 particles, got %d", len(ps))
	}
	for _, p := range ps {
		if p.Pos.X != 120 || p.Pos.Y != 230 {
			t.Fatalf("particle not at rect centre: %v", p.Pos)
		}
		if p.Radius < 0 || p.Radius >= maxRadius {
			t.Fatalf("radius %v out of range", p.Radius)
		}
		if math.Abs(p.Vel.X) > maxSpread/2 || math.Abs(p.Vel.Y) > maxSpread/2 {
			t.Fatalf("velocity %v out of range", p.Vel)
		}
		if p.Alpha != 1 {
			t.Fatalf("new particle alpha %v", p.Alpha)
		}
	}
}
