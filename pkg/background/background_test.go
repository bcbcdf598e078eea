package background

import (
	"image/color"
	"testing"
	"testing/fstest"
	"time"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/config"
)

func TestGenerateRoadTilesSeamlessly(t *testing.T) {
	g := NewGenerator(300, 600)
	img := g.GenerateRoad(42, 5)
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 600 {
		t.Fatalf("unexpected bounds %v", b)
	}

	// Lane markings must be identical on the first and last dash period so
	// stacked tiles line up.
	white := color.RGBA{230, 230, 230, 255}
	verge := 300 / 12
	laneW := float64(300-2*verge) / 5
	x := verge + int(laneW+0.5)
	if img.RGBAAt(x, 0) != white {
		t.Fatalf("expected a dash at the top of lane line x=%d, got %v", x, img.RGBAAt(x, 0))
	}
	if img.RGBAAt(x, 599) == white {
		t.Fatal("dash should end before the tile's bottom edge")
	}
}

func TestGenerateRoadIsDeterministic(t *testing.T) {
	g := NewGenerator(64, 120)
	a := g.GenerateRoad(7, 3)
	b := g.GenerateRoad(7, 3)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("same seed produced different pixels at %d", i)
		}
	}
}

func TestGenerateRoadSingleLane(t *testing.T) {
	img := NewGenerator(40, 40).GenerateRoad(1, 1)
	if img.Bounds().Dx() != 40 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestGenerateCars(t *testing.T) {
	car := GenerateCar(color.RGBA{200, 20, 20, 255})
	if b := car.Bounds(); b.Dx() != 30 || b.Dy() != 50 {
		t.Fatalf("unexpected car bounds %v", b)
	}
	if car.RGBAAt(15, 30) != (color.RGBA{200, 20, 20, 255}) {
		t.Fatalf("body colour missing, got %v", car.RGBAAt(15, 30))
	}
	if car.RGBAAt(0, 0) != (color.RGBA{20, 20, 20, 255}) {
		t.Fatal("outline missing")
	}

	patrol := GeneratePatrol()
	if patrol.RGBAAt(6, 23) != (color.RGBA{220, 30, 30, 255}) {
		t.Fatalf("light bar missing, got %v", patrol.RGBAAt(6, 23))
	}
}

func TestLoadSpritesFallsBackToGenerated(t *testing.T) {
	cfg := config.Default()
	cfg.Assets = config.Assets{Road: "missing/road.jpg"}

	l := asset.NewLoader(fstest.MapFS{})
	sprites := LoadSprites(l, cfg)

	deadline := time.Now().Add(time.Second)
	for l.Pending() > 0 && time.Now().Before(deadline) {
		l.Poll()
		time.Sleep(time.Millisecond)
	}

	for _, s := range []*asset.Sprite{sprites.Road, sprites.Player, sprites.Patrol} {
		if !s.Ready() {
			t.Fatalf("sprite %s still pending", s.Name())
		}
	}
	if w, h := sprites.Road.Size(); w != float64(cfg.PlayWidth) || h != float64(cfg.PlayHeight) {
		t.Fatalf("road fallback should match the play area, got %vx%v", w, h)
	}
	if w, h := sprites.Patrol.Size(); w != 30 || h != 50 {
		t.Fatalf("unexpected patrol size %vx%v", w, h)
	}
}
