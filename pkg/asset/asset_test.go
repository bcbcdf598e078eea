package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// pollUntil drains the loader until want sprites resolved or a second passes.
func pollUntil(t *testing.T, l *Loader, want int) {
	t.Helper()
	got := 0
	deadline := time.Now().Add(time.Second)
	for l.Pending() > 0 && time.Now().Before(deadline) {
		got += l.Poll()
		time.Sleep(time.Millisecond)
	}
	if got != want {
		t.Fatalf("expected %d sprites resolved, got %d (pending %d)", want, got, l.Pending())
	}
}

func TestSpritePendingUntilResolved(t *testing.T) {
	s := NewSprite("car")
	if s.Ready() {
		t.Fatal("new sprite should be pending")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Fatalf("pending sprite should have zero size, got %vx%v", w, h)
	}

	calls := 0
	s.OnReady(func(*Sprite) { calls++ })
	if calls != 0 {
		t.Fatal("callback ran before resolve")
	}

	s.Resolve(image.NewRGBA(image.Rect(0, 0, 20, 30)))
	if !s.Ready() || calls != 1 {
		t.Fatalf("expected ready with one callback, ready=%v calls=%d", s.Ready(), calls)
	}
	if w, h := s.Size(); w != 20 || h != 30 {
		t.Fatalf("expected 20x30, got %vx%v", w, h)
	}

	// Late subscribers run immediately, a second resolve is ignored.
	s.OnReady(func(*Sprite) { calls++ })
	s.Resolve(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if calls != 2 {
		t.Fatalf("expected late callback to run once, calls=%d", calls)
	}
	if w, _ := s.Size(); w != 20 {
		t.Fatal("second resolve replaced the image")
	}
}

func TestLoaderResolvesOnlyOnPoll(t *testing.T) {
	fsys := fstest.MapFS{"img/car.png": {Data: pngBytes(t, 12, 24)}}
	l := NewLoader(fsys)
	s := NewSprite("car")
	l.Load(s, "img/car.png", nil)

	// Give the decoder time to finish; the sprite must still be pending.
	time.Sleep(20 * time.Millisecond)
	if s.Ready() {
		t.Fatal("sprite became ready before Poll")
	}

	pollUntil(t, l, 1)
	if w, h := s.Size(); w != 12 || h != 24 {
		t.Fatalf("expected 12x24, got %vx%v", w, h)
	}
}

func TestLoaderFallsBack(t *testing.T) {
	l := NewLoader(fstest.MapFS{"bad.png": {Data: []byte("not an image")}})
	missing := NewSprite("road")
	broken := NewSprite("patrol")
	fallback := func() image.Image { return image.NewRGBA(image.Rect(0, 0, 8, 8)) }

	l.Load(missing, "nowhere.png", fallback)
	l.Load(broken, "bad.png", fallback)
	pollUntil(t, l, 2)

	if !missing.Ready() || !broken.Ready() {
		t.Fatal("fallback sprites should be ready")
	}
}

func TestLoaderWithoutFallbackStaysPending(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	s := NewSprite("player")
	l.Load(s, "missing.png", nil)
	pollUntil(t, l, 0)
	if s.Ready() {
		t.Fatal("sprite without image or fallback should stay pending")
	}
}
