// Package asset gates entities on their images. A Sprite starts pending and
// becomes ready exactly once; everything that draws or moves checks Ready
// first, so an entity whose image never arrives simply stays inert.
package asset

import (
	"image"
)

// Sprite is a shared image handle with a Pending -> Ready state
type Sprite struct {
	name    string
	img     image.Image
	ready   bool
	waiting []func(*Sprite)
}

// NewSprite returns a pending sprite
func NewSprite(name string) *Sprite {
	return &Sprite{name: name}
}

// Blank returns a sprite that is already ready with an empty image of the
// given size. Handy for tests and for headless runs.
func Blank(name string, w, h int) *Sprite {
	s := NewSprite(name)
	s.Resolve(image.NewRGBA(image.Rect(0, 0, w, h)))
	return s
}

func (s *Sprite) Name() string {
	return s.name
}

// Ready reports whether the image has arrived
func (s *Sprite) Ready() bool {
	return s.ready
}

// Image returns the decoded image, nil while pending
func (s *Sprite) Image() image.Image {
	return s.img
}

// Size returns the natural image size in pixels, zero while pending
func (s *Sprite) Size() (w, h float64) {
	if !s.ready {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// OnReady runs fn once the sprite is ready. If it already is, fn runs now.
func (s *Sprite) OnReady(fn func(*Sprite)) {
	if s.ready {
		fn(s)
		return
	}
	s.waiting = append(s.waiting, fn)
}

// Resolve marks the sprite ready and flushes the queued callbacks on the
// calling goroutine. Later calls are ignored.
func (s *Sprite) Resolve(img image.Image) {
	if s.ready || img == nil {
		return
	}
	s.img = img
	s.ready = true

	waiting := s.waiting
	s.waiting = nil
	for _, fn := range waiting {
		fn(s)
	}
}
