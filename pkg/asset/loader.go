package asset

import (
	"fmt"
	"image"
	"io/fs"
	"log"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type loaded struct {
	sprite *Sprite
	img    image.Image
}

// Loader decodes sprite images off the game goroutine. Results queue up
// until Poll applies them, so readiness only ever changes between ticks.
type Loader struct {
	fsys    fs.FS
	done    chan loaded
	pending int
}

// NewLoader reads images from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys: fsys,
		done: make(chan loaded, 16),
	}
}

// Load starts decoding path into s. When path is empty or the decode fails
// the fallback image is used instead. A nil fallback leaves the sprite
// pending forever after a failure.
func (l *Loader) Load(s *Sprite, path string, fallback func() image.Image) {
	l.pending++
	go func() {
		img, err := l.decode(path)
		if err != nil {
			if path != "" {
				log.Printf("Warning: could not load sprite '%s': %v", s.Name(), err)
			}
			if fallback != nil {
				img = fallback()
			}
		}
		l.done <- loaded{sprite: s, img: img}
	}()
}

func (l *Loader) decode(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no image path")
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Poll applies every finished load without blocking and returns how many
// sprites became ready.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case r := <-l.done:
			l.pending--
			if r.img == nil {
				continue
			}
			r.sprite.Resolve(r.img)
			n++
		default:
			return n
		}
	}
}

// Pending is the number of loads not yet applied by Poll
func (l *Loader) Pending() int {
	return l.pending
}
