package game

import (
	"image/color"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var clearColor = color.RGBA{10, 10, 14, 255}

// Canvas replays a frame's draw calls onto an ebiten image. Sprites are
// uploaded to the GPU once and reused.
type Canvas struct {
	screen   *ebiten.Image
	textures map[*asset.Sprite]*ebiten.Image
}

// NewCanvas creates an empty canvas
func NewCanvas() *Canvas {
	return &Canvas{
		textures: make(map[*asset.Sprite]*ebiten.Image),
	}
}

// Bind sets the image the next calls draw on
func (c *Canvas) Bind(screen *ebiten.Image) *Canvas {
	c.screen = screen
	return c
}

func (c *Canvas) Clear() {
	c.screen.Fill(clearColor)
}

func (c *Canvas) DrawSprite(s *asset.Sprite, r geom.Rect, alpha float64) {
	tex := c.texture(s)
	if tex == nil {
		return
	}

	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(tex, op)
}

func (c *Canvas) FillCircle(center geom.Vec, radius float64, clr color.Color, alpha float64) {
	r, g, b, a := clr.RGBA()
	k := alpha
	faded := color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
	vector.FillCircle(c.screen, float32(center.X), float32(center.Y), float32(radius), faded, true)
}

func (c *Canvas) texture(s *asset.Sprite) *ebiten.Image {
	if tex, ok := c.textures[s]; ok {
		return tex
	}
	if !s.Ready() {
		return nil
	}
	tex := ebiten.NewImageFromImage(s.Image())
	c.textures[s] = tex
	return tex
}
