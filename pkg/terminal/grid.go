package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/geom"
)

type cell struct {
	r     rune
	style tcell.Style
}

// Grid is a Surface that rasterises the play area into terminal cells.
// Sprites become background colours sampled at each cell centre; particles
// become glyphs.
type Grid struct {
	cols, rows     int
	scaleX, scaleY float64 // cells per play pixel
	cells          []cell
}

// NewGrid maps a playW x playH play area onto cols x rows cells
func NewGrid(cols, rows int, playW, playH float64) *Grid {
	g := &Grid{}
	g.Resize(cols, rows, playW, playH)
	return g
}

// Resize remaps the grid, e.g. after the terminal changed size
func (g *Grid) Resize(cols, rows int, playW, playH float64) {
	g.cols, g.rows = max(cols, 1), max(rows, 1)
	g.scaleX = float64(g.cols) / playW
	g.scaleY = float64(g.rows) / playH
	g.cells = make([]cell, g.cols*g.rows)
	g.Clear()
}

// Size is the grid size in cells
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault.Background(tcell.ColorBlack)}
	}
}

func (g *Grid) DrawSprite(s *asset.Sprite, r geom.Rect, alpha float64) {
	if !s.Ready() || alpha < 0.5 || r.W <= 0 || r.H <= 0 {
		return
	}
	img := s.Image()
	b := img.Bounds()

	c0, c1 := g.span(r.X, r.Right(), g.scaleX, g.cols)
	r0, r1 := g.span(r.Y, r.Bottom(), g.scaleY, g.rows)
	for cy := r0; cy < r1; cy++ {
		v := ((float64(cy)+0.5)/g.scaleY - r.Y) / r.H
		if v < 0 || v >= 1 {
			continue
		}
		for cx := c0; cx < c1; cx++ {
			u := ((float64(cx)+0.5)/g.scaleX - r.X) / r.W
			if u < 0 || u >= 1 {
				continue
			}
			px := b.Min.X + int(u*float64(b.Dx()))
			py := b.Min.Y + int(v*float64(b.Dy()))
			clr, ok := opaque(img.At(px, py))
			if !ok {
				continue
			}
			g.cells[cy*g.cols+cx] = cell{r: ' ', style: tcell.StyleDefault.Background(clr)}
		}
	}
}

func (g *Grid) FillCircle(center geom.Vec, radius float64, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	cx := int(math.Floor(center.X * g.scaleX))
	cy := int(math.Floor(center.Y * g.scaleY))
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return
	}

	r, gr, b, _ := clr.RGBA()
	fg := tcell.NewRGBColor(int32(float64(r>>8)*alpha), int32(float64(gr>>8)*alpha), int32(float64(b>>8)*alpha))
	glyph := '.'
	if alpha > 0.5 {
		glyph = '*'
	}

	c := &g.cells[cy*g.cols+cx]
	c.r = glyph
	c.style = c.style.Foreground(fg)
}

// Cell returns the glyph and style at x, y
func (g *Grid) Cell(x, y int) (rune, tcell.Style) {
	c := g.cells[y*g.cols+x]
	return c.r, c.style
}

// Flush copies the grid onto the screen starting at the top-left corner
func (g *Grid) Flush(screen tcell.Screen) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := g.cells[y*g.cols+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
}

// span converts a pixel interval to the half-open cell range it touches
func (g *Grid) span(from, to, scale float64, limit int) (int, int) {
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil(to * scale))
	return max(lo, 0), min(hi, limit)
}

func opaque(c color.Color) (tcell.Color, bool) {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return tcell.ColorDefault, false
	}
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)), true
}
