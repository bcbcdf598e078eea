package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bitmapfont glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

var (
	buttonColor      = color.RGBA{40, 40, 60, 255}
	buttonHighlight  = color.RGBA{60, 100, 140, 255}
	buttonText       = color.RGBA{255, 255, 255, 255}
	buttonTextActive = color.RGBA{200, 240, 255, 255}
	borderColor      = color.RGBA{80, 80, 100, 255}
	titleColor       = color.RGBA{255, 200, 50, 255}
	hintColor        = color.RGBA{150, 150, 150, 255}
)

// DrawText draws str centred on (centerX, centerY) at the given pixel size
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextAt draws str with its top-left corner at (x, y)
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawButton draws a bordered button with its label centred
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, active bool) {
	bg, fg := buttonColor, buttonText
	if active {
		bg, fg = buttonHighlight, buttonTextActive
	}

	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x+1), float32(y+1), float32(width-2), float32(height-2), 2, borderColor, false)

	DrawText(screen, label, x+width/2, y+height/2, glyphHeight, fg)
}
