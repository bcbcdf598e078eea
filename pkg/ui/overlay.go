package ui

import (
	"image/color"

	"github.com/golangdaddy/patroldodge/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudColor  = color.RGBA{255, 255, 255, 255}
	winColor  = color.RGBA{80, 220, 120, 255}
	lossColor = color.RGBA{240, 70, 60, 255}
)

// DrawHUD draws the remaining time in the panel starting at x
func DrawHUD(screen *ebiten.Image, hud sim.HUD, x float64) {
	DrawTextAt(screen, hud.Remaining, x+12, 16, 16, hudColor)
}

// DrawResult draws the result banner over the play area once the run is
// decided. hint is shown below it when non-empty.
func DrawResult(screen *ebiten.Image, hud sim.HUD, outcome sim.Outcome, playW, playH float64, hint string) {
	if !hud.ResultVisible() {
		return
	}

	clr := lossColor
	if outcome == sim.Win {
		clr = winColor
	}

	vector.FillRect(screen, 0, float32(playH/2-40), float32(playW), 80, color.RGBA{0, 0, 0, 170}, false)
	DrawText(screen, hud.Result, playW/2, playH/2-8, 32, clr)
	if hint != "" {
		DrawText(screen, hint, playW/2, playH/2+24, 12, hintColor)
	}
}
