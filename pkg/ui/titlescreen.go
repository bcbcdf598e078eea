package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title, 1.0 to 1.1
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	DrawText(screen, "PATROL", centerX, centerY-40, 64*pulse, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	DrawText(screen, "DODGE", centerX, centerY+30, 64*pulse, color.RGBA{
		uint8(220 * brightness),
		uint8(40 * brightness),
		uint8(40 * brightness),
		255,
	})

	DrawText(screen, "Outrun the lap", centerX, centerY+100, 24, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER to Start", centerX, float64(height)-100, 20, color.RGBA{150, 200, 255, 255})
	}

	drawSirens(screen, width, height, elapsed)
}

// drawSirens draws the alternating red and blue bars framing the title
func drawSirens(screen *ebiten.Image, width, height int, elapsed float64) {
	red := color.RGBA{200, 30, 30, 160}
	blue := color.RGBA{30, 80, 230, 160}
	if int(elapsed*4)%2 == 1 {
		red, blue = blue, red
	}

	half := float32(width) / 2
	top := float32(height) / 6
	bottom := float32(height) * 5 / 6
	vector.FillRect(screen, 0, top, half, 2, red, false)
	vector.FillRect(screen, half, top, half, 2, blue, false)
	vector.FillRect(screen, 0, bottom, half, 2, blue, false)
	vector.FillRect(screen, half, bottom, half, 2, red, false)
}
