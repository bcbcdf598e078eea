package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/patroldodge/pkg/models"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// recordRows is how many recent runs fit on the records screen
const recordRows = 8

// RecordsScreen shows the saved run history
type RecordsScreen struct {
	record *models.Record
	onBack func()
}

// NewRecordsScreen creates a records screen for rec
func NewRecordsScreen(rec *models.Record, onBack func()) *RecordsScreen {
	return &RecordsScreen{
		record: rec,
		onBack: onBack,
	}
}

// Update returns to the previous screen on Enter or Escape
func (rs *RecordsScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if rs.onBack != nil {
			rs.onBack()
		}
	}
	return nil
}

// Draw renders the records screen
func (rs *RecordsScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	DrawText(screen, "RECORDS", float64(width)/2, 60, 40, titleColor)

	y := 120.0
	for _, line := range recordLines(rs.record) {
		DrawTextAt(screen, line, 40, y, 16, buttonText)
		y += 24
	}

	DrawText(screen, "Enter: Back", float64(width)/2, float64(height)-50, 16, hintColor)
}

func recordLines(rec *models.Record) []string {
	if rec == nil || rec.Played() == 0 {
		return []string{"No runs yet"}
	}

	lines := []string{
		fmt.Sprintf("Wins: %d   Losses: %d", rec.Wins, rec.Losses),
		fmt.Sprintf("Best survival: %ds", rec.BestSurvival),
		"",
	}
	for i, run := range rec.Recent {
		if i == recordRows {
			break
		}
		lines = append(lines, fmt.Sprintf("%s  %-4s %3ds / %ds",
			run.FinishedAt.Format("2006-01-02 15:04"), run.Outcome, run.Seconds, run.LapSeconds))
	}
	return lines
}
