package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuOption is an entry of the main menu
type MenuOption int

const (
	MenuStart MenuOption = iota
	MenuRecords
	MenuQuit
	menuOptionCount
)

func (o MenuOption) String() string {
	switch o {
	case MenuStart:
		return "Start"
	case MenuRecords:
		return "Records"
	case MenuQuit:
		return "Quit"
	}
	return ""
}

// cycle moves the selection by delta, wrapping at both ends
func (o MenuOption) cycle(delta int) MenuOption {
	n := int(menuOptionCount)
	return MenuOption(((int(o)+delta)%n + n) % n)
}

// MenuScreen represents the main menu
type MenuScreen struct {
	selected MenuOption
	onSelect func(MenuOption) // Callback when an option is chosen
}

// NewMenuScreen creates a new menu screen
func NewMenuScreen(onSelect func(MenuOption)) *MenuScreen {
	return &MenuScreen{
		selected: MenuStart,
		onSelect: onSelect,
	}
}

// Selected is the highlighted option
func (ms *MenuScreen) Selected() MenuOption {
	return ms.selected
}

// Update handles input for the menu screen
func (ms *MenuScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ms.selected = ms.selected.cycle(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ms.selected = ms.selected.cycle(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ms.onSelect != nil {
			ms.onSelect(ms.selected)
		}
	}
	return nil
}

// Draw renders the menu screen
func (ms *MenuScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	DrawText(screen, "PATROL DODGE", float64(width)/2, float64(height)/4, 48, titleColor)

	buttonWidth := 240.0
	buttonHeight := 50.0
	spacing := 70.0
	x := float64(width)/2 - buttonWidth/2
	y := float64(height) / 2
	for o := MenuStart; o < menuOptionCount; o++ {
		drawButton(screen, o.String(), x, y+spacing*float64(o), buttonWidth, buttonHeight, o == ms.selected)
	}

	DrawText(screen, "Arrow Keys: Navigate | Enter: Select", float64(width)/2, float64(height)-50, 16, hintColor)
}
