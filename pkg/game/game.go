package game

import (
	"log"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/models"
	"github.com/golangdaddy/patroldodge/pkg/sim"
	"github.com/golangdaddy/patroldodge/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options are the shared collaborators of every screen
type Options struct {
	Config  *config.Config
	Loader  *asset.Loader // polled by every session tick
	Sprites sim.Sprites   // shared by every run
	Record  *models.Record
	Hooks   sim.Hooks
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	keys          Bindings
	currentScreen Screen
	quit          bool
}

// NewGame creates a new game instance starting on the title screen
func NewGame(opts Options) (*Game, error) {
	keys, err := NewBindings(opts.Config.Keys)
	if err != nil {
		return nil, err
	}

	game := &Game{
		opts: opts,
		keys: keys,
	}
	game.showTitle()
	return game, nil
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.showMenu)
}

func (g *Game) showMenu() {
	g.currentScreen = ui.NewMenuScreen(func(o ui.MenuOption) {
		switch o {
		case ui.MenuStart:
			g.startGameplay()
		case ui.MenuRecords:
			g.currentScreen = ui.NewRecordsScreen(g.opts.Record, g.showMenu)
		case ui.MenuQuit:
			g.quit = true
		}
	})
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay() {
	gs, err := NewGameplayScreen(g.opts, g.keys, g.showTitle)
	if err != nil {
		log.Printf("Failed to start run: %v", err)
		return
	}
	g.currentScreen = gs
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout is the play area plus the status panel
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Config.PlayWidth + hudWidth, g.opts.Config.PlayHeight
}
