package game

import (
	"image"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/golangdaddy/patroldodge/pkg/render"
	"github.com/golangdaddy/patroldodge/pkg/sim"
	"github.com/golangdaddy/patroldodge/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudWidth is the status panel to the right of the play area
const hudWidth = 200

var panelColor = color.RGBA{25, 25, 35, 255}

// GameplayScreen runs sessions until the player leaves
type GameplayScreen struct {
	opts      Options
	keys      Bindings
	session   *sim.Session
	frame     render.List // draw calls of the last tick
	canvas    *Canvas
	copied    bool
	onGameEnd func() // Callback when the player leaves
}

// NewGameplayScreen creates a gameplay screen and starts the first run
func NewGameplayScreen(opts Options, keys Bindings, onGameEnd func()) (*GameplayScreen, error) {
	gs := &GameplayScreen{
		opts:      opts,
		keys:      keys,
		canvas:    NewCanvas(),
		onGameEnd: onGameEnd,
	}
	if err := gs.start(); err != nil {
		return nil, err
	}
	return gs, nil
}

func (gs *GameplayScreen) start() error {
	so := sim.Options{Hooks: gs.opts.Hooks}
	if gs.opts.Loader != nil {
		so.Assets = gs.opts.Loader
	}
	session, err := sim.NewSession(gs.opts.Config, gs.opts.Sprites, so)
	if err != nil {
		return err
	}
	gs.session = session
	gs.frame.Reset()
	gs.copied = false
	return nil
}

// Update feeds key edges into the session and ticks it once
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}

	if gs.session.Phase() == sim.Stopped {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return gs.start()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			gs.copySummary()
		}
	}

	held := [2]bool{anyPressed(gs.keys.Left), anyPressed(gs.keys.Right)}
	fresh := [2]bool{anyJustPressed(gs.keys.Left), anyJustPressed(gs.keys.Right)}
	syncSteering(gs.session, held, fresh)
	gs.session.Tick(&gs.frame)
	return nil
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// syncSteering makes the session's steering flags follow the keys held this
// tick, indexed by sim.Direction. A direction pressed this tick takes over
// from the other; when neither flag is set, any held direction is picked up.
func syncSteering(s *sim.Session, held, fresh [2]bool) {
	dirs := [2]sim.Direction{sim.Left, sim.Right}

	c := s.Controls()
	if !held[sim.Left] && c.Left {
		s.Release(sim.Left)
	}
	if !held[sim.Right] && c.Right {
		s.Release(sim.Right)
	}

	for _, d := range dirs {
		if held[d] && fresh[d] {
			s.Press(d)
		}
	}

	if c = s.Controls(); c.Left || c.Right {
		return
	}
	for _, d := range dirs {
		if held[d] {
			s.Press(d)
			return
		}
	}
}

func (gs *GameplayScreen) copySummary() {
	summary := gs.session.Summary().String()
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("Failed to copy run summary: %v", err)
		return
	}
	gs.copied = true
}

// Draw replays the last tick and draws the status panel
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	cfg := gs.opts.Config
	playW, playH := float64(cfg.PlayWidth), float64(cfg.PlayHeight)

	play := screen.SubImage(image.Rect(0, 0, cfg.PlayWidth, cfg.PlayHeight)).(*ebiten.Image)
	gs.frame.Replay(gs.canvas.Bind(play))

	vector.FillRect(screen, float32(playW), 0, hudWidth, float32(playH), panelColor, false)
	ui.DrawHUD(screen, gs.session.HUD(), playW)

	ui.DrawResult(screen, gs.session.HUD(), gs.session.Outcome(), playW, playH, gs.hint())
}

func (gs *GameplayScreen) hint() string {
	switch {
	case gs.session.Phase() != sim.Stopped:
		return ""
	case gs.copied:
		return "Summary copied"
	}
	return "ENTER: again  C: copy  ESC: menu"
}
