// Package terminal plays a session in a text terminal. Terminals report
// key presses but no releases, so a steering key counts as held until its
// auto-repeat stops for holdTicks.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/render"
	"github.com/golangdaddy/patroldodge/pkg/sim"
)

const holdTicks = 20

// Options configure a terminal run
type Options struct {
	Config  *config.Config
	Loader  *asset.Loader // nil when the sprites are already resolved
	Sprites sim.Sprites
	Hooks   sim.Hooks
	Screen  tcell.Screen // an initialised screen; nil opens the real terminal
}

// Terminal runs sessions on a tcell screen
type Terminal struct {
	opts    Options
	screen  tcell.Screen
	keys    keymap
	session *sim.Session
	frame   render.List
	grid    *Grid
	held    [2]int // ticks left per direction
	status  string
}

// New opens the screen and starts the first session
func New(opts Options) (*Terminal, error) {
	keys, err := newKeymap(opts.Config.Keys)
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("failed to init terminal: %w", err)
		}
	}

	t := &Terminal{
		opts:   opts,
		screen: screen,
		keys:   keys,
	}
	t.resize()
	if err := t.start(); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func (t *Terminal) start() error {
	so := sim.Options{Hooks: t.opts.Hooks}
	if t.opts.Loader != nil {
		so.Assets = t.opts.Loader
	}
	session, err := sim.NewSession(t.opts.Config, t.opts.Sprites, so)
	if err != nil {
		return err
	}
	t.session = session
	t.held = [2]int{}
	t.status = ""
	t.frame.Reset()
	return nil
}

// resize fits the play area into the screen, keeping the last row for status
func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	cfg := t.opts.Config

	// Cells are roughly twice as tall as wide
	gridRows := max(rows-1, 1)
	gridCols := min(cols, gridRows*2*cfg.PlayWidth/cfg.PlayHeight)
	if t.grid == nil {
		t.grid = NewGrid(gridCols, gridRows, float64(cfg.PlayWidth), float64(cfg.PlayHeight))
		return
	}
	t.grid.Resize(gridCols, gridRows, float64(cfg.PlayWidth), float64(cfg.PlayHeight))
}

// Run drives the session at the configured tick rate until the player quits
func (t *Terminal) Run() error {
	defer t.screen.Fini()

	ticker := time.NewTicker(time.Second / time.Duration(t.opts.Config.TicksPerSecond))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(t.screen, events, done)

	for {
		select {
		case ev := <-events:
			quit, err := t.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			t.tick()
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one event and reports whether the player quit
func (t *Terminal) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}

		if t.session.Phase() == sim.Stopped {
			switch {
			case ev.Key() == tcell.KeyEnter:
				return false, t.start()
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C'):
				t.copySummary()
				return false, nil
			}
		}

		if d, ok := t.keys.direction(ev); ok {
			t.session.Press(d)
			t.held[d] = holdTicks
			t.held[1-d] = 0
		}

	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return false, nil
}

// tick releases keys whose repeats stopped, then advances the session
func (t *Terminal) tick() {
	for d := range t.held {
		if t.held[d] == 0 {
			continue
		}
		t.held[d]--
		if t.held[d] == 0 {
			t.session.Release(sim.Direction(d))
		}
	}
	t.session.Tick(&t.frame)
}

func (t *Terminal) copySummary() {
	if err := clipboard.WriteAll(t.session.Summary().String()); err != nil {
		log.Printf("Failed to copy run summary: %v", err)
		t.status = "copy failed"
		return
	}
	t.status = "summary copied"
}

func (t *Terminal) draw() {
	t.frame.Replay(t.grid)
	t.grid.Flush(t.screen)

	_, rows := t.grid.Size()
	cols, _ := t.screen.Size()
	t.drawStatus(rows, cols)
	t.screen.Show()
}

func (t *Terminal) drawStatus(row, width int) {
	hud := t.session.HUD()
	line := hud.Remaining
	if hud.ResultVisible() {
		line += "  " + hud.Result
	}
	if t.session.Phase() == sim.Stopped {
		if t.status != "" {
			line += "  " + t.status
		} else {
			line += "  ENTER: again  C: copy  ESC: quit"
		}
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if t.session.Outcome() == sim.Loss {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	} else if t.session.Outcome() == sim.Win {
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}

	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}
