// Package sim runs one dodge session: a single-threaded tick that moves the
// road, the player, the patrols and the explosion particles, checks for
// crashes and decides the run.
package sim

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/particle"
	"github.com/golangdaddy/patroldodge/pkg/render"
	"github.com/golangdaddy/patroldodge/pkg/road"
	"github.com/golangdaddy/patroldodge/pkg/spawner"
	"github.com/golangdaddy/patroldodge/pkg/vehicle"
)

// Sprites are the three shared images of a session
type Sprites struct {
	Road   *asset.Sprite
	Player *asset.Sprite
	Patrol *asset.Sprite
}

// Poller applies finished asset loads; *asset.Loader fits
type Poller interface {
	Poll() int
}

// Summary describes a run for hooks and records
type Summary struct {
	Outcome    Outcome
	Seconds    int
	Frames     int
	LapSeconds int
	Patrols    int // patrols spawned during the run
}

func (s Summary) String() string {
	return fmt.Sprintf("%s after %ds of %ds (%d patrols)", s.Outcome, s.Seconds, s.LapSeconds, s.Patrols)
}

// Hooks are optional callbacks fired on transitions, from inside Tick
type Hooks struct {
	OnCrash  func(Summary)
	OnFinish func(Summary)
}

// Options are the optional collaborators of a session
type Options struct {
	Rand   *rand.Rand // nil seeds from cfg.Seed, or the clock when that is 0
	Assets Poller     // polled at the start of every live tick
	Hooks  Hooks
}

// Session is one run from start to a decided, stopped state
type Session struct {
	cfg   *config.Config
	opts  Options
	rng   *rand.Rand
	clock entity.Clock
	phase Phase

	outcome   Outcome
	stopDelay int
	lostTicks int
	spawned   int

	controls  Controls
	hud       HUD
	player    *vehicle.Player
	road      *road.Road
	patrols   []*vehicle.Patrol
	particles []*particle.Particle
	spawner   *spawner.Spawner
	picker    *spawner.LanePicker
}

// NewSession validates cfg and places the road and the player. Both stay
// inert until their sprites are ready.
func NewSession(cfg *config.Config, sprites Sprites, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sprites.Road == nil || sprites.Player == nil || sprites.Patrol == nil {
		return nil, fmt.Errorf("%w: all three sprites are required", config.ErrInvalid)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	w, h := float64(cfg.PlayWidth), float64(cfg.PlayHeight)
	s := &Session{
		cfg:       cfg,
		opts:      opts,
		rng:       rng,
		stopDelay: cfg.StopDelayTicks(),
		hud:       HUD{Remaining: remainingText(cfg.LapSeconds)},
		player:    vehicle.NewPlayer(sprites.Player, cfg.PlayerScale, w, h, cfg.PlayerStep),
		road:      road.New(sprites.Road, w, h, cfg.ScrollIncrement, cfg.RampInterval),
	}
	s.picker = spawner.NewLanePicker(cfg.Lanes, w, rng)
	s.spawner = spawner.New(cfg.SpawnInterval, sprites.Patrol, cfg.PatrolScale, s.picker)
	return s, nil
}

// Press registers a key-down for d. Ignored once the run is decided.
func (s *Session) Press(d Direction) {
	if s.phase.Terminal() {
		return
	}
	s.controls.Press(d)
}

// Release registers a key-up for d
func (s *Session) Release(d Direction) {
	if s.phase.Terminal() {
		return
	}
	s.controls.Release(d)
}

// Tick advances the session by one frame, issuing its draw calls on dst.
// After a crash the explosion keeps animating, with road and patrols
// frozen, until the stop delay runs out. A stopped session ignores Tick.
func (s *Session) Tick(dst render.Surface) {
	switch s.phase {
	case Stopped:
		return
	case Won:
		s.stop()
		return
	case Lost:
		if s.lostTicks >= s.stopDelay {
			s.stop()
			return
		}
		s.lostTicks++
	}

	if s.opts.Assets != nil {
		s.opts.Assets.Poll()
	}

	live := s.phase == Running
	dst.Clear()

	if live {
		s.road.Update(dst, s.clock)
		s.player.Update(dst, s.clock)
	} else {
		s.road.Draw(dst)
		s.player.Draw(dst)
	}

	s.particles = entity.Retain(s.particles, func(p *particle.Particle) bool {
		if !p.Alive() {
			return false
		}
		p.Update(dst, s.clock)
		return true
	})

	if live {
		s.player.Steer(s.controls.Left, s.controls.Right)
	}

	height := float64(s.cfg.PlayHeight)
	s.patrols = entity.Retain(s.patrols, func(p *vehicle.Patrol) bool {
		if p.Passed(height) {
			return false
		}
		if !live {
			p.Draw(dst)
			return true
		}
		p.Update(dst, s.clock)
		if s.phase == Running && s.collides(p) {
			s.crash(p)
		}
		return p.Alive()
	})

	if s.phase != Running {
		return
	}

	var due bool
	s.clock.SpawnGap, due = s.spawner.Advance(s.clock.SpawnGap)
	if due {
		s.patrols = append(s.patrols, s.spawner.Spawn(s.clock))
		s.spawned++
	}
	s.clock.Frames++

	if s.clock.Frames%s.cfg.TicksPerSecond == 0 {
		s.clock.Seconds++
		s.hud.Remaining = remainingText(s.cfg.LapSeconds - s.clock.Seconds)
	}

	if s.clock.Seconds >= s.cfg.LapSeconds {
		s.finish()
	}
}

func (s *Session) collides(p *vehicle.Patrol) bool {
	return s.player.Ready() && p.Ready() && geom.Overlaps(p.Rect(), s.player.Rect())
}

// crash is the running -> lost transition for patrol p
func (s *Session) crash(p *vehicle.Patrol) {
	s.phase = Lost
	s.outcome = Loss
	s.player.SetAlpha(0)
	s.particles = particle.Explode(s.particles, s.player.Rect(), s.cfg.BurstParticles, s.rng)
	s.particles = particle.Explode(s.particles, p.Rect(), s.cfg.BurstParticles, s.rng)
	p.Wreck()
	s.hud.Result = s.outcome.Message()

	summary := s.Summary()
	log.Printf("Crashed into patrol in lane %d: %s", p.Lane, summary)
	if s.opts.Hooks.OnCrash != nil {
		s.opts.Hooks.OnCrash(summary)
	}
	if s.opts.Hooks.OnFinish != nil {
		s.opts.Hooks.OnFinish(summary)
	}
}

// finish is the running -> won transition
func (s *Session) finish() {
	s.phase = Won
	s.outcome = Win
	s.hud.Result = s.outcome.Message()

	summary := s.Summary()
	log.Printf("Lap complete: %s", summary)
	if s.opts.Hooks.OnFinish != nil {
		s.opts.Hooks.OnFinish(summary)
	}
}

func (s *Session) stop() {
	s.phase = Stopped
	s.controls = Controls{}
}

// Phase is the current lifecycle phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Outcome is Undecided while running
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Clock returns a copy of the frame counters
func (s *Session) Clock() entity.Clock {
	return s.clock
}

// RemainingSeconds is the lap limit minus the elapsed seconds
func (s *Session) RemainingSeconds() int {
	return s.cfg.LapSeconds - s.clock.Seconds
}

// HUD returns the current status text
func (s *Session) HUD() HUD {
	return s.hud
}

// Controls returns the current steering flags
func (s *Session) Controls() Controls {
	return s.controls
}

func (s *Session) Player() *vehicle.Player {
	return s.player
}

func (s *Session) Road() *road.Road {
	return s.road
}

// Patrols returns the live patrols in spawn order. Do not keep the slice
// across ticks.
func (s *Session) Patrols() []*vehicle.Patrol {
	return s.patrols
}

// Particles returns the live explosion particles. Do not keep the slice
// across ticks.
func (s *Session) Particles() []*particle.Particle {
	return s.particles
}

// Config is the configuration the session was built with
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Summary describes the run so far
func (s *Session) Summary() Summary {
	return Summary{
		Outcome:    s.outcome,
		Seconds:    s.clock.Seconds,
		Frames:     s.clock.Frames,
		LapSeconds: s.cfg.LapSeconds,
		Patrols:    s.spawned,
	}
}
