package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/audio"
	"github.com/golangdaddy/patroldodge/pkg/background"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/game"
	"github.com/golangdaddy/patroldodge/pkg/models"
	"github.com/golangdaddy/patroldodge/pkg/sim"
	"github.com/golangdaddy/patroldodge/pkg/terminal"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "JSON config file overriding the defaults")
	lap := flag.Int("lap", 0, "lap time limit in seconds")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	term := flag.Bool("term", false, "play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "disable sound")
	recordFile := flag.String("record", "", "run record file")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *lap != 0 {
		cfg.LapSeconds = *lap
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Mute = true
	}
	if *recordFile != "" {
		cfg.RecordFile = *recordFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	record, err := models.LoadOrNew(cfg.RecordFile)
	if err != nil {
		log.Printf("Warning: could not read records, starting fresh: %v", err)
		record = models.NewRecord()
	}

	sounds := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Warning: sound disabled: %v", err)
		}
	}
	defer sounds.Cleanup()

	loader := asset.NewLoader(os.DirFS("."))
	sprites := background.LoadSprites(loader, cfg)
	hooks := sim.Hooks{
		OnCrash: func(sim.Summary) {
			sounds.PlayCrash()
		},
		OnFinish: func(s sim.Summary) {
			if s.Outcome == sim.Win {
				sounds.PlayWin()
			}
			saveRun(record, cfg.RecordFile, s)
		},
	}

	if *term {
		// Log lines would tear the terminal frame
		if f, err := os.OpenFile("patroldodge.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(io.Discard)
		}

		t, err := terminal.New(terminal.Options{
			Config:  cfg,
			Loader:  loader,
			Sprites: sprites,
			Hooks:   hooks,
		})
		if err != nil {
			log.Fatal(err)
		}
		if err := t.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := game.NewGame(game.Options{
		Config:  cfg,
		Loader:  loader,
		Sprites: sprites,
		Record:  record,
		Hooks:   hooks,
	})
	if err != nil {
		log.Fatal(err)
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Patrol Dodge")
	ebiten.SetTPS(cfg.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func saveRun(record *models.Record, filename string, s sim.Summary) {
	record.Add(models.Run{
		Outcome:    s.Outcome.String(),
		Seconds:    s.Seconds,
		LapSeconds: s.LapSeconds,
		Patrols:    s.Patrols,
		FinishedAt: time.Now(),
	})
	if filename == "" {
		return
	}
	if err := record.SaveToFile(filename); err != nil {
		log.Printf("Failed to save records: %v", err)
		return
	}
	log.Printf("Run saved to %s", filename)
}
