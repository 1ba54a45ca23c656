package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "blockfall.yaml", "Path to the YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 uses the config seed or the current time.")
	assetDir := flag.String("assets", "", "Texture directory, overriding the config.")
	noAudio := flag.Bool("no-audio", false, "Disable the line-clear jingle.")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit.")
	verbose := flag.Bool("verbose", false, "Log engine events.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetDir != "" {
		cfg.Assets.Dir = *assetDir
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote configuration to %s\n", *writeConfig)
		return
	}
	if *verbose {
		tetris.SetLogger(slog.Default())
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	catalog, err := assets.Load(os.DirFS(cfg.Assets.Dir))
	if err != nil {
		log.Printf("Textures unavailable, drawing outlines: %v", err)
		catalog = &assets.Catalog{}
	}
	log.Printf("Loaded %d textures from %s\n", catalog.Len(), cfg.Assets.Dir)

	engine, err := tetris.NewEngine(cfg.Engine, cfg.NewFactory(cfg.Seed, catalog.Pool(cfg.Seed+1)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	player := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Printf("Audio unavailable: %v", err)
		}
	}
	defer player.Close()

	layout := render.NewLayout(cfg.Engine.Cols, cfg.Engine.Rows, cfg.Window.CellSize)
	textures := render.NewTextures(catalog)
	defer textures.Dispose()

	game := newGame(gameDeps{
		cfg:      cfg,
		engine:   engine,
		renderer: render.NewRenderer(layout, textures),
		burst:    effects.NewBurst(cfg.Seed+2, effects.DefaultBurstConfig()),
		quotes:   effects.NewQuoteBoard(cfg.Seed+3, cfg.Quotes.Duration, cfg.Quotes.Table()),
		player:   player,
	})

	w, h := layout.ScreenSize()
	game.backend = debugui.NewBackend(cfg.Window.Title, int(float64(w)*cfg.Window.Scale), int(float64(h)*cfg.Window.Scale))
	inspector := debugui.NewEngineInspector(engine)
	inspector.Restart = game.restart
	game.ui.Add("engine", inspector.Render)
	game.ui.Add("performance", game.perf.Render)

	log.Printf("Starting blockfall with seed %d\n", cfg.Seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	stats := engine.Stats()
	log.Printf("Session over: %d lines in %d clears, %d pieces locked\n", stats.LinesCleared, stats.Clears, stats.PiecesLocked)
}

// registerSystems adds the per-frame systems in execution order: input,
// engine time, cosmetic effects, then developer panels.
func registerSystems(g *Game) {
	g.scheduler.Register(g.input)
	g.scheduler.Register(&loop.TickSystem{Target: g.engine})
	g.scheduler.Register(&ClearEffectSystem{Engine: g.engine, Burst: g.burst})
	g.scheduler.Register(g.burst)
	g.scheduler.Register(g.perf)
	g.scheduler.Register(g.ui)
}
