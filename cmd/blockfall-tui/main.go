// Command blockfall-tui plays blockfall in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/tetris"
)

// paletteTags colors pieces from the shared fallback palette since a
// terminal cannot show textures.
var paletteTags = []tetris.Tag{1, 2, 3, 4, 5, 6, 7, 8}

func main() {
	configPath := flag.String("config", "blockfall.yaml", "Path to the YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 uses the config seed or the current time.")
	noAudio := flag.Bool("no-audio", false, "Disable the line-clear jingle.")
	logPath := flag.String("log", "", "Write log output to this file instead of discarding it.")
	verbose := flag.Bool("verbose", false, "Log engine events.")
	flag.Parse()

	// The terminal is owned by tcell, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		if *verbose {
			tetris.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	engine, err := tetris.NewEngine(cfg.Engine, cfg.NewFactory(cfg.Seed, tetris.NewRandomTags(cfg.Seed+1, paletteTags)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create engine: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	game := NewGame(screen, engine, effects.NewQuoteBoard(cfg.Seed+3, cfg.Quotes.Duration, cfg.Quotes.Table()), player)
	game.quotesEnabled = cfg.Quotes.Enabled
	game.showGhost = cfg.Effects.Ghost

	game.run()

	player.Close()
	screen.Fini()

	stats := engine.Stats()
	fmt.Printf("%d lines in %d clears, %d pieces locked\n", stats.LinesCleared, stats.Clears, stats.PiecesLocked)
}
