// Command blockfall-sim plays seeded games with a greedy placement bot and
// prints a Markdown report.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/boardimg"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file.")
	games := flag.Int("games", 10, "Number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	maxPieces := flag.Int("pieces", 1000, "Stop a game after this many locked pieces; 0 plays until game over.")
	frameStep := flag.Duration("frame", 16*time.Millisecond, "Virtual time between frames.")
	randomizer := flag.String("randomizer", "", "Override the piece randomizer (uniform or bag).")
	assetDir := flag.String("assets", "", "Texture directory for the -png board.")
	pngPath := flag.String("png", "", "Write the final board of the last game to this PNG file.")
	cellSize := flag.Int("cell", 24, "Cell size in pixels for -png.")
	verbose := flag.Bool("verbose", false, "Log engine events.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *randomizer != "" {
		cfg.Randomizer = *randomizer
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid randomizer: %v", err)
		}
	}
	if *frameStep <= 0 {
		log.Fatalf("Frame step must be positive, got %s", *frameStep)
	}
	if *verbose {
		tetris.SetLogger(slog.Default())
	}

	var textures boardimg.TextureSource
	catalog := &assets.Catalog{}
	if *assetDir != "" {
		catalog, err = assets.Load(os.DirFS(*assetDir))
		if err != nil {
			log.Fatalf("Failed to load textures: %v", err)
		}
		textures = catalog
		log.Printf("Loaded %d textures from %s\n", catalog.Len(), *assetDir)
	}

	report := &Report{
		Games:      *games,
		Seed:       *seed,
		Randomizer: cfg.Randomizer,
		MaxPieces:  *maxPieces,
		FrameStep:  *frameStep,
	}

	log.Printf("Playing %d games...\n", *games)
	startTime := time.Now()
	var last tetris.BoardSnapshot
	for i := range *games {
		gameSeed := *seed + uint64(i)
		session := Session{
			Config:    cfg,
			Seed:      gameSeed,
			Tags:      catalog.Pool(gameSeed),
			Weights:   DefaultWeights,
			MaxPieces: *maxPieces,
			FrameStep: *frameStep,
		}
		result, board, err := session.Play()
		if err != nil {
			log.Fatalf("Game %d failed: %v", i+1, err)
		}
		report.Add(result)
		last = board
	}
	report.WallTime = time.Since(startTime)
	report.Finalize()

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Self-Play Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if *pngPath != "" && *games > 0 {
		if err := boardimg.New(*cellSize, textures).SavePNG(*pngPath, last, nil); err != nil {
			log.Fatalf("Failed to write board image: %v", err)
		}
		log.Printf("Wrote final board to %s\n", *pngPath)
	}
}
