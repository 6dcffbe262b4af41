package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
)

// Terminal demo: plays random legal reveals until the board is won or lost
func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Seed for mines and moves (0 = time)")
	flagChance := flag.Float64("flag-chance", 0.1, "Chance to flag instead of reveal each step")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	zerolog.SetGlobalLevel(cfg.ParseLogLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *seed == 0 {
		*seed = cfg.Game.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", *seed)
	rng := rand.New(rand.NewSource(*seed))

	g, err := game.NewEngine(context.Background(), game.GameConfig{
		Width:  cfg.Game.Width,
		Height: cfg.Game.Height,
		Mines:  cfg.Game.Mines,
		Rng:    rng,
		Logger: log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game engine")
	}

	fmt.Printf("Initial board:\n%s\n", g.Render(false))

	for step := 1; !g.IsGameOver(); step++ {
		legal := g.LegalReveals()
		if len(legal) == 0 {
			break
		}
		idx := legal[rng.Intn(len(legal))]

		// never flag before the layout exists, the first click is always safe
		if g.HasLayout() && rng.Float64() < *flagChance {
			if err := g.ToggleFlag(idx); err != nil {
				log.Fatal().Err(err).Int("index", idx).Msg("Flag failed")
			}
			fmt.Printf("Step %d: flag %d (mines left %d)\n", step, idx, g.RemainingMines())
			continue
		}

		if err := g.Reveal(idx); err != nil {
			log.Fatal().Err(err).Int("index", idx).Msg("Reveal failed")
		}
		fmt.Printf("Step %d: reveal %d\n%s\n", step, idx, g.Render(false))
	}

	safe := g.Width()*g.Height() - g.Mines()
	switch {
	case g.IsWon():
		fmt.Printf("🎉 Board cleared in %s!\n", g.Elapsed().Round(time.Millisecond))
	case g.IsLost():
		fmt.Printf("Boom! %d of %d safe cells revealed.\n", g.RevealedCount(), safe)
	default:
		fmt.Printf("Every hidden cell is flagged, stopping with %d of %d safe cells revealed.\n", g.RevealedCount(), safe)
	}

	stats := g.Stats()
	fmt.Printf("Reveals: %d, cells opened: %d, largest cascade: %d, flags placed: %d\n",
		stats.Reveals, stats.CellsOpened, stats.LargestCascade, stats.FlagsPlaced)
	fmt.Printf("\nFinal board:\n%s", g.Render(true))
}
