package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/minesweeper/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml")
	width := flag.Int("width", -1, "Board width in cells (-1 to use config default)")
	height := flag.Int("height", -1, "Board height in cells (-1 to use config default)")
	mines := flag.Int("mines", -1, "Number of mines (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Mine placement seed (0 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	// Flags override the file and environment
	overrides := make(map[string]interface{})
	if *width != -1 {
		overrides["game.width"] = *width
	}
	if *height != -1 {
		overrides["game.height"] = *height
	}
	if *mines != -1 {
		overrides["game.mines"] = *mines
	}
	if *seed != 0 {
		overrides["game.seed"] = *seed
	}
	if err := config.Set(overrides); err != nil {
		log.Fatal().Err(err).Msg("Invalid board flags")
	}

	cfg := config.Get()

	placementSeed := cfg.Game.Seed
	if placementSeed == 0 {
		placementSeed = time.Now().UnixNano()
	}

	setupLogging(cfg)

	bus := events.NewEventBus(log.Logger)
	if cfg.Development.LogEvents {
		eventLogger := subscribers.NewLoggerSubscriber("event-log", log.Logger, zerolog.DebugLevel)
		eventLogger.SetDevMode(cfg.Development.ShowAllTiles)
		eventLogger.SetEventFilter(cfg.Development.LogEventTypes)
		bus.Subscribe(eventLogger)
	}

	log.Info().
		Int("width", cfg.Game.Width).
		Int("height", cfg.Game.Height).
		Int("mines", cfg.Game.Mines).
		Int64("seed", placementSeed).
		Msg("Starting minesweeper")

	engine, err := game.NewEngine(context.Background(), game.GameConfig{
		Width:    cfg.Game.Width,
		Height:   cfg.Game.Height,
		Mines:    cfg.Game.Mines,
		Rng:      rand.New(rand.NewSource(placementSeed)),
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game engine")
	}

	uiGame, err := ui.NewUIGame(engine, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("sprites", cfg.UI.Sprites.Path).Msg("Failed to load assets")
	}

	config.WatchConfig(func(next *config.Config, err error) {
		if err != nil {
			log.Warn().Err(err).Str("file", config.ConfigFilePath()).Msg("Config reload rejected")
			return
		}
		uiGame.ApplyConfig(next)
		log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
	})

	ebiten.SetWindowSize(cfg.WindowSize())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)
	ebiten.SetTPS(cfg.UI.Game.TPS)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}

	stats := engine.Stats()
	log.Info().
		Str("game_id", engine.GameID()).
		Str("phase", engine.Phase().String()).
		Int("reveals", stats.Reveals).
		Int("cells_opened", stats.CellsOpened).
		Msg("Window closed")
}

func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.ParseLogLevel())

	if cfg.Logging.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	// Pretty console output for development
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})
}
