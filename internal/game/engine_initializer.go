package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/processor"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize validates the configuration and creates an engine whose board
// is hidden and has no layout yet
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	mapCfg := mapgen.MapConfig{
		Width:  ei.config.Width,
		Height: ei.config.Height,
		Mines:  ei.config.Mines,
	}
	if err := mapCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	ei.setupDefaults()

	engine := ei.createEngine(mapCfg)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		mapCfg.Width,
		mapCfg.Height,
		mapCfg.Mines,
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("width", mapCfg.Width).
		Int("height", mapCfg.Height).
		Int("mines", mapCfg.Mines).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.GameID == "" {
		ei.config.GameID = uuid.New().String()
	}

	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.logger)
	}
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(mapCfg mapgen.MapConfig) *Engine {
	gameContext := states.NewGameContext(
		ei.config.GameID,
		mapCfg.Width,
		mapCfg.Height,
		mapCfg.Mines,
		ei.logger,
	)

	return &Engine{
		board:           core.NewBoard(mapCfg.Width, mapCfg.Height),
		config:          mapCfg,
		generator:       mapgen.NewGenerator(mapCfg, ei.config.Rng),
		logger:          ei.logger,
		revealProcessor: processor.NewRevealProcessor(ei.logger),
		winCondition:    rules.NewWinConditionChecker(ei.logger, mapCfg.Width, mapCfg.Height, mapCfg.Mines),
		legalMoves:      rules.NewLegalMoveCalculator(),
		eventBus:        ei.config.EventBus,
		stateMachine:    states.NewStateMachine(gameContext, ei.config.EventBus),
		gameID:          ei.config.GameID,
	}
}
