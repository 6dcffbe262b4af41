package ui

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/minesweeper/internal/common"
	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/input"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/renderer"
)

// UIGame adapts the engine to an Ebitengine window: it turns clicks into
// reveals and flags and draws the board with a header bar above it.
type UIGame struct {
	engine        *game.Engine
	cfg           *config.Config
	boardRenderer *renderer.EnhancedBoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	// fixed at startup; hot reload only reaches colors and debug flags
	tileSize     int
	headerHeight int

	// set from the config watcher goroutine, taken up by Update
	pending atomic.Pointer[config.Config]
}

// NewUIGame creates a new Ebitengine game instance. A configured sprite
// sheet that cannot be loaded is an error.
func NewUIGame(engine *game.Engine, cfg *config.Config, logger zerolog.Logger) (*UIGame, error) {
	g := &UIGame{
		engine:      engine,
		cfg:         cfg,
		defaultFont: basicfont.Face7x13,
		logger:      logger.With().Str("component", "UIGame").Logger(),
	}

	tileSize := cfg.UI.Game.TileSize
	header := cfg.UI.Game.HeaderHeight
	g.tileSize = tileSize
	g.headerHeight = header

	g.boardRenderer = renderer.NewEnhancedBoardRenderer(tileSize, g.defaultFont, renderer.PaletteFromConfig(cfg.Colors.UI))
	g.boardRenderer.SetOffset(0, header)
	g.boardRenderer.SetShowAll(cfg.Development.ShowAllTiles)

	if path := cfg.UI.Sprites.Path; path != "" {
		sheet, err := renderer.LoadSpriteSheet(path)
		if err != nil {
			return nil, err
		}
		g.boardRenderer.SetSprites(sheet)
		g.logger.Info().Str("path", path).Msg("Sprite sheet loaded")
	}

	g.inputHandler = input.NewHandler(tileSize, engine.Width(), engine.Height())
	g.inputHandler.SetBoardOffset(0, header)

	return g, nil
}

// ApplyConfig queues a reloaded config for the next frame. Safe to call
// from any goroutine.
func (g *UIGame) ApplyConfig(next *config.Config) {
	if next != nil {
		g.pending.Store(next)
	}
}

func (g *UIGame) applyPendingConfig() {
	next := g.pending.Swap(nil)
	if next == nil {
		return
	}
	g.cfg = next
	g.boardRenderer.SetPalette(renderer.PaletteFromConfig(next.Colors.UI))
	g.boardRenderer.SetShowAll(next.Development.ShowAllTiles)
	g.logger.Debug().Bool("show_all_tiles", next.Development.ShowAllTiles).Msg("Config applied")
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	g.applyPendingConfig()
	g.inputHandler.Update()

	for _, action := range g.inputHandler.Actions() {
		switch action.Kind {
		case input.ActionQuit:
			g.logger.Info().Msg("Quit requested")
			return ebiten.Termination

		case input.ActionRestart:
			g.engine.Reset()

		case input.ActionReveal:
			if g.engine.IsGameOver() {
				continue
			}
			if err := g.engine.RevealAt(action.Cell.X, action.Cell.Y); err != nil {
				g.logger.Error().Err(err).Str("cell", action.Cell.String()).Msg("Reveal failed")
			}

		case input.ActionFlag:
			if g.engine.IsGameOver() {
				continue
			}
			if err := g.engine.ToggleFlagAt(action.Cell.X, action.Cell.Y); err != nil {
				g.logger.Error().Err(err).Str("cell", action.Cell.String()).Msg("Flag toggle failed")
			}
		}
	}

	hover, ok := g.inputHandler.GetHoveredTile()
	g.boardRenderer.SetHover(hover, ok && !g.engine.IsGameOver())
	g.boardRenderer.SetOutcome(g.engine.IsWon(), g.engine.IsLost())

	return nil
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.RGB(g.cfg.Colors.UI.Background))

	g.drawHeader(screen)
	g.boardRenderer.Draw(screen, g.engine)
}

func (g *UIGame) drawHeader(screen *ebiten.Image) {
	header := g.headerHeight
	if header <= 0 {
		return
	}
	width, _ := g.screenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(header), common.RGB(g.cfg.Colors.UI.Header), false)

	textColor := common.RGB(g.cfg.Colors.UI.Text)
	baseline := (header + 13) / 2

	mines := fmt.Sprintf("Mines: %d", g.engine.RemainingMines())
	text.Draw(screen, mines, g.defaultFont, 6, baseline, textColor)

	elapsed := fmt.Sprintf("%03d", int(g.engine.Elapsed().Seconds()))
	b := text.BoundString(g.defaultFont, elapsed)
	text.Draw(screen, elapsed, g.defaultFont, width-b.Dx()-6, baseline, textColor)

	if status := g.statusMessage(); status != "" {
		sb := text.BoundString(g.defaultFont, status)
		text.Draw(screen, status, g.defaultFont, (width-sb.Dx())/2, baseline, statusColor(g.engine.IsWon()))
	}

	if g.cfg.Development.ShowAllTiles {
		ebitenutil.DebugPrintAt(screen, g.engine.Phase().String(), 6, header)
	}
}

func (g *UIGame) statusMessage() string {
	switch {
	case g.engine.IsWon():
		return "You win! R to restart"
	case g.engine.IsLost():
		return "Boom! R to restart"
	default:
		return ""
	}
}

func statusColor(won bool) color.Color {
	if won {
		return color.RGBA{120, 230, 120, 255}
	}
	return color.RGBA{240, 110, 110, 255}
}

func (g *UIGame) screenSize() (int, int) {
	return g.engine.Width() * g.tileSize, g.engine.Height()*g.tileSize + g.headerHeight
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenSize()
}
