package mapgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// MapConfig holds configuration for layout generation
type MapConfig struct {
	Width  int
	Height int
	Mines  int
}

// DefaultMapConfig returns the beginner 9x9 board with 10 mines
func DefaultMapConfig() MapConfig {
	return MapConfig{Width: 9, Height: 9, Mines: 10}
}

// Validate checks the board invariants: positive dimensions and
// 0 <= mines < width*height.
func (c MapConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, core.ErrInvalidDimensions)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%d mines: %w", c.Mines, core.ErrNegativeMines)
	}
	if c.Mines >= c.Width*c.Height {
		return fmt.Errorf("%d mines on %d cells: %w", c.Mines, c.Width*c.Height, core.ErrTooManyMines)
	}
	return nil
}

// Generator handles mine placement with an injected RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new layout generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// PlaceMines picks the mine indices for a board whose first revealed cell is
// excluded. The result is sorted.
func (g *Generator) PlaceMines(excluded int) ([]int, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	return SampleExcluding(g.rng, g.config.Width*g.config.Height, g.config.Mines, excluded)
}

// GenerateLayout places mines on the board, keeping excluded free, and fills
// in the neighbor counts. It returns the mine indices.
func (g *Generator) GenerateLayout(b *core.Board, excluded int) ([]int, error) {
	if b.W != g.config.Width || b.H != g.config.Height {
		return nil, fmt.Errorf("board is %dx%d, generator expects %dx%d: %w",
			b.W, b.H, g.config.Width, g.config.Height, core.ErrInvalidDimensions)
	}

	mines, err := g.PlaceMines(excluded)
	if err != nil {
		return nil, err
	}

	counts := CountNeighbors(b.W, b.H, mines)
	for i := range b.C {
		b.C[i].Mine = false
		b.C[i].Count = counts[i]
	}
	for _, idx := range mines {
		b.C[idx].Mine = true
	}
	return mines, nil
}

// SampleExcluding draws count distinct indices uniformly from [0,total)
// without ever returning excluded. Values are drawn from [0,total-1) and
// shifted up by one at or past the excluded index, which keeps every layout
// avoiding excluded equally likely.
func SampleExcluding(rng *rand.Rand, total, count, excluded int) ([]int, error) {
	if excluded < 0 || excluded >= total {
		return nil, fmt.Errorf("excluded %d of %d: %w", excluded, total, core.ErrInvalidIndex)
	}
	if count < 0 {
		return nil, core.ErrNegativeMines
	}
	if count >= total {
		return nil, fmt.Errorf("%d mines on %d cells: %w", count, total, core.ErrTooManyMines)
	}

	// Partial Fisher-Yates over [0,total-1)
	pool := make([]int, total-1)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := make([]int, count)
	for i, v := range pool[:count] {
		if v >= excluded {
			v++
		}
		picked[i] = v
	}
	sort.Ints(picked)
	return picked, nil
}
