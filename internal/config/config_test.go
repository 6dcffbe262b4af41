package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  width: 16
  height: 16
  mines: 40
  seed: 1234
ui:
  game:
    tile_size: 32
  sprites:
    path: "assets/tiles.png"
logging:
  level: debug
  format: json
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	resetGlobals()

	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 16, c.Game.Width)
	assert.Equal(t, 16, c.Game.Height)
	assert.Equal(t, 40, c.Game.Mines)
	assert.Equal(t, int64(1234), c.Game.Seed)
	assert.Equal(t, 32, c.UI.Game.TileSize)
	assert.Equal(t, "assets/tiles.png", c.UI.Sprites.Path)
	assert.Equal(t, zerolog.DebugLevel, c.ParseLogLevel())
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, configFile, ConfigFilePath())

	// untouched keys keep their defaults
	assert.Equal(t, 32, c.UI.Game.HeaderHeight)
	assert.Equal(t, "Minesweeper", c.UI.Window.Title)
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 9, c.Game.Width)
	assert.Equal(t, 9, c.Game.Height)
	assert.Equal(t, 10, c.Game.Mines)
	assert.Zero(t, c.Game.Seed)
	assert.Equal(t, 48, c.UI.Game.TileSize)
	assert.Equal(t, 60, c.UI.Game.TPS)
	assert.Empty(t, c.UI.Sprites.Path)
	assert.Equal(t, [3]int{200, 40, 40}, c.Colors.UI.Mine)
	assert.Equal(t, zerolog.InfoLevel, c.ParseLogLevel())
	assert.Equal(t, "console", c.Logging.Format)
	assert.False(t, c.Development.ShowAllTiles)
	assert.True(t, c.Development.LogEvents)
	assert.Empty(t, c.Development.LogEventTypes)

	w, h := c.WindowSize()
	assert.Equal(t, 9*48, w)
	assert.Equal(t, 9*48+32, h)
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()

	t.Setenv("MSW_GAME_MINES", "20")
	t.Setenv("MSW_GAME_WIDTH", "30")
	t.Setenv("MSW_UI_GAME_TILE_SIZE", "24")

	err := Init("")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 20, c.Game.Mines)
	assert.Equal(t, 30, c.Game.Width)
	assert.Equal(t, 24, c.UI.Game.TileSize)
}

func TestInvalidBoardFromEnvironment(t *testing.T) {
	resetGlobals()

	t.Setenv("MSW_GAME_MINES", "81")

	err := Init("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.mines")
}

func TestSet(t *testing.T) {
	resetGlobals()

	err := Init("")
	require.NoError(t, err)
	before := Get()

	// shrinking width and height past the default mine count only
	// validates once all three keys are applied together
	err = Set(map[string]interface{}{
		"game.width":  2,
		"game.height": 2,
		"game.mines":  1,
	})
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 2, c.Game.Width)
	assert.Equal(t, 2, c.Game.Height)
	assert.Equal(t, 1, c.Game.Mines)
	w, h := c.WindowSize()
	assert.Equal(t, 2*48, w)
	assert.Equal(t, 2*48+32, h)

	assert.Equal(t, 9, before.Game.Width, "published snapshots are never mutated")
}

func TestSetRejectsInvalidOverrides(t *testing.T) {
	resetGlobals()

	err := Init("")
	require.NoError(t, err)
	before := Get()

	err = Set(map[string]interface{}{"game.mines": 81})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.mines")
	assert.Same(t, before, Get())
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReload(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configFile, `
colors:
  ui:
    hidden: [10, 20, 30]
development:
  show_all_tiles: false
`)

	resetGlobals()
	require.NoError(t, Init(configFile))
	before := Get()

	writeConfig(t, configFile, `
colors:
  ui:
    hidden: [100, 110, 120]
development:
  show_all_tiles: true
`)
	require.NoError(t, v.ReadInConfig())

	var got *Config
	var gotErr error
	reload(func(c *Config, err error) {
		got, gotErr = c, err
	})

	require.NoError(t, gotErr)
	require.NotNil(t, got)
	assert.Same(t, got, Get())
	assert.Equal(t, [3]int{100, 110, 120}, got.Colors.UI.Hidden)
	assert.True(t, got.Development.ShowAllTiles)

	// readers holding the old snapshot keep a consistent view
	assert.Equal(t, [3]int{10, 20, 30}, before.Colors.UI.Hidden)
	assert.False(t, before.Development.ShowAllTiles)
}

func TestReloadRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configFile, `
colors:
  ui:
    mine: [200, 40, 40]
`)

	resetGlobals()
	require.NoError(t, Init(configFile))
	before := Get()

	writeConfig(t, configFile, `
colors:
  ui:
    mine: [300, 40, 40]
`)
	require.NoError(t, v.ReadInConfig())

	var got *Config
	var gotErr error
	reload(func(c *Config, err error) {
		got, gotErr = c, err
	})

	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), "colors.ui.mine[0]")
	assert.Nil(t, got)
	assert.Same(t, before, Get(), "a rejected file keeps the previous config")
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
game:
  width: 9
  height: 9
  mines: 10
`
	err := os.WriteFile(baseConfig, []byte(baseContent), 0644)
	require.NoError(t, err)

	envConfig := filepath.Join(tmpDir, "config.expert.yaml")
	envContent := `
game:
  width: 30
  height: 16
  mines: 99
logging:
  level: warn
`
	err = os.WriteFile(envConfig, []byte(envContent), 0644)
	require.NoError(t, err)

	oldWd, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(oldWd) }()

	resetGlobals()

	err = Init(baseConfig)
	require.NoError(t, err)

	err = LoadEnvironmentConfig("expert")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 30, c.Game.Width)
	assert.Equal(t, 16, c.Game.Height)
	assert.Equal(t, 99, c.Game.Mines)
	assert.Equal(t, zerolog.WarnLevel, c.ParseLogLevel())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		resetGlobals()
		require.NoError(t, Init("/non/existent/config.yaml"))
		c := *Get()
		return &c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Game.Width = 0 }, "game.width"},
		{"negative mines", func(c *Config) { c.Game.Mines = -1 }, "game.mines must be non-negative"},
		{"too many mines", func(c *Config) { c.Game.Mines = 81 }, "less than"},
		{"zero tile size", func(c *Config) { c.UI.Game.TileSize = 0 }, "ui.game.tile_size"},
		{"negative header", func(c *Config) { c.UI.Game.HeaderHeight = -1 }, "ui.game.header_height"},
		{"zero tps", func(c *Config) { c.UI.Game.TPS = 0 }, "ui.game.tps"},
		{"bad color", func(c *Config) { c.Colors.UI.Flag = [3]int{0, 256, 0} }, "colors.ui.flag[1]"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"unknown event type", func(c *Config) { c.Development.LogEventTypes = []string{"cell.exploded"} }, "development.log_event_types"},
	}

	assert.NoError(t, Validate(valid()))

	filtered := valid()
	filtered.Development.LogEventTypes = []string{"game.started", "mine.hit"}
	assert.NoError(t, Validate(filtered))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
