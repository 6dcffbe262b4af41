package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds the board settings
type GameConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Mines  int `mapstructure:"mines"`

	// Seed for mine placement; 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window  WindowConfig  `mapstructure:"window"`
	Game    UIGameConfig  `mapstructure:"game"`
	Sprites SpritesConfig `mapstructure:"sprites"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title string `mapstructure:"title"`
}

// UIGameConfig holds UI game settings
type UIGameConfig struct {
	TileSize     int `mapstructure:"tile_size"`
	HeaderHeight int `mapstructure:"header_height"`
	TPS          int `mapstructure:"tps"`
}

// SpritesConfig points at an optional sprite sheet
type SpritesConfig struct {
	Path string `mapstructure:"path"`
}

// ColorsConfig holds all color configurations
type ColorsConfig struct {
	UI UIColorsConfig `mapstructure:"ui"`
}

// UIColorsConfig holds UI color settings
type UIColorsConfig struct {
	Background [3]int `mapstructure:"background"`
	Header     [3]int `mapstructure:"header"`
	Hidden     [3]int `mapstructure:"hidden"`
	Revealed   [3]int `mapstructure:"revealed"`
	GridLines  [3]int `mapstructure:"grid_lines"`
	Mine       [3]int `mapstructure:"mine"`
	Flag       [3]int `mapstructure:"flag"`
	Text       [3]int `mapstructure:"text"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	ShowAllTiles bool `mapstructure:"show_all_tiles"`
	LogEvents    bool `mapstructure:"log_events"`

	// LogEventTypes limits the event log to these types; empty logs all
	LogEventTypes []string `mapstructure:"log_event_types"`
}

// WindowSize returns the window size in pixels for the configured board
func (c *Config) WindowSize() (int, int) {
	return c.Game.Width * c.UI.Game.TileSize, c.Game.Height*c.UI.Game.TileSize + c.UI.Game.HeaderHeight
}

var (
	// mu guards cfg. A published *Config is never mutated; reloads and
	// overrides publish a fresh one.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults: beginner board
	v.SetDefault("game.width", 9)
	v.SetDefault("game.height", 9)
	v.SetDefault("game.mines", 10)
	v.SetDefault("game.seed", 0)

	// UI defaults
	v.SetDefault("ui.window.title", "Minesweeper")
	v.SetDefault("ui.game.tile_size", 48)
	v.SetDefault("ui.game.header_height", 32)
	v.SetDefault("ui.game.tps", 60)
	v.SetDefault("ui.sprites.path", "")

	// Color defaults
	v.SetDefault("colors.ui.background", []int{40, 40, 40})
	v.SetDefault("colors.ui.header", []int{30, 30, 30})
	v.SetDefault("colors.ui.hidden", []int{150, 150, 150})
	v.SetDefault("colors.ui.revealed", []int{215, 215, 215})
	v.SetDefault("colors.ui.grid_lines", []int{90, 90, 90})
	v.SetDefault("colors.ui.mine", []int{200, 40, 40})
	v.SetDefault("colors.ui.flag", []int{230, 170, 20})
	v.SetDefault("colors.ui.text", []int{255, 255, 255})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.show_all_tiles", false)
	v.SetDefault("development.log_events", true)
	v.SetDefault("development.log_event_types", []string{})
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()

	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/minesweeper")
	}

	// MSW_GAME_MINES overrides game.mines
	nv.SetEnvPrefix("MSW")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		// A missing file falls back to defaults either way; anything
		// else in a default location is a broken config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	v = nv
	cfg = next
	mu.Unlock()

	return nil
}

// decode unmarshals the viper state into a fresh Config and validates it
func decode(from *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := from.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func publish(next *Config) {
	mu.Lock()
	cfg = next
	mu.Unlock()
}

// Get returns the current config snapshot. Callers must treat it as read-only.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	next, err := decode(v)
	if err != nil {
		return fmt.Errorf("environment config %s: %w", envFile, err)
	}
	publish(next)
	return nil
}

// Set applies runtime overrides, such as command line flags, on top of the
// file and environment. The overrides are validated together and survive
// later reloads. Call it before WatchConfig.
func Set(overrides map[string]interface{}) error {
	for key, value := range overrides {
		v.Set(key, value)
	}

	next, err := decode(v)
	if err != nil {
		return err
	}
	publish(next)
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. onChange runs on the
// watcher goroutine with either the new snapshot or the reason it was
// rejected; a rejected file leaves the previous snapshot in place.
func WatchConfig(onChange func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		reload(onChange)
	})
	v.WatchConfig()
}

func reload(onChange func(*Config, error)) {
	next, err := decode(v)
	if err == nil {
		publish(next)
	}
	if onChange != nil {
		onChange(next, err)
	}
}

// ParseLogLevel returns the zerolog level named by logging.level
func (c *Config) ParseLogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Board invariants
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		return fmt.Errorf("game.width and game.height must be positive")
	}
	if c.Game.Mines < 0 {
		return fmt.Errorf("game.mines must be non-negative")
	}
	if c.Game.Mines >= c.Game.Width*c.Game.Height {
		return fmt.Errorf("game.mines must be less than game.width*game.height (%d)", c.Game.Width*c.Game.Height)
	}

	if c.UI.Game.TileSize <= 0 {
		return fmt.Errorf("ui.game.tile_size must be positive")
	}
	if c.UI.Game.HeaderHeight < 0 {
		return fmt.Errorf("ui.game.header_height must be non-negative")
	}
	if c.UI.Game.TPS <= 0 {
		return fmt.Errorf("ui.game.tps must be positive")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	colors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.UI.Background, "colors.ui.background"},
		{c.Colors.UI.Header, "colors.ui.header"},
		{c.Colors.UI.Hidden, "colors.ui.hidden"},
		{c.Colors.UI.Revealed, "colors.ui.revealed"},
		{c.Colors.UI.GridLines, "colors.ui.grid_lines"},
		{c.Colors.UI.Mine, "colors.ui.mine"},
		{c.Colors.UI.Flag, "colors.ui.flag"},
		{c.Colors.UI.Text, "colors.ui.text"},
	}
	for _, col := range colors {
		if err := validateRGB(col.rgb, col.name); err != nil {
			return err
		}
	}

	for _, eventType := range c.Development.LogEventTypes {
		if !events.IsKnownType(eventType) {
			return fmt.Errorf("development.log_event_types: unknown event type %q", eventType)
		}
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
