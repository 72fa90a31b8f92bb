package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/TheBitDrifter/signet/components"
	"github.com/TheBitDrifter/signet/persist"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Save    SaveConfig    `toml:"save"`
	Logging LoggingConfig `toml:"logging"`
	Spawn   []SpawnEntry  `toml:"spawn"`
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	PanStep  int           `toml:"pan_step"` // cells moved per arrow key
}

type SaveConfig struct {
	Path        string `toml:"path"`
	LoadOnStart bool   `toml:"load_on_start"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal belongs to the game, so logs go here
}

// SpawnEntry is an entity created on a fresh start.
type SpawnEntry struct {
	X          int              `toml:"x"`
	Y          int              `toml:"y"`
	Glyph      string           `toml:"glyph"`
	Foreground *components.RGBA `toml:"foreground"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Spawn) == 0 {
		cfg.Spawn = defaultSpawn()
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default is the configuration used when no file exists.
func Default() *Config {
	cfg := defaults()
	cfg.Spawn = defaultSpawn()
	return cfg
}

func (c *Config) validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %s", c.Game.TickRate)
	}
	if c.Game.PanStep <= 0 {
		return fmt.Errorf("game.pan_step must be positive, got %d", c.Game.PanStep)
	}
	if c.Save.Path == "" {
		return fmt.Errorf("save.path must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be \"json\" or \"console\", got %q", c.Logging.Format)
	}
	for i, s := range c.Spawn {
		if s.Glyph == "" {
			return fmt.Errorf("spawn[%d]: glyph must not be empty", i)
		}
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			TickRate: 50 * time.Millisecond,
			PanStep:  1,
		},
		Save: SaveConfig{
			Path:        persist.DefaultPath,
			LoadOnStart: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "signet.log",
		},
	}
}

// defaultSpawn fills an empty spawn list; it is applied after parsing so that
// configured [[spawn]] tables never merge with these entries.
func defaultSpawn() []SpawnEntry {
	return []SpawnEntry{
		{X: 0, Y: 0, Glyph: "@"},
		{X: 4, Y: 2, Glyph: "g", Foreground: &components.RGBA{R: 0, G: 200, B: 0, A: 255}},
	}
}
