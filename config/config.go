// Package config loads arena tuning from TOML and converts it to fixed-point stats
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/dash-arena/asset"
)

// Config is the decoded TOML document, float units are world units and seconds
type Config struct {
	Arena   ArenaConfig            `toml:"arena"`
	Player  PlayerConfig           `toml:"player"`
	Spawn   SpawnConfig            `toml:"spawn"`
	Enemies map[string]EnemyConfig `toml:"enemies"`
}

type ArenaConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	WallThickness float64 `toml:"wall_thickness"`
}

type DashConfig struct {
	MaxDistance float64 `toml:"max_distance"`
	Speed       float64 `toml:"speed"`
	Width       float64 `toml:"width"`
	Damage      float64 `toml:"damage"`
}

type PlayerConfig struct {
	Health        float64       `toml:"health"`
	Speed         float64       `toml:"speed"`
	Acceleration  float64       `toml:"acceleration"`
	Radius        float64       `toml:"radius"`
	Invincibility time.Duration `toml:"invincibility"`
	Dash          DashConfig    `toml:"dash"`
}

// SpawnConfig sizes the population of each unlocked room
type SpawnConfig struct {
	Base    int      `toml:"base"`
	PerRoom int      `toml:"per_room"`
	Pool    []string `toml:"pool"`
}

// EnemyConfig is one catalog entry
// Shape is a circle when Radius is set, otherwise a Width x Height box
type EnemyConfig struct {
	Health       float64 `toml:"health"`
	Damage       float64 `toml:"damage"`
	Speed        float64 `toml:"speed"`
	Acceleration float64 `toml:"acceleration"`
	Radius       float64 `toml:"radius"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	AI           string  `toml:"ai"`

	// Shooter
	PreferredDistance float64       `toml:"preferred_distance"`
	Charge            time.Duration `toml:"charge"`
	Bullet            string        `toml:"bullet"`
}

// Default returns the embedded configuration
// Panics only if the embedded asset is malformed
func Default() *Config {
	cfg, err := Parse(asset.DefaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded config invalid: %v", err))
	}
	return cfg
}

// Load reads and validates a TOML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over nothing (no implicit defaults) and validates it
// Unknown keys are rejected to surface typos
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
