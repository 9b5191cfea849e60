// Package config loads the game configuration: embedded defaults, an optional
// TOML file on top, then FLAPPY_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	ButtonModeEdge  = "edge"
	ButtonModeLevel = "level"
)

type Config struct {
	Seed   int64  `toml:"seed"`
	Screen Screen `toml:"screen"`
	Bird   Bird   `toml:"bird"`
	Pipe   Pipe   `toml:"pipe"`
	Device Device `toml:"device"`
	Keys   Keys   `toml:"keys"`
	Sound  Sound  `toml:"sound"`
	Log    Log    `toml:"log"`
}

// Screen is the logical resolution the simulation runs in. The window can be
// any size, ebiten scales the logical screen into it.
type Screen struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	TPS          int    `toml:"tps"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	Fullscreen   bool   `toml:"fullscreen"`
	Title        string `toml:"title"`
}

type Bird struct {
	Radius      float64 `toml:"radius"`
	Gravity     float64 `toml:"gravity"`
	JumpImpulse float64 `toml:"jump_impulse"`
	Player1X    float64 `toml:"player1_x"`
	Player2X    float64 `toml:"player2_x"`
}

type Pipe struct {
	Width   float64 `toml:"width"`
	Gap     float64 `toml:"gap"`
	Speed   float64 `toml:"speed"`
	Spacing float64 `toml:"spacing"`
	Margin  float64 `toml:"margin"`
}

type Device struct {
	Enabled    bool   `toml:"enabled"`
	Port       string `toml:"port"`
	Baud       int    `toml:"baud"`
	SettleMS   int    `toml:"settle_ms"`
	ButtonMode string `toml:"button_mode"`
}

// Keys holds ebiten key names ("W", "ArrowUp", "Space", ...).
type Keys struct {
	Player1 string `toml:"player1"`
	Player2 string `toml:"player2"`
	Start   string `toml:"start"`
	Quit    string `toml:"quit"`
}

type Sound struct {
	Enabled  bool    `toml:"enabled"`
	Volume   float64 `toml:"volume"`
	JumpFile string  `toml:"jump_file"`
	HitFile  string  `toml:"hit_file"`
}

type Log struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	var c Config
	if _, err := toml.NewDecoder(bytes.NewReader(defaultTOML)).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode embedded defaults: %w", err)
	}
	return &c, nil
}

// Load builds the configuration. A missing file at path is not an error; an
// empty path skips the file entirely.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FLAPPY_SERIAL_PORT"); v != "" {
		c.Device.Port = v
	}
	if v := os.Getenv("FLAPPY_SERIAL_BAUD"); v != "" {
		baud, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FLAPPY_SERIAL_BAUD: %w", err)
		}
		c.Device.Baud = baud
	}
	if v := os.Getenv("FLAPPY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("FLAPPY_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FLAPPY_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects geometry the pipe generator could not honour, so the
// random gap position always has a non-empty range at run time.
func (c *Config) Validate() error {
	s, b, p := c.Screen, c.Bird, c.Pipe
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", s.Width, s.Height)
	case s.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", s.TPS)
	case b.Radius <= 0:
		return fmt.Errorf("bird radius %v must be positive", b.Radius)
	case b.Player1X < 0 || b.Player1X > float64(s.Width) || b.Player2X < 0 || b.Player2X > float64(s.Width):
		return fmt.Errorf("player x positions %v/%v outside screen width %d", b.Player1X, b.Player2X, s.Width)
	case p.Width <= 0 || p.Speed <= 0 || p.Spacing <= 0:
		return fmt.Errorf("pipe width, speed and spacing must be positive")
	case p.Gap <= 0 || p.Margin < 0:
		return fmt.Errorf("pipe gap %v must be positive and margin %v non-negative", p.Gap, p.Margin)
	case p.Gap+2*p.Margin > float64(s.Height):
		return fmt.Errorf("pipe gap %v plus margins %v does not fit screen height %d", p.Gap, 2*p.Margin, s.Height)
	case math.Ceil(p.Margin) > math.Floor(float64(s.Height)-p.Gap-p.Margin):
		return fmt.Errorf("pipe gap %v and margin %v leave no whole-pixel gap position", p.Gap, p.Margin)
	}
	if c.Device.ButtonMode != ButtonModeEdge && c.Device.ButtonMode != ButtonModeLevel {
		return fmt.Errorf("device button_mode %q must be %q or %q", c.Device.ButtonMode, ButtonModeEdge, ButtonModeLevel)
	}
	if c.Device.Enabled && c.Device.Baud <= 0 {
		return fmt.Errorf("device baud %d must be positive", c.Device.Baud)
	}
	return nil
}
