package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Screen.Width != 1920 || c.Screen.Height != 1080 || c.Screen.TPS != 60 {
		t.Fatalf("screen = %+v, want 1920x1080@60", c.Screen)
	}
	if c.Bird.Radius != 35 || c.Bird.Gravity != 1.2 || c.Bird.JumpImpulse != -18 {
		t.Fatalf("bird = %+v", c.Bird)
	}
	if c.Pipe.Width != 120 || c.Pipe.Gap != 320 || c.Pipe.Speed != 5 || c.Pipe.Spacing != 500 || c.Pipe.Margin != 80 {
		t.Fatalf("pipe = %+v", c.Pipe)
	}
	if c.Device.Baud != 9600 || c.Device.ButtonMode != ButtonModeEdge {
		t.Fatalf("device = %+v", c.Device)
	}
	if c.Keys.Player1 != "W" || c.Keys.Player2 != "ArrowUp" {
		t.Fatalf("keys = %+v", c.Keys)
	}
}

func TestMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	body := "seed = 42\n[pipe]\ngap = 400.0\n[device]\nbutton_mode = \"level\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 42 || c.Pipe.Gap != 400 || c.Device.ButtonMode != ButtonModeLevel {
		t.Fatalf("got seed=%d gap=%v mode=%q", c.Seed, c.Pipe.Gap, c.Device.ButtonMode)
	}
	if c.Pipe.Width != 120 {
		t.Fatalf("untouched pipe width = %v, want 120", c.Pipe.Width)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	if err := os.WriteFile(path, []byte("[device]\nport = \"COM9\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FLAPPY_SERIAL_PORT", "/dev/ttyUSB1")
	t.Setenv("FLAPPY_SERIAL_BAUD", "115200")
	t.Setenv("FLAPPY_SEED", "7")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Device.Port != "/dev/ttyUSB1" || c.Device.Baud != 115200 || c.Seed != 7 {
		t.Fatalf("got port=%q baud=%d seed=%d", c.Device.Port, c.Device.Baud, c.Seed)
	}
}

func TestBadEnvBaud(t *testing.T) {
	t.Setenv("FLAPPY_SERIAL_BAUD", "fast")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric baud")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"gap does not fit", func(c *Config) { c.Pipe.Gap = 1000 }},
		{"no whole gap position", func(c *Config) { c.Screen.Height = 481; c.Pipe.Gap = 320; c.Pipe.Margin = 80.4 }},
		{"zero speed", func(c *Config) { c.Pipe.Speed = 0 }},
		{"negative radius", func(c *Config) { c.Bird.Radius = -1 }},
		{"bird off screen", func(c *Config) { c.Bird.Player2X = 5000 }},
		{"unknown button mode", func(c *Config) { c.Device.ButtonMode = "toggle" }},
		{"zero tps", func(c *Config) { c.Screen.TPS = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("Validate accepted %+v", c)
			}
		})
	}
}
