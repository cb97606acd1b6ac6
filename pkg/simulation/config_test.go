package simulation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"min above max", func(c *Config) { c.MinSpeed, c.MaxSpeed = 40, 30 }, "exceeds max speed"},
		{"zero min speed", func(c *Config) { c.MinSpeed = 0 }, "min speed must be positive"},
		{"zero tick scale", func(c *Config) { c.TickScale = 0 }, "tick scale"},
		{"obstacle buffer below one", func(c *Config) { c.ObstacleBuffer = 0.5 }, "obstacle buffer"},
		{"negative range", func(c *Config) { c.VisibleRange = -1 }, "visible range"},
		{"flat shape", func(c *Config) { c.BoidShape = c.BoidShape[:2] }, "boid shape"},
		{"unknown colour", func(c *Config) { c.BoidColor = "ultraviolet" }, "ultraviolet"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"nan factor", func(c *Config) { c.CohesionFactor = math.NaN() }, "cohesion factor"},
		{"infinite factor", func(c *Config) { c.EdgeFactor = math.Inf(-1) }, "edge factor"},
		{"nan visible range", func(c *Config) { c.VisibleRange = math.NaN() }, "visible range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v; want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q; want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestConfig_ValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth = 0
	cfg.InitSpeed = -1
	cfg.ObstacleRadius = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"screen size", "initial speed", "obstacle radius"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "boids.json", `{
		"numAgents": 120,
		"minSpeed": 10,
		"boidShape": [{"x": 0, "y": 3}, {"x": -1, "y": -1}, {"x": 1, "y": -1}],
		"spatialGrid": true
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.NumAgents != 120 || cfg.MinSpeed != 10 || !cfg.SpatialGrid {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BoidShape[0].Y != 3 {
		t.Errorf("boid shape = %v", cfg.BoidShape)
	}
	// untouched keys keep their defaults
	if cfg.MaxSpeed != 30 || cfg.VisibleRange != 100 {
		t.Errorf("defaults lost: max speed %v, visible range %v", cfg.MaxSpeed, cfg.VisibleRange)
	}
}

func TestLoadConfig_JSONSchemaRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `{"numBirds": 10}`},
		{"zero min speed", `{"minSpeed": 0}`},
		{"wrong type", `{"numAgents": "many"}`},
		{"bad click mode", `{"clickMode": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, "boids.json", tt.content)); err == nil {
				t.Error("expected the schema to reject the file")
			}
		})
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfig(t, "boids.toml", `
num_agents = 80
num_obstacles = 4
separation_factor = 0.2
boid_color = "navy"
workers = 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.NumAgents != 80 || cfg.NumObstacles != 4 || cfg.SeparationFactor != 0.2 || cfg.BoidColor != "navy" || cfg.Workers != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.TickScale != 10 {
		t.Errorf("tick scale = %v; want the default 10", cfg.TickScale)
	}
}

func TestLoadConfig_TOMLStillValidated(t *testing.T) {
	path := writeConfig(t, "boids.toml", "min_speed = 50\nmax_speed = 30\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() = %v; want ErrInvalidConfig", err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "boids.yaml", "numAgents: 3")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "broken.json", "{")); err == nil {
		t.Error("expected an error for malformed json")
	}
}
