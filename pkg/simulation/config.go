package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/render"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidConfig wraps every semantic configuration failure.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed config.schema.json
var configSchema string

// ClickMode selects what a mouse click spawns.
type ClickMode int

const (
	ClickSpawnAgent ClickMode = iota
	ClickSpawnObstacle
)

func (m ClickMode) String() string {
	if m == ClickSpawnObstacle {
		return "obstacle"
	}
	return "boid"
}

// Config holds every constant of a run. It is read once at startup.
type Config struct {
	// World Dimensions
	ScreenWidth  float64 `json:"screenWidth" toml:"screen_width"`
	ScreenHeight float64 `json:"screenHeight" toml:"screen_height"`

	// Boid look
	BoidShape     []geometry.Vector2D `json:"boidShape" toml:"boid_shape"`
	BoidScale     float64             `json:"boidScale" toml:"boid_scale"`
	Background    string              `json:"background" toml:"background"`
	BoidColor     string              `json:"boidColor" toml:"boid_color"`
	ObstacleColor string              `json:"obstacleColor" toml:"obstacle_color"`

	// Population
	NumAgents    int `json:"numAgents" toml:"num_agents"`
	NumObstacles int `json:"numObstacles" toml:"num_obstacles"`

	// Ranges
	VisibleRange   float64 `json:"visibleRange" toml:"visible_range"`
	ProtectedRange float64 `json:"protectedRange" toml:"protected_range"`
	EdgeBuffer     float64 `json:"edgeBuffer" toml:"edge_buffer"`

	// Obstacles
	ObstacleRadius float64 `json:"obstacleRadius" toml:"obstacle_radius"`
	ObstacleBuffer float64 `json:"obstacleBuffer" toml:"obstacle_buffer"`

	// Steering factors
	AlignmentFactor  float64 `json:"alignmentFactor" toml:"alignment_factor"`
	CohesionFactor   float64 `json:"cohesionFactor" toml:"cohesion_factor"`
	SeparationFactor float64 `json:"separationFactor" toml:"separation_factor"`
	EdgeFactor       float64 `json:"edgeFactor" toml:"edge_factor"`
	ObstacleFactor   float64 `json:"obstacleFactor" toml:"obstacle_factor"`

	// Speeds
	InitSpeed float64 `json:"initSpeed" toml:"init_speed"`
	MinSpeed  float64 `json:"minSpeed" toml:"min_speed"`
	MaxSpeed  float64 `json:"maxSpeed" toml:"max_speed"`
	TickScale float64 `json:"tickScale" toml:"tick_scale"`

	ClickMode ClickMode `json:"clickMode" toml:"click_mode"`
	// Workers > 1 spreads the neighbour classification over goroutines.
	Workers int `json:"workers" toml:"workers"`
	// SpatialGrid buckets agents by cell before classifying neighbours.
	SpatialGrid bool `json:"spatialGrid" toml:"spatial_grid"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:      500,
		ScreenHeight:     500,
		BoidShape:        []geometry.Vector2D{{X: -1, Y: -2}, {X: 1, Y: -2}, {X: 0, Y: 2}},
		BoidScale:        2,
		Background:       "white",
		BoidColor:        "black",
		ObstacleColor:    "red",
		NumAgents:        50,
		NumObstacles:     0,
		VisibleRange:     100,
		ProtectedRange:   10,
		EdgeBuffer:       50,
		ObstacleRadius:   20,
		ObstacleBuffer:   2,
		AlignmentFactor:  0.05,
		CohesionFactor:   0.0005,
		SeparationFactor: 0.1,
		EdgeFactor:       1.5,
		ObstacleFactor:   0.15,
		InitSpeed:        25,
		MinSpeed:         20,
		MaxSpeed:         30,
		TickScale:        10,
		ClickMode:        ClickSpawnObstacle,
		Workers:          1,
	}
}

// Settings extracts the flocking constants.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		VisibleRange:     c.VisibleRange,
		ProtectedRange:   c.ProtectedRange,
		EdgeBuffer:       c.EdgeBuffer,
		AlignmentFactor:  c.AlignmentFactor,
		CohesionFactor:   c.CohesionFactor,
		SeparationFactor: c.SeparationFactor,
		EdgeFactor:       c.EdgeFactor,
		ObstacleFactor:   c.ObstacleFactor,
		MinSpeed:         c.MinSpeed,
		MaxSpeed:         c.MaxSpeed,
		ScreenWidth:      c.ScreenWidth,
		ScreenHeight:     c.ScreenHeight,
	}
}

// Validate checks the invariants the simulation relies on and reports all
// violations at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.ScreenWidth > 0 && c.ScreenHeight > 0, "screen size must be positive, got %gx%g", c.ScreenWidth, c.ScreenHeight)
	check(len(c.BoidShape) >= 3, "boid shape needs at least 3 vertices, got %d", len(c.BoidShape))
	check(c.BoidScale > 0, "boid scale must be positive, got %g", c.BoidScale)
	check(c.NumAgents >= 0, "agent count cannot be negative, got %d", c.NumAgents)
	check(c.NumObstacles >= 0, "obstacle count cannot be negative, got %d", c.NumObstacles)
	check(c.VisibleRange >= 0, "visible range cannot be negative, got %g", c.VisibleRange)
	check(c.ProtectedRange >= 0, "protected range cannot be negative, got %g", c.ProtectedRange)
	check(c.EdgeBuffer >= 0, "edge buffer cannot be negative, got %g", c.EdgeBuffer)
	check(c.ObstacleRadius > 0, "obstacle radius must be positive, got %g", c.ObstacleRadius)
	check(c.ObstacleBuffer >= 1, "obstacle buffer must be >= 1, got %g", c.ObstacleBuffer)
	check(c.InitSpeed > 0, "initial speed must be positive, got %g", c.InitSpeed)
	check(c.MinSpeed > 0, "min speed must be positive, got %g", c.MinSpeed)
	check(c.MinSpeed <= c.MaxSpeed, "min speed %g exceeds max speed %g", c.MinSpeed, c.MaxSpeed)
	check(c.TickScale > 0, "tick scale must be positive, got %g", c.TickScale)
	check(c.ClickMode == ClickSpawnAgent || c.ClickMode == ClickSpawnObstacle, "unknown click mode %d", c.ClickMode)
	check(c.Workers >= 1, "workers must be >= 1, got %d", c.Workers)
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"alignment", c.AlignmentFactor},
		{"cohesion", c.CohesionFactor},
		{"separation", c.SeparationFactor},
		{"edge", c.EdgeFactor},
		{"obstacle", c.ObstacleFactor},
	} {
		check(!math.IsNaN(f.value) && !math.IsInf(f.value, 0), "%s factor must be finite, got %g", f.name, f.value)
	}
	for _, name := range []string{c.Background, c.BoidColor, c.ObstacleColor} {
		_, err := render.ColorByName(name)
		check(err == nil, "%v", err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// LoadConfig reads a configuration file over the defaults.
// JSON files are validated against the embedded schema first, TOML files are
// decoded directly. The result is always checked with Validate.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		if err := loadJSON(configFile, cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadJSON(configFile string, cfg *Config) error {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := json.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
