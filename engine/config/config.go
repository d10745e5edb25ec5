package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Edge names a side of the play area rats can enter from
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeRight  Edge = "right"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
)

// AllEdges lists every edge
var AllEdges = []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

// Target policies for autonomous defenders
const (
	PolicyNearest     = "nearest"
	PolicySkipClosest = "skip-closest"
)

// Config holds every tuning value of an encounter. Distances are pixels,
// times are milliseconds and speeds are pixels per millisecond.
type Config struct {
	Agent    AgentConfig    `yaml:"agent"`
	Grid     GridConfig     `yaml:"grid"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Flower   FlowerConfig   `yaml:"flower"`
	Rat      RatConfig      `yaml:"rat"`
	Waves    []Wave         `yaml:"waves"`

	DebugTimeScale float64 `yaml:"debugTimeScale"` // dt multiplier while debug mode is on
}

// AgentConfig tunes defender targeting and movement
type AgentConfig struct {
	BaseSpeed        float64 `yaml:"baseSpeed"`
	SprintMultiplier float64 `yaml:"sprintMultiplier"`
	AggroRadius      float64 `yaml:"aggroRadius"`
	SprintRadius     float64 `yaml:"sprintRadius"`
	CatchDistance    float64 `yaml:"catchDistance"`
	ArrivalTolerance float64 `yaml:"arrivalTolerance"`
	ReplanDistance   float64 `yaml:"replanDistance"`
	ReplanInterval   float64 `yaml:"replanInterval"`
	TargetPolicy     string  `yaml:"targetPolicy"`
}

// SprintSpeed returns the elevated chase speed
func (a AgentConfig) SprintSpeed() float64 { return a.BaseSpeed * a.SprintMultiplier }

// GridConfig controls the navigation grid
type GridConfig struct {
	CellSize  float64 `yaml:"cellSize"`
	Inflation float64 `yaml:"inflation"`
}

// ObstacleConfig controls random obstacle placement
type ObstacleConfig struct {
	MinCount       int     `yaml:"minCount"`
	MaxCount       int     `yaml:"maxCount"`
	MinSize        float64 `yaml:"minSize"`
	MaxSize        float64 `yaml:"maxSize"`
	EdgeMargin     float64 `yaml:"edgeMargin"`
	ZonePadding    float64 `yaml:"zonePadding"`
	FlowerPadding  float64 `yaml:"flowerPadding"`
	OverlapPadding float64 `yaml:"overlapPadding"`
	MaxAttempts    int     `yaml:"maxAttempts"`
}

// FlowerConfig controls objectives and the protected zone around them
type FlowerConfig struct {
	Count         int     `yaml:"count"`
	ZoneFraction  float64 `yaml:"zoneFraction"`  // protected zone size relative to the play area
	RingFraction  float64 `yaml:"ringFraction"`  // ellipse radii relative to the zone
	BloomDuration float64 `yaml:"bloomDuration"` // ms from 0 to full bloom
	BloomStages   int     `yaml:"bloomStages"`
	HitDamage     float64 `yaml:"hitDamage"`
	HitRadius     float64 `yaml:"hitRadius"`
}

// RatConfig controls intruders
type RatConfig struct {
	BaseSpeed       float64 `yaml:"baseSpeed"`
	Radius          float64 `yaml:"radius"`
	FadeIn          float64 `yaml:"fadeIn"`
	KnockbackTime   float64 `yaml:"knockbackTime"`
	KnockbackSpeed  float64 `yaml:"knockbackSpeed"`
	ScareRadius     float64 `yaml:"scareRadius"`
	OffscreenMargin float64 `yaml:"offscreenMargin"`
}

// Wave describes spawns during [Start, End)
type Wave struct {
	Start           float64 `yaml:"start"`
	End             float64 `yaml:"end"`
	Count           int     `yaml:"count"`
	SpeedMultiplier float64 `yaml:"speedMultiplier"`
	Edges           []Edge  `yaml:"edges"`
}

// Duration returns the wave window length
func (w Wave) Duration() float64 { return w.End - w.Start }

// Interval returns the spawn cadence of the wave
func (w Wave) Interval() float64 { return w.Duration() / float64(w.Count) }

// Default returns the stock encounter tuning
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			BaseSpeed:        0.12,
			SprintMultiplier: 1.6,
			AggroRadius:      260,
			SprintRadius:     120,
			CatchDistance:    18,
			ArrivalTolerance: 6,
			ReplanDistance:   30,
			ReplanInterval:   250,
			TargetPolicy:     PolicyNearest,
		},
		Grid: GridConfig{
			CellSize:  20,
			Inflation: 12,
		},
		Obstacle: ObstacleConfig{
			MinCount:       4,
			MaxCount:       8,
			MinSize:        30,
			MaxSize:        80,
			EdgeMargin:     40,
			ZonePadding:    30,
			FlowerPadding:  40,
			OverlapPadding: 24,
			MaxAttempts:    200,
		},
		Flower: FlowerConfig{
			Count:         5,
			ZoneFraction:  0.4,
			RingFraction:  0.35,
			BloomDuration: 90000,
			BloomStages:   4,
			HitDamage:     0.2,
			HitRadius:     22,
		},
		Rat: RatConfig{
			BaseSpeed:       0.05,
			Radius:          14,
			FadeIn:          300,
			KnockbackTime:   450,
			KnockbackSpeed:  0.35,
			ScareRadius:     90,
			OffscreenMargin: 200,
		},
		Waves: []Wave{
			{Start: 0, End: 20000, Count: 4, SpeedMultiplier: 1.0, Edges: []Edge{EdgeLeft, EdgeRight}},
			{Start: 20000, End: 45000, Count: 7, SpeedMultiplier: 1.15, Edges: []Edge{EdgeLeft, EdgeRight, EdgeTop}},
			{Start: 45000, End: 75000, Count: 10, SpeedMultiplier: 1.3, Edges: AllEdges},
			{Start: 75000, End: 90000, Count: 8, SpeedMultiplier: 1.5, Edges: AllEdges},
		},
		DebugTimeScale: 4,
	}
}

// Load reads a YAML file on top of the defaults
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with
func (c *Config) Validate() error {
	a := c.Agent
	if a.BaseSpeed <= 0 {
		return fmt.Errorf("agent.baseSpeed must be > 0, got %v", a.BaseSpeed)
	}
	if a.SprintMultiplier < 1 {
		return fmt.Errorf("agent.sprintMultiplier must be >= 1, got %v", a.SprintMultiplier)
	}
	if a.AggroRadius <= 0 || a.SprintRadius <= 0 || a.CatchDistance <= 0 {
		return fmt.Errorf("agent radii must be > 0")
	}
	switch a.TargetPolicy {
	case PolicyNearest, PolicySkipClosest:
	default:
		return fmt.Errorf("unknown agent.targetPolicy %q", a.TargetPolicy)
	}

	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cellSize must be > 0, got %v", c.Grid.CellSize)
	}
	if c.Grid.Inflation < 0 {
		return fmt.Errorf("grid.inflation must be >= 0, got %v", c.Grid.Inflation)
	}

	o := c.Obstacle
	if o.MinCount < 0 || o.MaxCount < o.MinCount {
		return fmt.Errorf("obstacle count range [%d, %d] is invalid", o.MinCount, o.MaxCount)
	}
	if o.MinSize <= 0 || o.MaxSize < o.MinSize {
		return fmt.Errorf("obstacle size range [%v, %v] is invalid", o.MinSize, o.MaxSize)
	}

	f := c.Flower
	if f.Count < 1 {
		return fmt.Errorf("flower.count must be >= 1, got %d", f.Count)
	}
	if f.BloomDuration <= 0 {
		return fmt.Errorf("flower.bloomDuration must be > 0, got %v", f.BloomDuration)
	}
	if f.BloomStages < 1 {
		return fmt.Errorf("flower.bloomStages must be >= 1, got %d", f.BloomStages)
	}
	if f.ZoneFraction <= 0 || f.ZoneFraction > 1 {
		return fmt.Errorf("flower.zoneFraction must be in (0, 1], got %v", f.ZoneFraction)
	}

	if c.Rat.BaseSpeed <= 0 || c.Rat.Radius <= 0 {
		return fmt.Errorf("rat.baseSpeed and rat.radius must be > 0")
	}

	if len(c.Waves) == 0 {
		return fmt.Errorf("waves cannot be empty")
	}
	prevEnd := 0.0
	for i, w := range c.Waves {
		if w.End <= w.Start {
			return fmt.Errorf("wave %d: end %v must be after start %v", i, w.End, w.Start)
		}
		if w.Start < prevEnd {
			return fmt.Errorf("wave %d starts at %v before previous wave ends at %v", i, w.Start, prevEnd)
		}
		if w.Count < 1 {
			return fmt.Errorf("wave %d: count must be >= 1, got %d", i, w.Count)
		}
		if w.SpeedMultiplier <= 0 {
			return fmt.Errorf("wave %d: speedMultiplier must be > 0", i)
		}
		if len(w.Edges) == 0 {
			return fmt.Errorf("wave %d: edges cannot be empty", i)
		}
		for _, e := range w.Edges {
			if !validEdge(e) {
				return fmt.Errorf("wave %d: unknown edge %q (want one of %s)", i, e, edgeNames())
			}
		}
		prevEnd = w.End
	}

	if c.DebugTimeScale <= 0 {
		return fmt.Errorf("debugTimeScale must be > 0, got %v", c.DebugTimeScale)
	}
	return nil
}

func validEdge(e Edge) bool {
	for _, a := range AllEdges {
		if a == e {
			return true
		}
	}
	return false
}

func edgeNames() string {
	names := make([]string, len(AllEdges))
	for i, e := range AllEdges {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
