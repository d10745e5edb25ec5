package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
	if cfg.Agent.SprintRadius >= cfg.Agent.AggroRadius {
		t.Error("sprint radius should sit inside the aggro radius")
	}
	if cfg.Agent.SprintSpeed() <= cfg.Agent.BaseSpeed*1.1 {
		t.Errorf("sprint speed %v too close to base speed", cfg.Agent.SprintSpeed())
	}
}

func TestWaveInterval(t *testing.T) {
	w := Wave{Start: 1000, End: 5000, Count: 4}
	if w.Duration() != 4000 {
		t.Errorf("Duration = %v", w.Duration())
	}
	if w.Interval() != 1000 {
		t.Errorf("Interval = %v", w.Interval())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
agent:
  baseSpeed: 0.2
  targetPolicy: skip-closest
flower:
  count: 3
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Agent.BaseSpeed != 0.2 {
					t.Errorf("expected baseSpeed = 0.2, got %v", cfg.Agent.BaseSpeed)
				}
				if cfg.Agent.TargetPolicy != PolicySkipClosest {
					t.Errorf("expected skip-closest policy, got %q", cfg.Agent.TargetPolicy)
				}
				if cfg.Flower.Count != 3 {
					t.Errorf("expected 3 flowers, got %d", cfg.Flower.Count)
				}
				if cfg.Grid.CellSize != Default().Grid.CellSize {
					t.Errorf("grid cell size lost its default: %v", cfg.Grid.CellSize)
				}
				if len(cfg.Waves) != len(Default().Waves) {
					t.Errorf("waves lost their defaults: %d", len(cfg.Waves))
				}
			},
		},
		{
			name: "custom waves",
			yamlContent: `
waves:
  - start: 0
    end: 1000
    count: 2
    speedMultiplier: 1
    edges: [top]
`,
			validate: func(t *testing.T, cfg *Config) {
				if len(cfg.Waves) != 1 || cfg.Waves[0].Edges[0] != EdgeTop {
					t.Errorf("unexpected waves: %+v", cfg.Waves)
				}
			},
		},
		{
			name:        "unknown policy",
			yamlContent: "agent:\n  targetPolicy: random\n",
			wantErr:     true,
			errContains: "unknown agent.targetPolicy",
		},
		{
			name: "overlapping waves",
			yamlContent: `
waves:
  - {start: 0, end: 1000, count: 1, speedMultiplier: 1, edges: [top]}
  - {start: 500, end: 2000, count: 1, speedMultiplier: 1, edges: [top]}
`,
			wantErr:     true,
			errContains: "before previous wave ends",
		},
		{
			name:        "bad edge",
			yamlContent: "waves:\n  - {start: 0, end: 10, count: 1, speedMultiplier: 1, edges: [north]}\n",
			wantErr:     true,
			errContains: "unknown edge",
		},
		{
			name:        "empty waves",
			yamlContent: "waves: []\n",
			wantErr:     true,
			errContains: "waves cannot be empty",
		},
		{
			name:        "bad cell size",
			yamlContent: "grid:\n  cellSize: 0\n",
			wantErr:     true,
			errContains: "grid.cellSize",
		},
		{
			name:        "malformed yaml",
			yamlContent: "agent: [",
			wantErr:     true,
			errContains: "failed to parse config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "encounter.yaml")
	if err := os.WriteFile(path, []byte("debugTimeScale: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DebugTimeScale != 8 {
		t.Errorf("expected debugTimeScale = 8, got %v", cfg.DebugTimeScale)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
