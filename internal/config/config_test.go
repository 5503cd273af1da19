package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	p := cfg.Params()
	if p != sim.DefaultParams() {
		t.Errorf("default params %+v, want %+v", p, sim.DefaultParams())
	}

	init := cfg.GetInitState()
	if len(init) != 4 || init[0] != 1 || init[1] != 0 || init[2] != 0 || init[3] != 1 {
		t.Errorf("unexpected initial state %v", init)
	}

	vp := cfg.Viewport()
	if vp.XMin != -0.5 || vp.XMax != 1.5 || vp.YMin != -0.5 || vp.YMax != 0.5 {
		t.Errorf("unexpected viewport %+v", vp)
	}
	if cfg.View.Stride != 10 {
		t.Errorf("expected stride 10, got %d", cfg.View.Stride)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	data := []byte("dt: 0.001\ninit_state:\n  vy: 2.5\nview:\n  stride: 5\n  theme: retro\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Dt != 0.001 || cfg.InitState.VY != 2.5 || cfg.View.Stride != 5 || cfg.View.Theme != "retro" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Steps != DefaultSteps || cfg.InitState.X != 1 || cfg.Physics.CentralMass != DefaultCentralMass {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("steps: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, GetPreset("circular"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Steps != 500 {
		t.Errorf("expected steps 500, got %d", cfg.Steps)
	}
	if math.Abs(cfg.InitState.VY-math.Sqrt(10)) > 1e-12 {
		t.Errorf("preset value lost: vy=%f", cfg.InitState.VY)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	cfg := GetPreset("circular")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		bounds bool
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }, true},
		{"zero steps", func(c *Config) { c.Steps = 0 }, true},
		{"empty viewport", func(c *Config) { c.View.XMax = c.View.XMin }, true},
		{"zero stride", func(c *Config) { c.View.Stride = 0 }, false},
		{"zero fps", func(c *Config) { c.View.FPS = 0 }, false},
		{"nan mass", func(c *Config) { c.Physics.CentralMass = math.NaN() }, false},
		{"unknown theme", func(c *Config) { c.View.Theme = "neon" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.bounds && !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.InitState = InitStateConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("origin start should be accepted, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("circular")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if math.Abs(cfg.InitState.VY-math.Sqrt(10)) > 1e-12 {
		t.Errorf("expected circular speed, got %f", cfg.InitState.VY)
	}

	if *GetPreset("eccentric") != *DefaultConfig() {
		t.Error("eccentric preset should match the defaults")
	}

	cfg.Dt = 42
	if GetPreset("circular").Dt == 42 {
		t.Error("presets must not share state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
