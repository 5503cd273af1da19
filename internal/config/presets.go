package config

import (
	"math"
	"sort"
)

// Presets are complete configurations. "eccentric" matches DefaultConfig.
var Presets = map[string]func() *Config{
	"eccentric": DefaultConfig,
	"circular": func() *Config {
		cfg := DefaultConfig()
		cfg.InitState.VY = math.Sqrt(DefaultG * DefaultCentralMass / cfg.InitState.X)
		cfg.Steps = 20000
		cfg.View = wideView(cfg.View)
		return cfg
	},
	"elliptic": func() *Config {
		cfg := DefaultConfig()
		cfg.InitState.VY = 2.5
		cfg.View = wideView(cfg.View)
		return cfg
	},
	// Ten times the default step: the periapsis pass visibly drifts.
	"coarse": func() *Config {
		cfg := DefaultConfig()
		cfg.Dt = 0.001
		return cfg
	},
}

func wideView(v ViewConfig) ViewConfig {
	v.XMin, v.XMax = -1.5, 1.5
	v.YMin, v.YMax = -1.2, 1.2
	return v
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
