package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultG            = 1.0
	DefaultCentralMass  = 10.0
	DefaultOrbitingMass = 1.0
	DefaultDt           = sim.DefaultDt
	DefaultSteps        = sim.DefaultSteps
	DefaultStride       = 10
	DefaultFPS          = 60
	DefaultTheme        = "night"
)

type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Dt        float64         `yaml:"dt"`
	Steps     int             `yaml:"steps"`
	InitState InitStateConfig `yaml:"init_state"`
	View      ViewConfig      `yaml:"view"`
}

type PhysicsConfig struct {
	G            float64 `yaml:"g"`
	CentralMass  float64 `yaml:"central_mass"`
	OrbitingMass float64 `yaml:"orbiting_mass"`
}

type InitStateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

type ViewConfig struct {
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`
	Stride int     `yaml:"stride"`
	FPS    int     `yaml:"fps"`
	Theme  string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	vp := viz.DefaultViewport()
	return &Config{
		Physics: PhysicsConfig{
			G:            DefaultG,
			CentralMass:  DefaultCentralMass,
			OrbitingMass: DefaultOrbitingMass,
		},
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		InitState: InitStateConfig{X: 1, Y: 0, VX: 0, VY: 1},
		View: ViewConfig{
			XMin:   vp.XMin,
			XMax:   vp.XMax,
			YMin:   vp.YMin,
			YMax:   vp.YMax,
			Stride: DefaultStride,
			FPS:    DefaultFPS,
			Theme:  DefaultTheme,
		},
	}
}

// Load reads a yaml file over the defaults, so missing keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file over base. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations no run can start from. Initial conditions
// are not checked: starting at the origin is allowed and yields NaN.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if err := c.Viewport().Validate(); err != nil {
		return err
	}
	if c.View.Stride < 1 {
		return fmt.Errorf("stride must be at least 1, got %d", c.View.Stride)
	}
	if c.View.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.View.FPS)
	}
	for _, v := range []float64{c.Physics.G, c.Physics.CentralMass, c.Physics.OrbitingMass} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("physical constants must be finite, got %+v", c.Physics)
		}
	}
	if _, ok := viz.GetTheme(c.View.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.View.Theme, viz.ThemeNames())
	}
	return nil
}

func (c *Config) Params() sim.Params {
	return sim.Params{
		Constants: physics.Constants{
			G:    c.Physics.G,
			M:    c.Physics.CentralMass,
			Mass: c.Physics.OrbitingMass,
		},
		Dt:    c.Dt,
		Steps: c.Steps,
	}
}

func (c *Config) Viewport() viz.Viewport {
	return viz.Viewport{XMin: c.View.XMin, XMax: c.View.XMax, YMin: c.View.YMin, YMax: c.View.YMax}
}

func (c *Config) GetInitState() []float64 {
	return []float64{c.InitState.X, c.InitState.Y, c.InitState.VX, c.InitState.VY}
}

func (c *Config) GetParams() map[string]float64 {
	return map[string]float64{
		"g":  c.Physics.G,
		"M":  c.Physics.CentralMass,
		"m":  c.Physics.OrbitingMass,
		"dt": c.Dt,
	}
}
