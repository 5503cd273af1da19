package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/anim"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

// States farther out than this count as escaped.
const divergenceRadius = 1e3

var (
	configFile string
	preset     string
	verbose    bool

	dt     float64
	steps  int
	x0     float64
	y0     float64
	vx0    float64
	vy0    float64
	stride int
	fps    int
	theme  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "two-body orbit integrator and animator",
		RunE:  runPlay,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addRunFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "integrate an orbit and replay it live",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	addRunFlags(playCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "integrate an orbit and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	addRunFlags(traceCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s x0=(%g, %g) v0=(%g, %g) dt=%g steps=%d\n",
					name, cfg.InitState.X, cfg.InitState.Y, cfg.InitState.VX, cfg.InitState.VY, cfg.Dt, cfg.Steps)
			}
		},
	}

	rootCmd.AddCommand(playCmd, traceCmd, presetsCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "eccentric", "preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", def.Dt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", def.Steps, "number of samples")
	cmd.Flags().Float64Var(&x0, "x0", def.InitState.X, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", def.InitState.Y, "initial y")
	cmd.Flags().Float64Var(&vx0, "vx0", def.InitState.VX, "initial x velocity")
	cmd.Flags().Float64Var(&vy0, "vy0", def.InitState.VY, "initial y velocity")
	cmd.Flags().IntVar(&stride, "stride", def.View.Stride, "samples per animation frame")
	cmd.Flags().IntVar(&fps, "fps", def.View.FPS, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", def.View.Theme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers the preset, the config file and any explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("x0") {
		cfg.InitState.X = x0
	}
	if flags.Changed("y0") {
		cfg.InitState.Y = y0
	}
	if flags.Changed("vx0") {
		cfg.InitState.VX = vx0
	}
	if flags.Changed("vy0") {
		cfg.InitState.VY = vy0
	}
	if flags.Changed("stride") {
		cfg.View.Stride = stride
	}
	if flags.Changed("fps") {
		cfg.View.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// integrate runs the configured orbit with the default metrics attached.
// A non-finite trajectory is reported but still returned.
func integrate(cfg *config.Config, logger *slog.Logger) (*sim.Simulator, *sim.Trajectory) {
	s := sim.New(cfg.Params())
	for _, m := range metrics.Default(s.System(), divergenceRadius) {
		s.AddMetric(m)
	}

	ic := cfg.InitState
	logger.Debug("integrating",
		"preset", preset,
		"dt", cfg.Dt,
		"steps", cfg.Steps,
		"x0", ic.X, "y0", ic.Y, "vx0", ic.VX, "vy0", ic.VY)

	tr := s.Integrate(ic.X, ic.Y, ic.VX, ic.VY)
	if err := tr.Err(); err != nil {
		logger.Warn("trajectory contains non-finite values", "err", err)
	}
	logger.Debug("integration finished", "samples", tr.Len(), "metrics", tr.Metrics)
	return s, tr
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	_, tr := integrate(cfg, logger)

	a, err := anim.New(tr, cfg.View.Stride)
	if err != nil {
		return err
	}
	th, _ := viz.GetTheme(cfg.View.Theme)

	opts := viz.Options{
		Title:    "orbit · " + preset,
		Viewport: cfg.Viewport(),
		Theme:    th,
		FPS:      cfg.View.FPS,
		Params:   cfg.GetParams(),
	}
	logger.Debug("starting live view", "frames", a.FrameCount(), "fps", opts.FPS)

	p := tea.NewProgram(viz.NewModel(a, tr, opts))
	_, err = p.Run()
	return err
}

func runTrace(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, tr := integrate(cfg, logger)
	out := cmd.OutOrStdout()

	// Plot only the finite prefix.
	valid := tr.Len()
	if i := tr.FirstInvalid(); i >= 0 {
		valid = i
	}
	radii := tr.Radii()[:valid]

	fmt.Fprintf(out, "orbit %s: %d samples, dt=%g, t=%.4f\n\n", preset, tr.Len(), cfg.Dt, cfg.Params().Duration())
	if len(radii) > 1 {
		graph := asciigraph.Plot(radii,
			asciigraph.Height(15),
			asciigraph.Width(70),
			asciigraph.Caption("radius vs step"))
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	fftPeriod := analysis.DominantPeriod(tr.X[:valid], cfg.Dt)
	keplerPeriod := s.System().Period(tr.State(0))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "metric\tvalue")
	fmt.Fprintln(w, "------\t-----")
	for _, name := range []string{"radius_min", "radius_max", "energy_drift", "momentum_drift", "stability"} {
		fmt.Fprintf(w, "%s\t%.6g\n", name, tr.Metrics[name])
	}
	fmt.Fprintf(w, "period_fft\t%.6g\n", fftPeriod)
	fmt.Fprintf(w, "period_kepler\t%.6g\n", keplerPeriod)
	if err := w.Flush(); err != nil {
		return err
	}

	if err := tr.Err(); err != nil {
		fmt.Fprintf(out, "\nwarning: %v\n", err)
	}
	return nil
}
