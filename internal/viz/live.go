package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/anim"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	width       = 80
	height      = 20
	markerSize  = 2
	graphWidth  = 30
	graphHeight = 4
)

type TickMsg time.Time

type Options struct {
	Title    string
	Viewport Viewport
	Theme    Theme
	FPS      int
	Params   map[string]float64
}

func DefaultOptions() Options {
	return Options{
		Title:    "orbit",
		Viewport: DefaultViewport(),
		Theme:    ThemeNight,
		FPS:      60,
	}
}

// Model replays an animator frame by frame. The only input it accepts is a
// request to close the view.
type Model struct {
	anim      *anim.Animator
	traj      *sim.Trajectory
	opts      Options
	styles    styles
	canvas    *Canvas
	interval  time.Duration
	radii     []float64
	paramKeys []string
}

// NewModel returns a live view over a freshly initialized animator.
func NewModel(a *anim.Animator, tr *sim.Trajectory, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}

	keys := make([]string, 0, len(opts.Params))
	for k := range opts.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a.Reset()
	m := Model{
		anim:      a,
		traj:      tr,
		opts:      opts,
		styles:    newStyles(opts.Theme),
		canvas:    NewCanvas(width, height),
		interval:  time.Second / time.Duration(opts.FPS),
		radii:     make([]float64, 0, a.FrameCount()),
		paramKeys: keys,
	}
	m.draw()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.anim.Done() {
		return nil
	}
	return m.tick()
}

// Update advances one frame per tick and stops scheduling ticks once the
// animator is done.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case TickMsg:
		p, ok := m.anim.Advance()
		if !ok {
			return m, nil
		}
		m.radii = append(m.radii, physics.Radius(p.X, p.Y))
		m.draw()
		if m.anim.Done() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// draw redraws the whole polyline and the central body.
func (m *Model) draw() {
	m.canvas.Clear()
	DrawPolyline(m.canvas, m.opts.Viewport, m.anim.Points())
	DrawMarker(m.canvas, m.opts.Viewport, sim.Point{}, markerSize)
}

func (m Model) renderCanvas() string {
	bodyCol, bodyRow := -1, -1
	if x, y, ok := m.opts.Viewport.Project(m.canvas, sim.Point{}); ok && m.opts.Viewport.Contains(sim.Point{}) {
		bodyCol, bodyRow = x/2, y/4
	}

	var b strings.Builder
	for row, cells := range m.canvas.Grid {
		if row == bodyRow {
			b.WriteString(m.styles.trace.Render(string(cells[:bodyCol])))
			b.WriteString(m.styles.body.Render(string(cells[bodyCol])))
			b.WriteString(m.styles.trace.Render(string(cells[bodyCol+1:])))
		} else {
			b.WriteString(m.styles.trace.Render(string(cells)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.opts.Title)) + "\n")

	if m.anim.Done() {
		s.WriteString(m.styles.done.Render("DONE") + "\n\n")
	} else {
		s.WriteString(m.styles.status.Render("RUNNING") + "\n\n")
	}

	s.WriteString(m.styles.label.Render("Frame") + m.styles.value.Render(fmt.Sprintf("%d/%d", m.anim.Frame(), m.anim.FrameCount())) + "\n")
	s.WriteString(m.styles.label.Render("Progress") + m.styles.value.Render(progressBar(m.anim.Progress(), 20)) + "\n")

	if idx := m.anim.SampleIndex(); idx >= 0 {
		p := m.traj.At(idx)
		s.WriteString(m.styles.label.Render("Time") + m.styles.value.Render(fmt.Sprintf("%.4f", m.traj.Time(idx))) + "\n")
		s.WriteString(m.styles.label.Render("Position") + m.styles.value.Render(fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)) + "\n")
		s.WriteString(m.styles.label.Render("Radius") + m.styles.value.Render(fmt.Sprintf("%.4f", m.radii[len(m.radii)-1])) + "\n")
	}

	if series := finiteSeries(m.radii); len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("radius"),
		)
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	if len(m.paramKeys) > 0 {
		s.WriteString("\nPARAMETERS\n")
		for _, k := range m.paramKeys {
			s.WriteString("  " + m.styles.label.Render(k) + m.styles.value.Render(fmt.Sprintf("%g", m.opts.Params[k])) + "\n")
		}
	}

	s.WriteString(m.styles.help.Render("Q:Quit"))

	canvasView := m.styles.canvas.Render(m.renderCanvas())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))
}

func finiteSeries(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Points exposes the drawn polyline for inspection.
func (m Model) Points() []sim.Point { return m.anim.Points() }

func (m Model) Canvas() *Canvas { return m.canvas }
