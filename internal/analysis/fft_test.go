package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/sim"
)

func TestPowerSpectrum_PeakAtSignalFrequency(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	maxIdx := 0
	for i := range ps {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 8 {
		t.Errorf("peak at bin %d, want 8", maxIdx)
	}
}

func TestDominantPeriod_Sine(t *testing.T) {
	dt := 0.01
	period := 0.73
	data := make([]float64, 3000)
	for i := range data {
		data[i] = 2 + math.Cos(2*math.Pi*float64(i)*dt/period)
	}

	got := DominantPeriod(data, dt)
	if math.Abs(got-period)/period > 0.01 {
		t.Errorf("DominantPeriod = %v, want %v", got, period)
	}
}

func TestDominantPeriod_Degenerate(t *testing.T) {
	if got := DominantPeriod([]float64{1, 2}, 0.1); !math.IsInf(got, 1) {
		t.Errorf("short series: got %v, want +Inf", got)
	}
	if got := DominantPeriod(make([]float64, 64), 0.1); !math.IsInf(got, 1) {
		t.Errorf("constant series: got %v, want +Inf", got)
	}
	if got := DominantPeriod(make([]float64, 64), 0); !math.IsInf(got, 1) {
		t.Errorf("zero dt: got %v, want +Inf", got)
	}
}

func TestDominantPeriod_CircularOrbit(t *testing.T) {
	p := sim.DefaultParams()
	p.Dt = 0.001
	p.Steps = 20000

	vy := math.Sqrt(p.Constants.G * p.Constants.M)
	tr := sim.Integrate(p, 1, 0, 0, vy)

	want := 2 * math.Pi / vy
	got := DominantPeriod(tr.X, p.Dt)
	if math.Abs(got-want)/want > 0.02 {
		t.Errorf("orbital period = %v, want %v", got, want)
	}
}
