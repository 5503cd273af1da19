package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod estimates the period of the strongest oscillation in data,
// sampled every dt. The mean is removed and the series zero-padded to refine
// the frequency grid. It returns +Inf when no oscillation is found.
func DominantPeriod(data []float64, dt float64) float64 {
	if len(data) < 4 || dt <= 0 {
		return math.Inf(1)
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	n := 1
	for n < 4*len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	ps := PowerSpectrum(padded)

	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 || maxPower == 0 {
		return math.Inf(1)
	}

	// Parabolic interpolation around the peak bin.
	peak := float64(maxIdx)
	if maxIdx > 0 && maxIdx < len(ps)-1 {
		a, b, c := ps[maxIdx-1], ps[maxIdx], ps[maxIdx+1]
		if den := a - 2*b + c; den != 0 {
			peak += 0.5 * (a - c) / den
		}
	}

	return float64(n) * dt / peak
}
