package ifextract

import (
	"fmt"
	"math"

	"github.com/anarkiwi/AviaNZ/algorithms/spectral"
)

// Extractor traces the dominant frequency ridge through a spectrogram.
//
// The ridge is found by dynamic programming over the per-frame log
// amplitudes. Alpha penalizes the squared normalized frequency jump between
// consecutive frames and Beta penalizes its absolute value, so larger values
// of either favour smoother tracks over louder but jumpier ones.
type Extractor struct {
	Alpha float64
	Beta  float64
}

// NewExtractor creates a ridge extractor with the given penalty weights.
func NewExtractor(alpha, beta float64) *Extractor {
	return &Extractor{Alpha: alpha, Beta: beta}
}

// Extract returns the instantaneous-frequency curve of the dominant ridge,
// one frequency value (in the units of the spectrogram's frequency axis) per
// time frame.
func (e *Extractor) Extract(sp *spectral.Spectrogram) ([]float64, error) {
	if sp == nil || sp.TimeFrames == 0 || sp.FreqBins == 0 {
		return nil, fmt.Errorf("empty spectrogram")
	}
	if len(sp.FreqAxis) != sp.FreqBins {
		return nil, fmt.Errorf("frequency axis length %d does not match %d bins", len(sp.FreqAxis), sp.FreqBins)
	}
	if e.Alpha < 0 || e.Beta < 0 {
		return nil, fmt.Errorf("penalty weights must be non-negative, got alpha=%g beta=%g", e.Alpha, e.Beta)
	}

	frames := sp.TimeFrames
	bins := sp.FreqBins

	span := sp.FreqAxis[bins-1] - sp.FreqAxis[0]
	if span <= 0 {
		span = 1
	}

	// Log amplitudes as per-bin evidence.
	score := make([][]float64, frames)
	for t := 0; t < frames; t++ {
		score[t] = make([]float64, bins)
		for k := 0; k < bins; k++ {
			score[t][k] = math.Log1p(sp.Magnitude[t][k])
		}
	}

	// Forward pass: best cumulative score per bin with penalized transitions.
	acc := make([]float64, bins)
	copy(acc, score[0])
	back := make([][]int, frames)

	for t := 1; t < frames; t++ {
		next := make([]float64, bins)
		back[t] = make([]int, bins)

		for k := 0; k < bins; k++ {
			bestScore := math.Inf(-1)
			bestPrev := 0

			for j := 0; j < bins; j++ {
				d := (sp.FreqAxis[k] - sp.FreqAxis[j]) / span
				candidate := acc[j] - e.Alpha*d*d - e.Beta*math.Abs(d)
				if candidate > bestScore {
					bestScore = candidate
					bestPrev = j
				}
			}

			next[k] = score[t][k] + bestScore
			back[t][k] = bestPrev
		}

		acc = next
	}

	// Backtrack from the best terminal bin.
	bin := 0
	for k := 1; k < bins; k++ {
		if acc[k] > acc[bin] {
			bin = k
		}
	}

	path := make([]int, frames)
	path[frames-1] = bin
	for t := frames - 1; t > 0; t-- {
		bin = back[t][bin]
		path[t-1] = bin
	}

	curve := make([]float64, frames)
	for t, k := range path {
		curve[t] = sp.FreqAxis[k]
	}

	return curve, nil
}
