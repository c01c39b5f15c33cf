// Package measure compares an extracted instantaneous-frequency curve
// against its ground truth with one of three scalar discrepancy measures.
// Lower is always better for every metric.
package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/anarkiwi/AviaNZ/algorithms/common"
	"github.com/anarkiwi/AviaNZ/algorithms/curves"
)

// Metric selects the discrepancy measure.
type Metric string

const (
	// L2 is the Euclidean norm of the pointwise difference, normalized by
	// the spectrogram's total cell count.
	L2 Metric = "L2"
	// Iatsenko is the mean squared difference relative to the ground
	// truth's variance about its own mean, after Iatsenko et al.
	Iatsenko Metric = "Iatsenko"
	// Geodesic is the elastic shape distance between the two curves as
	// parametric paths on the SRVF shape sphere.
	Geodesic Metric = "Geodesic"
)

// ParseMetric maps a metric name to a Metric. "Curve_registration" is kept
// as an alias of Geodesic for compatibility with older experiment configs.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "L2":
		return L2, nil
	case "Iatsenko":
		return Iatsenko, nil
	case "Geodesic", "Curve_registration":
		return Geodesic, nil
	default:
		return "", fmt.Errorf("unrecognized metric %q", name)
	}
}

// Evaluator computes one metric between extracted and ground-truth curves.
type Evaluator struct {
	metric Metric
}

// NewEvaluator creates an evaluator for the given metric.
func NewEvaluator(metric Metric) *Evaluator {
	return &Evaluator{metric: metric}
}

// Metric returns the metric this evaluator computes.
func (e *Evaluator) Metric() Metric {
	return e.metric
}

// Compare computes the discrepancy between an extracted IF curve and the
// ground truth sampled at the same time points. Both curves must have the
// same length. T is the signal duration in seconds and specCells the total
// cell count of the spectrogram the curve was extracted from; they are only
// used by the metrics that need them. A NaN result marks a degenerate input
// (zero-variance ground truth under Iatsenko), not a failure.
func (e *Evaluator) Compare(extracted, truth []float64, T float64, specCells int) (float64, error) {
	if len(extracted) != len(truth) {
		return 0, fmt.Errorf("curve lengths differ: extracted %d, truth %d", len(extracted), len(truth))
	}
	if len(extracted) == 0 {
		return 0, fmt.Errorf("empty curves")
	}

	switch e.metric {
	case L2:
		if specCells <= 0 {
			return 0, fmt.Errorf("spectrogram cell count must be positive, got %d", specCells)
		}
		return floats.Distance(extracted, truth, 2) / float64(specCells), nil

	case Iatsenko:
		return iatsenko(truth, extracted), nil

	case Geodesic:
		return geodesic(extracted, truth, T)

	default:
		return 0, fmt.Errorf("unrecognized metric %q", e.metric)
	}
}

// iatsenko computes mean((ref-est)^2) / mean((ref-mean(ref))^2). A reference
// with zero variance yields NaN rather than a division failure.
func iatsenko(ref, est []float64) float64 {
	denom := common.MeanSquaredDeviation(ref)
	if denom == 0 {
		return math.NaN()
	}

	num := 0.0
	for i := range ref {
		d := ref[i] - est[i]
		num += d * d
	}
	num /= float64(len(ref))

	return num / denom
}

// geodesic embeds both curves as (time, frequency) paths over [0, T] and
// returns their SRVF shape-sphere distance.
func geodesic(extracted, truth []float64, T float64) (float64, error) {
	times := common.Linspace(0, T, len(extracted))

	a, err := curves.NewCurve(times, extracted)
	if err != nil {
		return 0, fmt.Errorf("extracted curve: %w", err)
	}
	b, err := curves.NewCurve(times, truth)
	if err != nil {
		return 0, fmt.Errorf("truth curve: %w", err)
	}

	return curves.GeodesicDistance(a, b)
}
