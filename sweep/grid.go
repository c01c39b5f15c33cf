package sweep

import (
	"errors"
)

// Errors returned by grid validation.
var (
	ErrEmptyGrid        = errors.New("sweep: every grid dimension needs at least one value")
	ErrBadWindowWidth   = errors.New("sweep: window widths must be positive")
	ErrBadHopFraction   = errors.New("sweep: hop fractions must be in (0, 1]")
	ErrBadPenaltyWeight = errors.New("sweep: alpha and beta values must be non-negative")
)

// Grid is the exhaustive parameter search space: every combination of one
// value per dimension is evaluated.
type Grid struct {
	WindowWidths []int
	HopFractions []float64
	WindowTypes  []string
	Alphas       []float64
	Betas        []float64
}

// DefaultGrid returns the full experiment search space.
func DefaultGrid() Grid {
	return Grid{
		WindowWidths: []int{32, 64, 128, 256, 1024, 2048, 4096},
		HopFractions: []float64{0.1, 0.25, 0.5, 0.75, 0.9},
		WindowTypes:  []string{"Hann", "Parzen", "Welch", "Hamming", "Blackman", "BlackmanHarris"},
		Alphas:       []float64{0, 0.25, 0.5, 1, 2, 4, 6, 8, 10, 15, 20},
		Betas:        []float64{0, 0.25, 0.5, 1, 2, 4, 6, 8, 10, 15, 20},
	}
}

// Size returns the number of grid points.
func (g Grid) Size() int {
	return len(g.WindowWidths) * len(g.HopFractions) * len(g.WindowTypes) * len(g.Alphas) * len(g.Betas)
}

// Validate checks that every dimension is non-empty and in range.
func (g Grid) Validate() error {
	if g.Size() == 0 {
		return ErrEmptyGrid
	}

	for _, w := range g.WindowWidths {
		if w <= 0 {
			return ErrBadWindowWidth
		}
	}
	for _, h := range g.HopFractions {
		if h <= 0 || h > 1 {
			return ErrBadHopFraction
		}
	}
	for _, a := range g.Alphas {
		if a < 0 {
			return ErrBadPenaltyWeight
		}
	}
	for _, b := range g.Betas {
		if b < 0 {
			return ErrBadPenaltyWeight
		}
	}

	return nil
}

// Point is one concrete assignment of all tunable parameters.
type Point struct {
	WindowWidth int
	Incr        int
	WindowType  string
	Alpha       float64
	Beta        float64
}
