package windowing

import (
	"math"
)

// Hann represents a symmetric Hann window
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a new Hann window
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.generate()
	return h
}

func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)

	if h.size == 1 {
		h.coefficients[0] = 1.0
		return
	}

	denominator := float64(h.size - 1)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
}

func (h *Hann) Apply(signal []float64) []float64 {
	return apply(signal, h.coefficients)
}

func (h *Hann) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, h.coefficients)
}

func (h *Hann) GetCoefficients() []float64 {
	return copyCoefficients(h.coefficients)
}

func (h *Hann) GetSize() int {
	return h.size
}

func (h *Hann) GetType() string {
	return "Hann"
}
