package windowing

import (
	"math"
)

// Hamming represents a symmetric Hamming window
type Hamming struct {
	size         int
	coefficients []float64
}

// NewHamming creates a new Hamming window
func NewHamming(size int) *Hamming {
	h := &Hamming{size: size}
	h.generate()
	return h
}

func (h *Hamming) generate() {
	h.coefficients = make([]float64, h.size)

	if h.size == 1 {
		h.coefficients[0] = 1.0
		return
	}

	denominator := float64(h.size - 1)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denominator)
	}
}

func (h *Hamming) Apply(signal []float64) []float64 {
	return apply(signal, h.coefficients)
}

func (h *Hamming) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, h.coefficients)
}

func (h *Hamming) GetCoefficients() []float64 {
	return copyCoefficients(h.coefficients)
}

func (h *Hamming) GetSize() int {
	return h.size
}

func (h *Hamming) GetType() string {
	return "Hamming"
}
