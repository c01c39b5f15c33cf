package windowing

import (
	"math"
)

// BlackmanHarris represents a symmetric 4-term Blackman-Harris window
type BlackmanHarris struct {
	size         int
	coefficients []float64
}

// NewBlackmanHarris creates a new Blackman-Harris window
func NewBlackmanHarris(size int) *BlackmanHarris {
	b := &BlackmanHarris{size: size}
	b.generate()
	return b
}

func (b *BlackmanHarris) generate() {
	b.coefficients = make([]float64, b.size)

	if b.size == 1 {
		b.coefficients[0] = 1.0
		return
	}

	const (
		a0 = 0.35875
		a1 = 0.48829
		a2 = 0.14128
		a3 = 0.01168
	)

	denominator := float64(b.size - 1)
	for i := 0; i < b.size; i++ {
		arg := 2 * math.Pi * float64(i) / denominator
		b.coefficients[i] = a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg) - a3*math.Cos(3*arg)
	}
}

func (b *BlackmanHarris) Apply(signal []float64) []float64 {
	return apply(signal, b.coefficients)
}

func (b *BlackmanHarris) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, b.coefficients)
}

func (b *BlackmanHarris) GetCoefficients() []float64 {
	return copyCoefficients(b.coefficients)
}

func (b *BlackmanHarris) GetSize() int {
	return b.size
}

func (b *BlackmanHarris) GetType() string {
	return "BlackmanHarris"
}
