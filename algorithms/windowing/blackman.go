package windowing

import (
	"math"
)

// Blackman represents a symmetric Blackman window
type Blackman struct {
	size         int
	coefficients []float64
}

// NewBlackman creates a new Blackman window
func NewBlackman(size int) *Blackman {
	b := &Blackman{size: size}
	b.generate()
	return b
}

func (b *Blackman) generate() {
	b.coefficients = make([]float64, b.size)

	if b.size == 1 {
		b.coefficients[0] = 1.0
		return
	}

	denominator := float64(b.size - 1)
	for i := 0; i < b.size; i++ {
		arg := 2 * math.Pi * float64(i) / denominator
		b.coefficients[i] = 0.42 - 0.5*math.Cos(arg) + 0.08*math.Cos(2*arg)
	}
}

func (b *Blackman) Apply(signal []float64) []float64 {
	return apply(signal, b.coefficients)
}

func (b *Blackman) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, b.coefficients)
}

func (b *Blackman) GetCoefficients() []float64 {
	return copyCoefficients(b.coefficients)
}

func (b *Blackman) GetSize() int {
	return b.size
}

func (b *Blackman) GetType() string {
	return "Blackman"
}
