package windowing

import (
	"math"
)

// Parzen represents a Parzen (de la Vallée Poussin) window, a piecewise cubic
// approximation of the Gaussian with sidelobes below -53 dB.
type Parzen struct {
	size         int
	coefficients []float64
}

// NewParzen creates a new Parzen window
func NewParzen(size int) *Parzen {
	p := &Parzen{size: size}
	p.generate()
	return p
}

func (p *Parzen) generate() {
	p.coefficients = make([]float64, p.size)

	if p.size == 1 {
		p.coefficients[0] = 1.0
		return
	}

	half := float64(p.size-1) / 2.0
	for i := 0; i < p.size; i++ {
		n := math.Abs(float64(i) - half)
		ratio := n / half
		if n <= half/2.0 {
			p.coefficients[i] = 1.0 - 6.0*ratio*ratio*(1.0-ratio)
		} else {
			d := 1.0 - ratio
			p.coefficients[i] = 2.0 * d * d * d
		}
	}
}

func (p *Parzen) Apply(signal []float64) []float64 {
	return apply(signal, p.coefficients)
}

func (p *Parzen) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, p.coefficients)
}

func (p *Parzen) GetCoefficients() []float64 {
	return copyCoefficients(p.coefficients)
}

func (p *Parzen) GetSize() int {
	return p.size
}

func (p *Parzen) GetType() string {
	return "Parzen"
}
