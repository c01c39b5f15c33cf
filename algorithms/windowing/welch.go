package windowing

// Welch represents a Welch (parabolic) window
type Welch struct {
	size         int
	coefficients []float64
}

// NewWelch creates a new Welch window
func NewWelch(size int) *Welch {
	w := &Welch{size: size}
	w.generate()
	return w
}

func (w *Welch) generate() {
	w.coefficients = make([]float64, w.size)

	if w.size == 1 {
		w.coefficients[0] = 1.0
		return
	}

	half := float64(w.size-1) / 2.0
	for i := 0; i < w.size; i++ {
		arg := (float64(i) - half) / half
		w.coefficients[i] = 1.0 - arg*arg
	}
}

func (w *Welch) Apply(signal []float64) []float64 {
	return apply(signal, w.coefficients)
}

func (w *Welch) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, w.coefficients)
}

func (w *Welch) GetCoefficients() []float64 {
	return copyCoefficients(w.coefficients)
}

func (w *Welch) GetSize() int {
	return w.size
}

func (w *Welch) GetType() string {
	return "Welch"
}
