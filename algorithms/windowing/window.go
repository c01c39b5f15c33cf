package windowing

import (
	"fmt"
)

// Window is a tapering function applied to an analysis frame before the FFT.
type Window interface {
	// Apply applies the window to a signal (creates new array)
	Apply(signal []float64) []float64

	// ApplyInPlace applies the window to a signal in-place
	ApplyInPlace(signal []float64) error

	// GetCoefficients returns a copy of the window coefficients
	GetCoefficients() []float64

	// GetSize returns the window size
	GetSize() int

	// GetType returns the window type name
	GetType() string
}

// New creates a window of the named type. Recognized names are Hann, Hamming,
// Blackman, BlackmanHarris, Welch and Parzen.
func New(name string, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	switch name {
	case "Hann":
		return NewHann(size), nil
	case "Hamming":
		return NewHamming(size), nil
	case "Blackman":
		return NewBlackman(size), nil
	case "BlackmanHarris":
		return NewBlackmanHarris(size), nil
	case "Welch":
		return NewWelch(size), nil
	case "Parzen":
		return NewParzen(size), nil
	default:
		return nil, fmt.Errorf("unrecognized window type %q", name)
	}
}

// apply multiplies signal by coefficients into a fresh slice.
func apply(signal, coefficients []float64) []float64 {
	if len(signal) != len(coefficients) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i := range signal {
		windowed[i] = signal[i] * coefficients[i]
	}
	return windowed
}

// applyInPlace multiplies signal by coefficients in place.
func applyInPlace(signal, coefficients []float64) error {
	if len(signal) != len(coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(coefficients))
	}

	for i := range signal {
		signal[i] *= coefficients[i]
	}
	return nil
}

// copyCoefficients returns a defensive copy of the coefficient slice.
func copyCoefficients(coefficients []float64) []float64 {
	coeffs := make([]float64, len(coefficients))
	copy(coeffs, coefficients)
	return coeffs
}
