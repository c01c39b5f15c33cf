// Package ifextract provides instantaneous-frequency extraction from
// spectrograms and the closed-form IF laws of the reference signal classes.
package ifextract

import (
	"fmt"
	"math"

	"github.com/anarkiwi/AviaNZ/algorithms/common"
)

// SignalClass identifies one of the canonical reference signals.
type SignalClass int

const (
	PureTone SignalClass = iota
	ExponentialDownchirp
	ExponentialUpchirp
	LinearDownchirp
	LinearUpchirp
)

// Chirp endpoint frequencies in Hz. The up/down labels and their endpoints
// follow the source dataset naming convention (downchirp runs 2000->500 Hz,
// upchirp 500->2000 Hz); kept verbatim rather than renamed.
const (
	toneFreq  = 2000.0
	chirpHigh = 2000.0
	chirpLow  = 500.0
)

var classNames = map[SignalClass]string{
	PureTone:             "pure_tone",
	ExponentialDownchirp: "exponential_downchirp",
	ExponentialUpchirp:   "exponential_upchirp",
	LinearDownchirp:      "linear_downchirp",
	LinearUpchirp:        "linear_upchirp",
}

func (c SignalClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SignalClass(%d)", int(c))
}

// ParseSignalClass maps a signal-class identifier to its SignalClass.
// Unrecognized identifiers are a configuration error.
func ParseSignalClass(name string) (SignalClass, error) {
	for class, n := range classNames {
		if n == name {
			return class, nil
		}
	}
	return 0, fmt.Errorf("unrecognized signal class %q", name)
}

// IFLaw returns the instantaneous-frequency function f(t) in Hz for a signal
// of duration T seconds, defined for t in [0, T].
func (c SignalClass) IFLaw(T float64) func(t float64) float64 {
	switch c {
	case PureTone:
		return func(t float64) float64 { return toneFreq }

	case ExponentialDownchirp:
		rate := math.Pow(chirpLow/chirpHigh, 1.0/T)
		return func(t float64) float64 { return chirpHigh * math.Pow(rate, t) }

	case ExponentialUpchirp:
		rate := math.Pow(chirpHigh/chirpLow, 1.0/T)
		return func(t float64) float64 { return chirpLow * math.Pow(rate, t) }

	case LinearDownchirp:
		slope := (chirpLow - chirpHigh) / T
		return func(t float64) float64 { return chirpHigh + slope*t }

	case LinearUpchirp:
		slope := (chirpHigh - chirpLow) / T
		return func(t float64) float64 { return chirpLow + slope*t }

	default:
		// Unreachable for classes built via ParseSignalClass.
		panic(fmt.Sprintf("no IF law for %v", c))
	}
}

// SampleIFLaw evaluates the IF law of class at n points evenly spaced
// over [0, T].
func SampleIFLaw(class SignalClass, T float64, n int) []float64 {
	law := class.IFLaw(T)
	times := common.Linspace(0, T, n)

	values := make([]float64, n)
	for i, t := range times {
		values[i] = law(t)
	}
	return values
}
