// Package quality holds the baseline signal quality measures recorded
// alongside the IF-extraction experiments.
package quality

import (
	"fmt"
	"math"
)

// SNR computes the signal-to-noise ratio in dB between a signal and a noise
// recording. An empty noise slice means a noise-free reference and yields 0.
// The noise term keeps the original experiment's double length division so
// existing result sets stay comparable.
func SNR(signal, noise []float64) float64 {
	if len(noise) == 0 {
		return 0
	}

	signalPower := 0.0
	for _, v := range signal {
		signalPower += v * v
	}
	signalPower /= float64(len(signal))

	noisePower := 0.0
	for _, v := range noise {
		noisePower += v * v
	}
	noisePower /= float64(len(noise)) // mean
	noisePower /= float64(len(noise))

	return 10 * math.Log10(signalPower/noisePower)
}

// RenyiEntropy computes the Renyi entropy of order ord of a spectrogram's
// magnitude matrix, with the matrix sum as normalization.
func RenyiEntropy(magnitude [][]float64, order float64) (float64, error) {
	if order == 1 {
		return 0, fmt.Errorf("renyi entropy undefined for order 1")
	}
	if len(magnitude) == 0 {
		return 0, fmt.Errorf("empty spectrogram")
	}

	sumPow := 0.0
	sum := 0.0
	for _, row := range magnitude {
		for _, v := range row {
			sumPow += math.Pow(v, order)
			sum += v
		}
	}

	if sum == 0 {
		return 0, fmt.Errorf("all-zero spectrogram")
	}

	return (1.0 / (1.0 - order)) * math.Log2(sumPow/sum), nil
}

// DefaultRenyiOrder is the entropy order used by the experiment pipeline.
const DefaultRenyiOrder = 3.0
