package spectral

import (
	"math"
)

// MelScale provides mel frequency conversion utilities
type MelScale struct {
}

// NewMelScale creates a new mel scale converter
func NewMelScale() *MelScale {
	return &MelScale{}
}

// HzToMel converts frequency in Hz to mel scale
func (ms *MelScale) HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz
func (ms *MelScale) MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// FilterCenters returns the center frequency in Hz of each of numFilters
// filters spaced evenly in mel space over [0, maxFreq]. The mel grid has
// numFilters+1 points with the zero point dropped.
func (ms *MelScale) FilterCenters(numFilters int, maxFreq float64) []float64 {
	if numFilters <= 0 {
		return nil
	}

	highMel := ms.HzToMel(maxFreq)
	melStep := highMel / float64(numFilters)

	centers := make([]float64, numFilters)
	for i := range centers {
		centers[i] = ms.MelToHz(melStep * float64(i+1))
	}
	return centers
}

// CreateMelFilterBank creates a triangular mel-scale filter bank mapping
// fftSize/2+1 linear bins onto numFilters mel bands.
func (ms *MelScale) CreateMelFilterBank(numFilters, fftSize, sampleRate int, lowFreq, highFreq float64) [][]float64 {
	if numFilters <= 0 || fftSize <= 0 {
		return nil
	}

	lowMel := ms.HzToMel(lowFreq)
	highMel := ms.HzToMel(highFreq)

	melPoints := make([]float64, numFilters+2)
	melStep := (highMel - lowMel) / float64(numFilters+1)
	for i := range melPoints {
		melPoints[i] = lowMel + float64(i)*melStep
	}

	binPoints := make([]int, len(melPoints))
	for i, mel := range melPoints {
		hz := ms.MelToHz(mel)
		binPoints[i] = int(math.Floor((float64(fftSize)+1.0)*hz/float64(sampleRate) + 0.5))
		binPoints[i] = min(binPoints[i], fftSize/2)
	}

	filterBank := make([][]float64, numFilters)
	for i := range filterBank {
		filterBank[i] = make([]float64, fftSize/2+1)
	}

	for m := 1; m <= numFilters; m++ {
		leftBin := binPoints[m-1]
		centerBin := binPoints[m]
		rightBin := binPoints[m+1]

		for k := leftBin; k < centerBin && k < len(filterBank[m-1]); k++ {
			if centerBin != leftBin {
				filterBank[m-1][k] = float64(k-leftBin) / float64(centerBin-leftBin)
			}
		}

		for k := centerBin; k < rightBin && k < len(filterBank[m-1]); k++ {
			if rightBin != centerBin {
				filterBank[m-1][k] = float64(rightBin-k) / float64(rightBin-centerBin)
			}
		}
	}

	return filterBank
}

// ApplyFilterBank applies a mel filter bank to a magnitude spectrum
func (ms *MelScale) ApplyFilterBank(spectrum []float64, filterBank [][]float64) []float64 {
	if len(filterBank) == 0 || len(spectrum) == 0 {
		return []float64{}
	}

	melSpectrum := make([]float64, len(filterBank))
	for i, filter := range filterBank {
		sum := 0.0
		for j := 0; j < len(filter) && j < len(spectrum); j++ {
			sum += spectrum[j] * filter[j]
		}
		melSpectrum[i] = sum
	}

	return melSpectrum
}
