package spectral

import (
	"fmt"

	"github.com/anarkiwi/AviaNZ/algorithms/windowing"
	"github.com/anarkiwi/AviaNZ/logging"
)

// FreqScale selects the frequency axis of a spectrogram.
type FreqScale string

const (
	ScaleLinear FreqScale = "Linear"
	ScaleMel    FreqScale = "Mel"
)

// MelFilters is the number of mel bands used for mel-warped spectrograms.
const MelFilters = 40

// ParseFreqScale maps a scale name to a FreqScale.
func ParseFreqScale(name string) (FreqScale, error) {
	switch FreqScale(name) {
	case ScaleLinear, ScaleMel:
		return FreqScale(name), nil
	default:
		return "", fmt.Errorf("unrecognized frequency scale %q", name)
	}
}

// Spectrogram is a time-frequency magnitude representation together with the
// frequency value in Hz of every bin.
type Spectrogram struct {
	Magnitude   [][]float64 // Time x Frequency
	FreqAxis    []float64   // Hz per frequency bin (or mel band center)
	TimeFrames  int
	FreqBins    int
	SampleRate  int
	WindowWidth int
	HopSize     int
	Duration    float64 // input signal duration in seconds
	Scale       FreqScale
}

// Cells returns the total cell count of the magnitude matrix.
func (sp *Spectrogram) Cells() int {
	return sp.TimeFrames * sp.FreqBins
}

// Generator produces spectrograms for the parameter sweep.
type Generator struct {
	stft   *STFT
	mel    *MelScale
	logger logging.Logger
}

// NewGenerator creates a spectrogram generator.
func NewGenerator() *Generator {
	return &Generator{
		stft:   NewSTFT(),
		mel:    NewMelScale(),
		logger: logging.WithFields(logging.Fields{"component": "spectrogram"}),
	}
}

// Compute generates a magnitude spectrogram of signal with the given window
// width, hop size and window type, on a linear or mel-warped frequency axis.
func (g *Generator) Compute(signal []float64, sampleRate, windowWidth, hopSize int, windowType string, scale FreqScale) (*Spectrogram, error) {
	window, err := windowing.New(windowType, windowWidth)
	if err != nil {
		return nil, err
	}

	res, err := g.stft.Compute(signal, windowWidth, hopSize, sampleRate, window)
	if err != nil {
		return nil, fmt.Errorf("stft failed: %w", err)
	}

	duration := float64(len(signal)) / float64(sampleRate)

	sp := &Spectrogram{
		Magnitude:   res.Magnitude,
		TimeFrames:  res.TimeFrames,
		FreqBins:    res.FreqBins,
		SampleRate:  sampleRate,
		WindowWidth: windowWidth,
		HopSize:     hopSize,
		Duration:    duration,
		Scale:       scale,
	}

	switch scale {
	case ScaleMel:
		g.warpToMel(sp)
	default:
		sp.FreqAxis = linearAxis(sampleRate, res.FreqBins)
	}

	g.logger.Debug("spectrogram computed", logging.Fields{
		"frames": sp.TimeFrames,
		"bins":   sp.FreqBins,
		"scale":  string(scale),
	})

	return sp, nil
}

// warpToMel replaces the linear frequency axis with MelFilters mel bands.
func (g *Generator) warpToMel(sp *Spectrogram) {
	nyquist := float64(sp.SampleRate) / 2.0
	filterBank := g.mel.CreateMelFilterBank(MelFilters, sp.WindowWidth, sp.SampleRate, 0, nyquist)

	warped := make([][]float64, sp.TimeFrames)
	for t, frame := range sp.Magnitude {
		warped[t] = g.mel.ApplyFilterBank(frame, filterBank)
	}

	sp.Magnitude = warped
	sp.FreqBins = MelFilters
	sp.FreqAxis = g.mel.FilterCenters(MelFilters, nyquist)
}

// linearAxis builds the frequency values fstep..fs/2 for freqBins bins.
func linearAxis(sampleRate, freqBins int) []float64 {
	fstep := (float64(sampleRate) / 2.0) / float64(freqBins)
	axis := make([]float64, freqBins)
	for i := range axis {
		axis[i] = fstep * float64(i+1)
	}
	return axis
}
