// Package transcode decodes audio files into mono float64 PCM for analysis.
package transcode

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/anarkiwi/AviaNZ/logging"
)

// AudioData represents decoded audio data
type AudioData struct {
	PCM        []float64 // mono samples normalized to [-1, 1]
	SampleRate int
	Channels   int     // channel count of the source file
	Duration   float64 // seconds
}

// ReadWAV decodes a WAV file to mono float64 PCM at the file's native sample
// rate. Multi-channel files are downmixed by averaging the channels.
func ReadWAV(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("no samples in %s", path)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	maxVal := float64(int(1) << (uint(bitDepth) - 1))

	frames := len(buf.Data) / channels
	pcm := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		pcm[i] = sum / float64(channels) / maxVal
	}

	data := &AudioData{
		PCM:        pcm,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		Duration:   float64(frames) / float64(buf.Format.SampleRate),
	}

	logging.Debug("wav decoded", logging.Fields{
		"path":     path,
		"rate":     data.SampleRate,
		"channels": data.Channels,
		"frames":   frames,
	})

	return data, nil
}

// WriteWAV encodes mono float64 samples in [-1, 1] to a 16-bit PCM WAV file.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1.0, math.Min(1.0, v))
		data[i] = int(math.Round(v * 32767))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}

	return nil
}
