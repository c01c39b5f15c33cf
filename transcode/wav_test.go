package transcode

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWAVRoundTrip(t *testing.T) {
	const (
		sampleRate = 8000
		n          = 4000
	)

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate))
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := WriteWAV(path, samples, sampleRate); err != nil {
		t.Fatal(err)
	}

	data, err := ReadWAV(path)
	if err != nil {
		t.Fatal(err)
	}

	if data.SampleRate != sampleRate {
		t.Errorf("SampleRate = %d, want %d", data.SampleRate, sampleRate)
	}
	if data.Channels != 1 {
		t.Errorf("Channels = %d, want 1", data.Channels)
	}
	if len(data.PCM) != n {
		t.Fatalf("len(PCM) = %d, want %d", len(data.PCM), n)
	}
	if math.Abs(data.Duration-0.5) > 1e-9 {
		t.Errorf("Duration = %g, want 0.5", data.Duration)
	}

	// 16-bit quantization bounds the reconstruction error.
	for i := range samples {
		if math.Abs(data.PCM[i]-samples[i]) > 1e-3 {
			t.Fatalf("sample %d: got %g, want %g", i, data.PCM[i], samples[i])
		}
	}
}

func TestReadWAVMissingFile(t *testing.T) {
	if _, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadWAVInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-audio.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadWAV(path); err == nil {
		t.Error("expected error for invalid WAV data")
	}
}

func TestWriteWAVBadRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := WriteWAV(path, []float64{0, 0.1}, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}
