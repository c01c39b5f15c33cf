package quality

import (
	"math"
	"testing"
)

func TestSNRNoNoise(t *testing.T) {
	if got := SNR([]float64{1, 2, 3}, nil); got != 0 {
		t.Errorf("SNR with empty noise = %g, want 0", got)
	}
}

func TestSNRKnownValue(t *testing.T) {
	// signal term sum(s^2)/len = 2/2 = 1; noise term mean(n^2)/len = 1/2,
	// so the ratio is 2.
	got := SNR([]float64{1, 1}, []float64{1, 1})
	want := 10 * math.Log10(2)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SNR = %g, want %g", got, want)
	}

	// The extra division by the noise length is part of the preserved
	// formula: four noise samples give mean 1 and noise term 1/4.
	got = SNR([]float64{1, 1}, []float64{1, 1, 1, 1})
	want = 10 * math.Log10(4)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SNR with 4 noise samples = %g, want %g", got, want)
	}
}

func TestRenyiEntropyUniform(t *testing.T) {
	// For an all-ones matrix sum(A^3)/sum(A) = 1, so the entropy is 0.
	magnitude := [][]float64{{1, 1}, {1, 1}}

	got, err := RenyiEntropy(magnitude, DefaultRenyiOrder)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("entropy = %g, want 0", got)
	}
}

func TestRenyiEntropyScaling(t *testing.T) {
	// With the sum(A) normalization, R(cA) = R(A) - log2(c) at order 3.
	base := [][]float64{{1, 2}, {3, 4}}
	scaled := [][]float64{{2, 4}, {6, 8}}

	rBase, err := RenyiEntropy(base, 3)
	if err != nil {
		t.Fatal(err)
	}
	rScaled, err := RenyiEntropy(scaled, 3)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs((rBase-rScaled)-1.0) > 1e-9 {
		t.Errorf("R(A)-R(2A) = %g, want 1", rBase-rScaled)
	}
}

func TestRenyiEntropyErrors(t *testing.T) {
	if _, err := RenyiEntropy(nil, 3); err == nil {
		t.Error("expected error for empty matrix")
	}
	if _, err := RenyiEntropy([][]float64{{1}}, 1); err == nil {
		t.Error("expected error for order 1")
	}
	if _, err := RenyiEntropy([][]float64{{0, 0}}, 3); err == nil {
		t.Error("expected error for all-zero matrix")
	}
}
