package common

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %g, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %g, want 0", got)
	}
}

func TestMeanSquaredDeviation(t *testing.T) {
	// {0,2}: mean 1, deviations ±1 -> msd 1 (population, not sample)
	if got := MeanSquaredDeviation([]float64{0, 2}); got != 1 {
		t.Errorf("MeanSquaredDeviation = %g, want 1", got)
	}
	if got := MeanSquaredDeviation([]float64{5, 5, 5}); got != 0 {
		t.Errorf("constant data msd = %g, want 0", got)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -3}); math.Abs(got-3) > 1e-12 {
		t.Errorf("RMS = %g, want 3", got)
	}
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %g, want 0", got)
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 2, 5)

	want := []float64{0, 0.5, 1, 1.5, 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Linspace[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	if got := Linspace(1, 2, 1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Linspace n=1 = %v, want [1]", got)
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("Linspace n=0 = %v, want nil", got)
	}
}
