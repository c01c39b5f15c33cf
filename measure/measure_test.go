package measure

import (
	"math"
	"testing"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name    string
		want    Metric
		wantErr bool
	}{
		{"L2", L2, false},
		{"Iatsenko", Iatsenko, false},
		{"Geodesic", Geodesic, false},
		{"Curve_registration", Geodesic, false},
		{"l2", "", true},
		{"unknown", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMetric(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMetric(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMetric(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestL2SelfIsZero(t *testing.T) {
	curve := []float64{100, 200, 300, 250}

	got, err := NewEvaluator(L2).Compare(curve, curve, 1.0, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("L2(x,x) = %g, want 0", got)
	}
}

func TestL2KnownValue(t *testing.T) {
	got, err := NewEvaluator(L2).Compare([]float64{1, 2}, []float64{1, 4}, 1.0, 4)
	if err != nil {
		t.Fatal(err)
	}
	// ||(0,-2)||_2 / 4 = 0.5
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("L2 = %g, want 0.5", got)
	}
}

func TestIatsenkoSelfIsZero(t *testing.T) {
	curve := []float64{100, 200, 300}

	got, err := NewEvaluator(Iatsenko).Compare(curve, curve, 1.0, 9)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Iatsenko(x,x) = %g, want 0", got)
	}
}

func TestIatsenkoKnownValue(t *testing.T) {
	// truth {0,2}: mean 1, msd 1; estimate {0,0}: mean sq diff 2.
	got, err := NewEvaluator(Iatsenko).Compare([]float64{0, 0}, []float64{0, 2}, 1.0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("Iatsenko = %g, want 2", got)
	}
}

func TestIatsenkoZeroVarianceIsNaN(t *testing.T) {
	truth := []float64{2000, 2000, 2000}
	extracted := []float64{1990, 2000, 2010}

	got, err := NewEvaluator(Iatsenko).Compare(extracted, truth, 1.0, 9)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Iatsenko on constant truth = %g, want NaN", got)
	}
}

func TestGeodesicSelfAndSymmetry(t *testing.T) {
	a := []float64{500, 700, 1100, 1600, 2000}
	b := []float64{2000, 1600, 1100, 700, 500}

	ev := NewEvaluator(Geodesic)

	self, err := ev.Compare(a, a, 2.0, 25)
	if err != nil {
		t.Fatal(err)
	}
	if self != 0 {
		t.Errorf("geodesic d(A,A) = %g, want 0", self)
	}

	ab, err := ev.Compare(a, b, 2.0, 25)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := ev.Compare(b, a, 2.0, 25)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("geodesic asymmetric: d(A,B)=%g, d(B,A)=%g", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("geodesic d(A,B) = %g, want > 0 for distinct curves", ab)
	}
}

func TestCompareLengthMismatch(t *testing.T) {
	for _, m := range []Metric{L2, Iatsenko, Geodesic} {
		if _, err := NewEvaluator(m).Compare([]float64{1, 2, 3}, []float64{1, 2}, 1.0, 6); err == nil {
			t.Errorf("%s: expected error for mismatched lengths", m)
		}
	}
}

func TestCompareEmptyCurves(t *testing.T) {
	if _, err := NewEvaluator(L2).Compare(nil, nil, 1.0, 1); err == nil {
		t.Error("expected error for empty curves")
	}
}
