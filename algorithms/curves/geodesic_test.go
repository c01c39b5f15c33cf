package curves

import (
	"math"
	"testing"
)

func line(n int, slope, offset float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = slope*float64(i) + offset
	}
	return x, y
}

func TestGeodesicIdenticalCurvesIsZero(t *testing.T) {
	x, y := line(20, 2.0, 100)

	a, err := NewCurve(x, y)
	if err != nil {
		t.Fatal(err)
	}

	d, err := GeodesicDistance(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("d(A,A) = %g, want 0", d)
	}
}

func TestGeodesicSymmetric(t *testing.T) {
	xa, ya := line(30, 1.0, 0)
	xb := make([]float64, 30)
	yb := make([]float64, 30)
	for i := 0; i < 30; i++ {
		xb[i] = float64(i)
		yb[i] = 50 * math.Sin(float64(i)/5.0)
	}

	a, _ := NewCurve(xa, ya)
	b, _ := NewCurve(xb, yb)

	ab, err := GeodesicDistance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := GeodesicDistance(b, a)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("d(A,B) = %g, d(B,A) = %g", ab, ba)
	}
	if ab < 0 {
		t.Errorf("distance negative: %g", ab)
	}
}

func TestGeodesicTranslationInvariant(t *testing.T) {
	xa, ya := line(25, 3.0, 0)
	xb, yb := line(25, 3.0, 1000)

	a, _ := NewCurve(xa, ya)
	b, _ := NewCurve(xb, yb)

	d, err := GeodesicDistance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d > 1e-9 {
		t.Errorf("translated copy should be at distance ~0, got %g", d)
	}
}

func TestGeodesicScaledCopyIsExactlyZero(t *testing.T) {
	// A scaled and shifted copy maps to the same point on the shape sphere
	// up to floating point drift; the distance must still be exactly 0,
	// not an acos-amplified residual.
	n := 40
	xa := make([]float64, n)
	ya := make([]float64, n)
	xb := make([]float64, n)
	yb := make([]float64, n)
	for i := 0; i < n; i++ {
		xa[i] = float64(i)
		ya[i] = 300 + 120*math.Sin(float64(i)/4.0)
		xb[i] = 2.5*xa[i] + 17
		yb[i] = 2.5*ya[i] - 900
	}

	a, _ := NewCurve(xa, ya)
	b, _ := NewCurve(xb, yb)

	d, err := GeodesicDistance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("d of scaled copy = %g, want exactly 0", d)
	}
}

func TestGeodesicLengthMismatch(t *testing.T) {
	xa, ya := line(10, 1.0, 0)
	xb, yb := line(12, 1.0, 0)

	a, _ := NewCurve(xa, ya)
	b, _ := NewCurve(xb, yb)

	if _, err := GeodesicDistance(a, b); err == nil {
		t.Error("expected error for curves of different lengths")
	}
}

func TestGeodesicDegenerateCurve(t *testing.T) {
	// A curve collapsed to a single point has no velocity anywhere.
	x := []float64{5, 5, 5, 5}
	y := []float64{7, 7, 7, 7}

	a, _ := NewCurve(x, y)
	b, _ := NewCurve([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})

	if _, err := GeodesicDistance(a, b); err == nil {
		t.Error("expected error for degenerate curve")
	}
}

func TestNewCurveValidation(t *testing.T) {
	if _, err := NewCurve([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched coordinates")
	}
	if _, err := NewCurve([]float64{1}, []float64{1}); err == nil {
		t.Error("expected error for single-point curve")
	}
}
