package cursor

import (
	"math"
	"testing"

	"github.com/ricmed/mouse-control/internal/detector"
)

func TestMapToCursor_CenterFixpoint(t *testing.T) {
	p := &detector.Point3D{X: 0.5, Y: 0.5}

	x, y := MapToCursor(p, 1.0, 1.0)
	if x != 0.5 || y != 0.5 {
		t.Errorf("MapToCursor(center) = (%v, %v), want (0.5, 0.5)", x, y)
	}
}

func TestMapToCursor_MarginBoundary(t *testing.T) {
	// A landmark at the 10% margin remaps to 0 before scale and
	// sensitivity; with both at 1.0 it stays at the corner.
	p := &detector.Point3D{X: 0.1, Y: 0.1}

	x, y := MapToCursor(p, 1.0, 1.0)
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Errorf("MapToCursor(margin) = (%v, %v), want (0, 0)", x, y)
	}

	p = &detector.Point3D{X: 0.9, Y: 0.9}
	x, y = MapToCursor(p, 1.0, 1.0)
	if math.Abs(x-1) > 1e-12 || math.Abs(y-1) > 1e-12 {
		t.Errorf("MapToCursor(far margin) = (%v, %v), want (1, 1)", x, y)
	}
}

func TestMapToCursor_SensitivityAmplifies(t *testing.T) {
	// Quarter of the way from center toward the margin; sensitivity 2
	// doubles the offset from center.
	p := &detector.Point3D{X: 0.6, Y: 0.4}

	x, y := MapToCursor(p, 2.0, 1.0)
	if math.Abs(x-0.75) > 1e-12 {
		t.Errorf("x = %v, want 0.75", x)
	}
	if math.Abs(y-0.25) > 1e-12 {
		t.Errorf("y = %v, want 0.25", y)
	}
}

func TestMapToCursor_ScaleActsLikeSensitivity(t *testing.T) {
	p := &detector.Point3D{X: 0.6, Y: 0.4}

	x1, y1 := MapToCursor(p, 2.0, 1.0)
	x2, y2 := MapToCursor(p, 1.0, 2.0)
	if x1 != x2 || y1 != y2 {
		t.Errorf("scale and sensitivity not interchangeable: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}

func TestMapToCursor_AlwaysInUnitSquare(t *testing.T) {
	// Outside the control area with maximum amplification; output must
	// clamp to the unit square regardless of drift.
	points := []detector.Point3D{
		{X: 0.0, Y: 0.0},
		{X: 1.0, Y: 1.0},
		{X: 0.05, Y: 0.98},
		{X: -0.2, Y: 1.3},
	}

	for _, p := range points {
		x, y := MapToCursor(&p, 3.0, 2.0)
		if x < 0 || x > 1 || y < 0 || y > 1 {
			t.Errorf("MapToCursor(%v) = (%v, %v), outside unit square", p, x, y)
		}
	}
}
