package vmath

import (
	"math"
	"testing"
)

func TestV3Dist(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{V3(0, 0, 0), V3(3, 4, 0), 5},
		{V3(1, 1, 1), V3(1, 1, 1), 0},
		{V3(0, 0, 2), V3(0, 0, -1), 3},
	}
	for _, tt := range tests {
		if got := V3Dist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("V3Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestV3AddScaleBack(t *testing.T) {
	p := V3Add(V3(0.2, 1.5, 10), V3Scale(Back, 2.5))
	if p != V3(0.2, 1.5, 7.5) {
		t.Errorf("moved point = %v, want {0.2 1.5 7.5}", p)
	}
}
