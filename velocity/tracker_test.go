package velocity

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

const epsilon = 1e-9

func TestInstantSpeedInsufficientHistory(t *testing.T) {
	tr := NewTracker(10)
	if got := tr.InstantSpeed(target.HandLeft); got != 0 {
		t.Errorf("speed with no samples = %v, want 0", got)
	}

	tr.Sample(target.HandLeft, vmath.V3(0, 0, 0), 0)
	if got := tr.InstantSpeed(target.HandLeft); got != 0 {
		t.Errorf("speed with one sample = %v, want 0", got)
	}
}

func TestInstantSpeedUsesNewestTwoSamples(t *testing.T) {
	tr := NewTracker(10)
	// Large early motion must not influence the estimate
	tr.Sample(target.HandRight, vmath.V3(0, 0, 0), 0)
	tr.Sample(target.HandRight, vmath.V3(0, 0, 100), 100*time.Millisecond)
	tr.Sample(target.HandRight, vmath.V3(0, 0, 100.5), 200*time.Millisecond)

	if got := tr.InstantSpeed(target.HandRight); math.Abs(got-5.0) > epsilon {
		t.Errorf("speed = %v, want 5.0", got)
	}
}

func TestInstantSpeedPerHandIsolation(t *testing.T) {
	tr := NewTracker(10)
	tr.Sample(target.HandLeft, vmath.V3(0, 0, 0), 0)
	tr.Sample(target.HandLeft, vmath.V3(3, 4, 0), time.Second)

	if got := tr.InstantSpeed(target.HandLeft); math.Abs(got-5) > epsilon {
		t.Errorf("left speed = %v, want 5", got)
	}
	if got := tr.InstantSpeed(target.HandRight); got != 0 {
		t.Errorf("right speed = %v, want 0", got)
	}
}

func TestInstantSpeedNonPositiveDelta(t *testing.T) {
	tr := NewTracker(10)
	tr.Sample(target.HandLeft, vmath.V3(0, 0, 0), time.Second)
	tr.Sample(target.HandLeft, vmath.V3(1, 0, 0), time.Second)
	if got := tr.InstantSpeed(target.HandLeft); got != 0 {
		t.Errorf("speed with zero dt = %v, want 0", got)
	}

	tr.Sample(target.HandLeft, vmath.V3(2, 0, 0), 500*time.Millisecond)
	if got := tr.InstantSpeed(target.HandLeft); got != 0 {
		t.Errorf("speed with negative dt = %v, want 0", got)
	}
}

func TestRingKeepsMostRecentSamples(t *testing.T) {
	tr := NewTracker(10)
	for i := 0; i < 25; i++ {
		tr.Sample(target.HandLeft, vmath.V3(float64(i), 0, 0), time.Duration(i)*time.Second)
	}

	if got := tr.Len(target.HandLeft); got != 10 {
		t.Fatalf("len = %d, want 10", got)
	}
	if newest := tr.hands[target.HandLeft].at(0); newest.Position.X != 24 {
		t.Errorf("newest X = %v, want 24", newest.Position.X)
	}
	if got := tr.InstantSpeed(target.HandLeft); math.Abs(got-1) > epsilon {
		t.Errorf("speed after wrap = %v, want 1", got)
	}
	if oldest := tr.hands[target.HandLeft].at(9); oldest.Position.X != 15 {
		t.Errorf("oldest retained X = %v, want 15", oldest.Position.X)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(4)
	tr.Sample(target.HandLeft, vmath.V3(0, 0, 0), 0)
	tr.Sample(target.HandLeft, vmath.V3(1, 0, 0), time.Second)
	tr.Reset()

	if tr.Len(target.HandLeft) != 0 || tr.InstantSpeed(target.HandLeft) != 0 {
		t.Error("reset must drop history")
	}
	if tr.Capacity() != 4 {
		t.Errorf("capacity = %d, want 4", tr.Capacity())
	}
}

func TestUnknownHandIgnored(t *testing.T) {
	tr := NewTracker(10)
	tr.Sample(target.Hand(9), vmath.V3(1, 1, 1), time.Second)
	if tr.Len(target.Hand(9)) != 0 || tr.InstantSpeed(target.Hand(9)) != 0 {
		t.Error("unknown hand must be ignored")
	}
}
