package score

import (
	"testing"

	"pgregory.net/rapid"
)

func TestPointsForTiers(t *testing.T) {
	tests := []struct {
		combo, want int
	}{
		{1, 1}, {4, 1}, {5, 2}, {19, 2}, {20, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := PointsFor(tt.combo); got != tt.want {
			t.Errorf("PointsFor(%d) = %d, want %d", tt.combo, got, tt.want)
		}
	}
}

func TestTwentyFiveConsecutiveHits(t *testing.T) {
	var s State
	for i := 0; i < 25; i++ {
		s.Success()
	}
	// 4*1 + 15*2 + 6*3
	if s.Score() != 52 {
		t.Errorf("score after 25 hits = %d, want 52", s.Score())
	}
	if s.Combo() != 25 || s.BestCombo() != 25 {
		t.Errorf("combo=%d best=%d, want 25/25", s.Combo(), s.BestCombo())
	}
}

func TestBreakKeepsScoreAndBest(t *testing.T) {
	var s State
	for i := 0; i < 6; i++ {
		s.Success()
	}
	before := s.Score()

	if !s.Break() {
		t.Error("Break on non-zero combo must report true")
	}
	if s.Break() {
		t.Error("Break on zero combo must report false")
	}
	if s.Combo() != 0 || s.Score() != before || s.BestCombo() != 6 {
		t.Errorf("after break: combo=%d score=%d best=%d", s.Combo(), s.Score(), s.BestCombo())
	}

	// Tier restarts from 1 after a break
	if got := s.Success(); got != 1 {
		t.Errorf("first hit after break = %d points, want 1", got)
	}
}

func TestClear(t *testing.T) {
	var s State
	s.Success()
	s.Clear()
	if s.Score() != 0 || s.Combo() != 0 || s.BestCombo() != 0 {
		t.Errorf("after Clear: %+v", s)
	}
}

func TestScoreMonotonicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s State
		ops := rapid.SliceOf(rapid.Bool()).Draw(t, "ops")
		prev := 0
		for _, success := range ops {
			if success {
				s.Success()
				if s.Combo() < 1 {
					t.Fatalf("combo after success = %d", s.Combo())
				}
			} else {
				s.Break()
				if s.Combo() != 0 {
					t.Fatalf("combo after break = %d", s.Combo())
				}
			}
			if s.Score() < prev {
				t.Fatalf("score decreased: %d -> %d", prev, s.Score())
			}
			prev = s.Score()
		}
	})
}
