package score

import "github.com/lixenwraith/cube-boxer/parameter"

// PointsFor returns the points a successful hit is worth at the given (post-increment) combo
func PointsFor(combo int) int {
	switch {
	case combo >= parameter.ComboTierThree:
		return 3
	case combo >= parameter.ComboTierTwo:
		return 2
	default:
		return 1
	}
}

// State holds score and combo counters
// Score never decreases; combo resets on qualifying failures
type State struct {
	score     int
	combo     int
	bestCombo int
}

// Success increments combo then awards points for the new combo
// Returns the points awarded
func (s *State) Success() int {
	s.combo++
	if s.combo > s.bestCombo {
		s.bestCombo = s.combo
	}
	points := PointsFor(s.combo)
	s.score += points
	return points
}

// Break resets the combo to zero, returns true if it was non-zero
func (s *State) Break() bool {
	if s.combo == 0 {
		return false
	}
	s.combo = 0
	return true
}

// Clear resets score, combo and best combo for a new run
func (s *State) Clear() {
	*s = State{}
}

func (s *State) Score() int     { return s.score }
func (s *State) Combo() int     { return s.combo }
func (s *State) BestCombo() int { return s.bestCombo }
