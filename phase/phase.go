package phase

// Phase is one stage of the difficulty progression
// Sequential and one-directional: Easy -> Normal -> Hard -> Finished
type Phase int

const (
	Easy Phase = iota
	Normal
	Hard
	Finished
)

// Count is the number of non-terminal phases carrying settings
const Count = 3

func (p Phase) String() string {
	switch p {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Next returns the phase following p; Finished is terminal and returns itself
func (p Phase) Next() Phase {
	if p >= Finished || p < Easy {
		return Finished
	}
	return p + 1
}

// Terminal reports whether no further transition can occur
func (p Phase) Terminal() bool {
	return p == Finished
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase]Phase{
		Easy:   Normal,
		Normal: Hard,
		Hard:   Finished,
	}

	next, ok := validTransitions[from]
	return ok && next == to
}
