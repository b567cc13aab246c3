package audio

// Cue identifies a feedback sound
type Cue int

const (
	CueHit       Cue = iota // successful punch
	CueCombo                // successful punch at a higher combo tier
	CueWrongHand            // wrong hand
	CueTooWeak              // right hand, not enough speed
	CueMiss                 // target left untouched
	CueForbidden            // forbidden target struck
	CueCountdown            // pre-game countdown step
	CuePhase                // phase change
	CueWin                  // run finished over the win threshold
	CueLose                 // run finished under the win threshold

	CueCount
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueCombo:
		return "combo"
	case CueWrongHand:
		return "wrong_hand"
	case CueTooWeak:
		return "too_weak"
	case CueMiss:
		return "miss"
	case CueForbidden:
		return "forbidden"
	case CueCountdown:
		return "countdown"
	case CuePhase:
		return "phase"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}
