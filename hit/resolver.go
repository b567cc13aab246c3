package hit

import (
	"github.com/lixenwraith/cube-boxer/score"
	"github.com/lixenwraith/cube-boxer/sim"
	"github.com/lixenwraith/cube-boxer/target"
)

// Outcome classifies a contact or a miss after policy is applied
type Outcome uint8

const (
	OutcomeIgnored      Outcome = iota // unknown or already resolved target
	OutcomeHit                         // correct hand, enough speed
	OutcomeForbiddenHit                // any hand on a forbidden target
	OutcomeWrongHand
	OutcomeTooWeak
	OutcomeMissBoundary
	OutcomeMissTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeHit:
		return "Hit"
	case OutcomeForbiddenHit:
		return "ForbiddenHit"
	case OutcomeWrongHand:
		return "WrongHand"
	case OutcomeTooWeak:
		return "TooWeak"
	case OutcomeMissBoundary:
		return "MissBoundary"
	case OutcomeMissTimeout:
		return "MissTimeout"
	default:
		return "Unknown"
	}
}

// Miss reports whether the outcome came from the simulation rather than a contact
func (o Outcome) Miss() bool {
	return o == OutcomeMissBoundary || o == OutcomeMissTimeout
}

// Resolution is the record of one contact or miss
type Resolution struct {
	TargetID    target.ID
	Kind        target.Kind
	Hand        target.Hand // zero value for misses
	Outcome     Outcome
	Speed       float64 // measured hand speed, 0 for misses and ignored contacts
	Points      int
	Score       int // after applying the outcome
	Combo       int
	ComboBroken bool // combo was non-zero and reset by this outcome
}

// Targets is the live set view the resolver needs
type Targets interface {
	Get(id target.ID) (*target.Target, bool)
	Remove(id target.ID) bool
}

// Speedometer reports the instantaneous speed of a hand
type Speedometer interface {
	InstantSpeed(hand target.Hand) float64
}

// Resolver applies the ordered contact policy against the live set and score
type Resolver struct {
	minVelocity float64
	targets     Targets
	speeds      Speedometer
	score       *score.State
}

// New creates a resolver; a speed equal to minVelocity succeeds
func New(minVelocity float64, targets Targets, speeds Speedometer, st *score.State) *Resolver {
	return &Resolver{
		minVelocity: minVelocity,
		targets:     targets,
		speeds:      speeds,
		score:       st,
	}
}

// Resolve applies one contact between hand and target id
// Policy order: forbidden, wrong hand, too weak, success
func (r *Resolver) Resolve(hand target.Hand, id target.ID) Resolution {
	t, ok := r.targets.Get(id)
	if !ok || !t.Active() || !hand.Valid() {
		return r.record(Resolution{TargetID: id, Hand: hand, Outcome: OutcomeIgnored})
	}

	res := Resolution{TargetID: id, Kind: t.Kind, Hand: hand}

	if t.Kind == target.KindForbidden {
		res.Outcome = OutcomeForbiddenHit
		res.ComboBroken = r.score.Break()
		t.Resolve(target.OutcomeHit)
		r.targets.Remove(id)
		return r.record(res)
	}

	if !hand.Matches(t.Kind) {
		res.Outcome = OutcomeWrongHand
		res.ComboBroken = r.score.Break()
		return r.record(res)
	}

	res.Speed = r.speeds.InstantSpeed(hand)
	if res.Speed < r.minVelocity {
		res.Outcome = OutcomeTooWeak
		res.ComboBroken = r.score.Break()
		return r.record(res)
	}

	res.Outcome = OutcomeHit
	res.Points = r.score.Success()
	t.Resolve(target.OutcomeHit)
	r.targets.Remove(id)
	return r.record(res)
}

// ResolveMiss applies miss policy: a missed forbidden target has no scoring effect,
// any other missed target resets the combo
func (r *Resolver) ResolveMiss(m sim.Miss) Resolution {
	res := Resolution{TargetID: m.Target.ID, Kind: m.Target.Kind, Outcome: OutcomeMissTimeout}
	if m.Reason == sim.MissBoundary {
		res.Outcome = OutcomeMissBoundary
	}
	if m.Target.Kind != target.KindForbidden {
		res.ComboBroken = r.score.Break()
	}
	return r.record(res)
}

func (r *Resolver) record(res Resolution) Resolution {
	res.Score = r.score.Score()
	res.Combo = r.score.Combo()
	return res
}
