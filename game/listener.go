package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cube-boxer/hit"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/target"
)

// Listener receives outbound notifications, always on the goroutine calling Tick or a control method
type Listener interface {
	OnPhaseChanged(p phase.Phase)
	OnScoreChanged(score, combo int)
	OnGameFinished(r Result)
	OnCountdown(seconds int) // 0 when play begins
	OnTargetSpawned(t target.Target)
	OnResolution(r hit.Resolution)
}

// NopListener ignores every notification; embed it to implement a subset
type NopListener struct{}

func (NopListener) OnPhaseChanged(phase.Phase)    {}
func (NopListener) OnScoreChanged(int, int)       {}
func (NopListener) OnGameFinished(Result)         {}
func (NopListener) OnCountdown(int)               {}
func (NopListener) OnTargetSpawned(target.Target) {}
func (NopListener) OnResolution(hit.Resolution)   {}

// Tally counts outcomes over one run
type Tally struct {
	Spawned          int
	Hits             int
	ForbiddenHits    int
	WrongHand        int
	TooWeak          int
	MissBoundary     int
	MissTimeout      int
	ForbiddenAvoided int // forbidden targets that left untouched
	Ignored          int
}

func (t *Tally) add(res hit.Resolution) {
	switch res.Outcome {
	case hit.OutcomeHit:
		t.Hits++
	case hit.OutcomeForbiddenHit:
		t.ForbiddenHits++
	case hit.OutcomeWrongHand:
		t.WrongHand++
	case hit.OutcomeTooWeak:
		t.TooWeak++
	case hit.OutcomeIgnored:
		t.Ignored++
	case hit.OutcomeMissBoundary, hit.OutcomeMissTimeout:
		if res.Kind == target.KindForbidden {
			t.ForbiddenAvoided++
			return
		}
		if res.Outcome == hit.OutcomeMissBoundary {
			t.MissBoundary++
		} else {
			t.MissTimeout++
		}
	}
}

// Result is the report of a run
type Result struct {
	RunID     uuid.UUID
	Score     int
	BestCombo int
	Success   bool // Score >= MinScoreToWin
	Abandoned bool // stopped before Finished
	Duration  time.Duration
	Tally     Tally
}
