package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/cube-boxer/fsm"
)

// Run lifecycle states
//
//	Idle -start-> Running{Countdown -timeout-> Playing}
//	Running -stop-> Stopped, Playing -finish-> Finished
//
// Stopped and Finished leave only through Reset
const (
	stateIdle fsm.StateID = iota + 1
	stateRunning
	stateCountdown
	statePlaying
	stateStopped
	stateFinished
)

const (
	evStart fsm.Event = iota + 1
	evStop
	evFinish
)

// newLifecycle builds the run state machine; Init is left to the caller
func newLifecycle() (*fsm.Machine[*Game], error) {
	m := fsm.NewMachine[*Game]()

	m.AddState(stateIdle, "idle", fsm.StateNone)

	running := m.AddState(stateRunning, "running", fsm.StateNone)
	running.OnEnter = append(running.OnEnter, (*Game).enterRunning)

	cd := m.AddState(stateCountdown, "countdown", stateRunning)
	cd.OnEnter = append(cd.OnEnter, (*Game).enterCountdown)

	playing := m.AddState(statePlaying, "playing", stateRunning)
	playing.OnEnter = append(playing.OnEnter, (*Game).enterPlaying)

	stopped := m.AddState(stateStopped, "stopped", fsm.StateNone)
	stopped.OnEnter = append(stopped.OnEnter, (*Game).enterStopped)

	finished := m.AddState(stateFinished, "finished", fsm.StateNone)
	finished.OnEnter = append(finished.OnEnter, (*Game).enterFinished)

	m.AddTransition(stateIdle, fsm.Transition[*Game]{
		TargetID: stateCountdown,
		Event:    evStart,
		Guard:    func(g *Game) bool { return g.cfg.Countdown > 0 },
	})
	m.AddTransition(stateIdle, fsm.Transition[*Game]{TargetID: statePlaying, Event: evStart})
	m.AddTransition(stateCountdown, fsm.Transition[*Game]{TargetID: statePlaying, Event: fsm.EventTimeout})
	m.AddTransition(statePlaying, fsm.Transition[*Game]{TargetID: stateFinished, Event: evFinish})
	m.AddTransition(stateRunning, fsm.Transition[*Game]{TargetID: stateStopped, Event: evStop})

	if err := m.CompilePaths(); err != nil {
		return nil, err
	}
	return m, nil
}

func (g *Game) enterRunning() {
	g.runID = uuid.New()
	g.log.Info("run started", "run", g.runID, "countdown", g.cfg.Countdown)
	g.listener.OnPhaseChanged(g.phases.Phase())
}

func (g *Game) enterCountdown() {
	g.shownSecs = ceilSeconds(g.cfg.Countdown)
	g.listener.OnCountdown(g.shownSecs)
}

// enterPlaying anchors the spawner at the instant play began
// When the countdown ran out mid-tick that instant lies TimeInState before the clock
func (g *Game) enterPlaying() {
	if g.cfg.Countdown > 0 {
		g.shownSecs = 0
		g.listener.OnCountdown(0)
	}
	g.spawner.Reset(g.clock - g.run.TimeInState())
}

func (g *Game) enterStopped() {
	dropped := g.world.Clear()
	g.queue.Discard()
	g.log.Info("run stopped", "run", g.runID, "score", g.score.Score(), "discarded", dropped)
}

func (g *Game) enterFinished() {
	discarded := g.world.Clear()
	g.queue.Discard()

	r := g.Result()
	g.log.Info("run finished",
		"run", r.RunID,
		"score", r.Score,
		"best_combo", r.BestCombo,
		"success", r.Success,
		"discarded", discarded,
	)
	g.listener.OnGameFinished(r)
}
