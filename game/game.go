package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cube-boxer/event"
	"github.com/lixenwraith/cube-boxer/fsm"
	"github.com/lixenwraith/cube-boxer/hit"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/score"
	"github.com/lixenwraith/cube-boxer/sim"
	"github.com/lixenwraith/cube-boxer/spawn"
	"github.com/lixenwraith/cube-boxer/status"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/velocity"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// Game owns every piece of run state and advances it on Tick
// Single-threaded: all mutation happens on the goroutine calling Tick and the control methods
// OnHandPose and OnContact are the only methods safe from other goroutines
type Game struct {
	cfg      Config
	log      *slog.Logger
	listener Listener
	rng      *rand.Rand
	reg      *status.Registry
	stats    metrics

	queue    *event.Queue
	phases   *phase.Controller
	spawner  *spawn.Spawner
	world    *sim.Simulation
	tracker  *velocity.Tracker
	score    score.State
	resolver *hit.Resolver

	run       *fsm.Machine[*Game]
	clock     time.Duration // game time since Start, excludes idle time
	shownSecs int           // last countdown value notified
	runID     uuid.UUID
	tally     Tally
}

// New validates cfg and builds a game in the idle state
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		log:      slog.New(slog.DiscardHandler),
		listener: NopListener{},
		queue:    event.NewQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.reg == nil {
		g.reg = status.NewRegistry()
	}
	g.stats = newMetrics(g.reg)

	g.phases = phase.NewController(cfg.Schedule)
	g.world = sim.New(sim.Config{
		BaseSpeed:     cfg.BaseSpeed,
		LifeTime:      cfg.LifeTime,
		DestroyPlaneZ: cfg.DestroyPlaneZ,
	})
	g.spawner = spawn.New(spawn.Config{
		Anchor:        cfg.SpawnAnchor,
		HalfRange:     cfg.SpawnJitter,
		ForbiddenOdds: cfg.ForbiddenOdds,
		MaxSpawns:     cfg.MaxSpawns,
	}, g.rng)
	g.tracker = velocity.NewTracker(cfg.HistoryCapacity)
	g.resolver = hit.New(cfg.MinHitVelocity, g.world, g.tracker, &g.score)

	run, err := newLifecycle()
	if err != nil {
		return nil, fmt.Errorf("run lifecycle: %w", err)
	}
	g.run = run
	if err := g.run.Init(g, stateIdle); err != nil {
		return nil, fmt.Errorf("run lifecycle: %w", err)
	}

	return g, nil
}

// === Control ===

// Start begins a new run; no-op unless the game is idle
// A stopped or finished game must be Reset first
func (g *Game) Start() {
	g.run.HandleEvent(g, evStart)
}

// Stop abandons the run: timers halt, live targets are discarded, later contacts are dropped
// Score stays queryable until Reset
func (g *Game) Stop() {
	g.run.HandleEvent(g, evStop)
}

// Reset returns to idle in Easy with cleared score, targets, velocity history and counters
// Does not start a new run
func (g *Game) Reset() {
	prevScore, prevCombo := g.score.Score(), g.score.Combo()

	g.world.Clear()
	g.queue.Discard()
	g.queue.TakeDropped()
	g.tracker.Reset()
	g.score.Clear()
	g.phases.Reset()
	g.spawner.Reset(0)
	g.reg.Zero()
	g.clock = 0
	g.shownSecs = 0
	g.runID = uuid.Nil
	g.tally = Tally{}
	if err := g.run.Reset(g); err != nil {
		g.log.Error("lifecycle reset failed", "error", err)
	}

	g.log.Debug("game reset")
	g.notifyScore(prevScore, prevCombo)
}

// === Inbound ===

// OnHandPose queues a hand position sample, safe from any goroutine
func (g *Game) OnHandPose(hand target.Hand, pos vmath.Vec3, at time.Duration) {
	g.queue.Push(event.Pose(hand, pos, at))
}

// OnContact queues a hand/target contact, safe from any goroutine
func (g *Game) OnContact(hand target.Hand, id target.ID, at time.Duration) {
	g.queue.Push(event.Contact(hand, id, at))
}

// === Tick ===

// Tick advances the run by dt
// Order: poses, contacts, movement and misses, phase timer, spawner
// A countdown that ends mid-tick hands the rest of dt to the play step
func (g *Game) Tick(dt time.Duration) {
	if !g.Running() {
		g.queue.Discard()
		return
	}
	if dt <= 0 {
		return
	}

	g.clock += dt
	g.stats.ticks.Add(1)

	poses, contacts := g.queue.Drain()
	g.recordDrops()
	for _, p := range poses {
		g.tracker.Sample(p.Hand, p.Position, p.Time)
	}

	if g.run.State() == stateCountdown {
		g.run.Update(g, dt)
		if g.run.State() == stateCountdown {
			g.notifyCountdown()
			return
		}
		// contacts queued before play are dropped
		contacts = nil
		dt = g.run.TimeInState()
		if dt <= 0 {
			return
		}
	}

	for _, c := range contacts {
		g.resolveContact(c)
	}

	settings, _ := g.phases.Settings()
	for _, m := range g.world.Step(dt, g.clock, settings.SpeedMultiplier) {
		g.apply(g.resolver.ResolveMiss(m))
	}

	for _, p := range g.phases.Advance(dt) {
		g.log.Info("phase changed", "phase", p, "clock", g.clock)
		g.listener.OnPhaseChanged(p)
		if p == phase.Finished {
			g.run.HandleEvent(g, evFinish)
			return
		}
	}

	settings, _ = g.phases.Settings()
	if t := g.spawner.Tick(g.clock, settings, g.phases.SpawningAllowed(), g.world); t != nil {
		g.tally.Spawned++
		g.stats.spawned.Add(1)
		g.log.Debug("target spawned", "id", t.ID, "kind", t.Kind, "x", t.Position.X, "y", t.Position.Y)
		g.listener.OnTargetSpawned(*t)
	}
}

// recordDrops moves queue overflow counts into the registry
func (g *Game) recordDrops() {
	poses, contacts := g.queue.TakeDropped()
	if poses > 0 {
		g.stats.droppedPoses.Add(int64(poses))
	}
	if contacts > 0 {
		g.stats.droppedContacts.Add(int64(contacts))
		g.log.Warn("contacts dropped, queue full", "count", contacts)
	}
}

func (g *Game) notifyCountdown() {
	if secs := ceilSeconds(g.cfg.Countdown - g.run.TimeInState()); secs != g.shownSecs {
		g.shownSecs = secs
		g.listener.OnCountdown(secs)
	}
}

func (g *Game) resolveContact(c event.Input) {
	res := g.resolver.Resolve(c.Hand, c.TargetID)
	if res.Outcome == hit.OutcomeIgnored {
		g.log.Debug("contact ignored", "target", c.TargetID, "hand", c.Hand)
	}
	g.apply(res)
}

// apply records a resolution and emits notifications
func (g *Game) apply(res hit.Resolution) {
	g.tally.add(res)
	g.stats.record(res)
	if res.Outcome == hit.OutcomeIgnored {
		return
	}

	g.listener.OnResolution(res)

	prevScore, prevCombo := res.Score-res.Points, res.Combo
	switch {
	case res.Outcome == hit.OutcomeHit:
		prevCombo = res.Combo - 1
	case res.ComboBroken:
		prevCombo = -1 // any non-zero value forces a notification
	}
	g.notifyScore(prevScore, prevCombo)
}

func (g *Game) notifyScore(prevScore, prevCombo int) {
	if prevScore != g.score.Score() || prevCombo != g.score.Combo() {
		g.listener.OnScoreChanged(g.score.Score(), g.score.Combo())
	}
}

// === Queries ===

func (g *Game) Score() int         { return g.score.Score() }
func (g *Game) Combo() int         { return g.score.Combo() }
func (g *Game) BestCombo() int     { return g.score.BestCombo() }
func (g *Game) Phase() phase.Phase { return g.phases.Phase() }
func (g *Game) Resting() bool      { return g.phases.Resting() }

// RemainingPhaseTime is the active time left in the current phase, display only
func (g *Game) RemainingPhaseTime() time.Duration {
	return g.phases.RemainingPhaseTime()
}

// Running reports whether ticks advance the run (countdown included)
func (g *Game) Running() bool {
	return g.run.In(stateRunning)
}

// Finished reports whether the run reached the end of the Hard phase
func (g *Game) Finished() bool {
	return g.run.State() == stateFinished
}

// CountingDown reports the pre-game countdown state
func (g *Game) CountingDown() bool {
	return g.run.State() == stateCountdown
}

// Clock returns game time since Start
func (g *Game) Clock() time.Duration {
	return g.clock
}

// Targets returns a copy of the live set in spawn order
func (g *Game) Targets() []target.Target {
	return g.world.Snapshot()
}

// Speed returns the current instantaneous speed of hand
func (g *Game) Speed(hand target.Hand) float64 {
	return g.tracker.InstantSpeed(hand)
}

// Registry returns the metrics registry
func (g *Game) Registry() *status.Registry {
	return g.reg
}

// Config returns the validated configuration
func (g *Game) Config() Config {
	return g.cfg
}

// Result reports the run so far; final once Finished
func (g *Game) Result() Result {
	return Result{
		RunID:     g.runID,
		Score:     g.score.Score(),
		BestCombo: g.score.BestCombo(),
		Success:   g.score.Score() >= g.cfg.MinScoreToWin,
		Abandoned: g.run.State() == stateStopped,
		Duration:  g.clock,
		Tally:     g.tally,
	}
}

// String summarizes the game state for debug logs
func (g *Game) String() string {
	return fmt.Sprintf("game{%s phase=%s clock=%v score=%d combo=%d live=%d}",
		g.run.StateName(), g.phases.Phase(), g.clock, g.score.Score(), g.score.Combo(), g.world.Len())
}

// ceilSeconds rounds a positive duration up to whole seconds
func ceilSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
