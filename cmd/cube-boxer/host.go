package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cube-boxer/audio"
	"github.com/lixenwraith/cube-boxer/game"
	"github.com/lixenwraith/cube-boxer/hit"
	"github.com/lixenwraith/cube-boxer/input"
	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/render"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// soundPlayer is the part of audio.Manager the host drives
type soundPlayer interface {
	Play(cue audio.Cue)
	SetMuted(muted bool)
	Muted() bool
}

// host connects the keyboard, the game core, the screen and the speaker
// It is the game's listener; every callback runs on the frame goroutine inside Tick
type host struct {
	game     *game.Game
	hands    *input.Hands
	keys     *input.KeyTable
	renderer *render.Renderer
	sound    soundPlayer
	log      *slog.Logger
	debug    bool

	poses        [target.HandCount]vmath.Vec3
	countdown    int
	status       string
	statusFrames int
	result       *game.Result
}

func newHost(cfg game.Config, keys *input.KeyTable, renderer *render.Renderer, sound soundPlayer, seed uint64, logger *slog.Logger, debug bool) (*host, error) {
	h := &host{
		hands:    input.NewHands(),
		keys:     keys,
		renderer: renderer,
		sound:    sound,
		log:      logger,
		debug:    debug,
	}
	h.poses = h.hands.Frame(0)

	g, err := game.New(cfg,
		game.WithListener(h),
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
	)
	if err != nil {
		return nil, err
	}
	h.game = g
	return h, nil
}

// handleEvent processes one terminal event, false means quit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.renderer.Resize()
	case *tcell.EventKey:
		in, ok := h.keys.Resolve(ev)
		if !ok {
			return true
		}
		return h.handleIntent(in)
	}
	return true
}

func (h *host) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		h.game.Stop()
		return false
	case input.IntentStart:
		if h.game.Finished() {
			h.reset()
		}
		h.game.Start()
	case input.IntentReset:
		h.reset()
	case input.IntentToggleMute:
		h.sound.SetMuted(!h.sound.Muted())
	default:
		h.hands.Apply(in)
	}
	return true
}

func (h *host) reset() {
	h.game.Reset()
	h.hands.Reset()
	h.result = nil
	h.countdown = 0
	h.setStatus("")
}

// frame feeds this frame's hand poses and contacts, advances the game and draws
func (h *host) frame(dt time.Duration) {
	h.poses = h.hands.Frame(dt)

	if h.game.Running() {
		at := h.game.Clock() + dt
		for i, pose := range h.poses {
			h.game.OnHandPose(target.Hand(i), pose, at)
		}
		for _, c := range h.hands.Detect(h.poses, h.game.Targets()) {
			h.game.OnContact(c.Hand, c.TargetID, at)
		}
	}

	h.game.Tick(dt)

	if h.statusFrames > 0 {
		h.statusFrames--
		if h.statusFrames == 0 {
			h.status = ""
		}
	}

	h.renderer.Draw(h.view())
}

func (h *host) view() render.View {
	g := h.game
	v := render.View{
		Targets:      g.Targets(),
		Hands:        h.poses,
		Phase:        g.Phase(),
		Remaining:    g.RemainingPhaseTime(),
		Resting:      g.Resting(),
		Running:      g.Running(),
		CountingDown: g.CountingDown(),
		Countdown:    h.countdown,
		Score:        g.Score(),
		Combo:        g.Combo(),
		BestCombo:    g.BestCombo(),
		Goal:         g.Config().MinScoreToWin,
		Status:       h.status,
		Muted:        h.sound.Muted(),
		Result:       h.result,
	}
	for i := range v.Speeds {
		v.Speeds[i] = g.Speed(target.Hand(i))
	}
	if h.debug {
		v.Metrics = g.Registry().Snapshot()
	}
	return v
}

func (h *host) setStatus(msg string) {
	h.status = msg
	h.statusFrames = 0
	if msg != "" {
		h.statusFrames = parameter.StatusMessageFrames
	}
}

// === game.Listener ===

func (h *host) OnPhaseChanged(p phase.Phase) {
	switch p {
	case phase.Easy:
		h.setStatus("Easy: warm up")
	case phase.Finished:
		return
	default:
		h.sound.Play(audio.CuePhase)
		h.setStatus(fmt.Sprintf("%s phase", p))
	}
}

func (h *host) OnScoreChanged(score, combo int) {
	h.log.Debug("score", "score", score, "combo", combo)
}

func (h *host) OnCountdown(secs int) {
	h.countdown = secs
	if secs > 0 {
		h.sound.Play(audio.CueCountdown)
		return
	}
	h.setStatus("GO!")
}

func (h *host) OnTargetSpawned(target.Target) {}

func (h *host) OnResolution(res hit.Resolution) {
	switch res.Outcome {
	case hit.OutcomeHit:
		cue := audio.CueHit
		if res.Points > 1 {
			cue = audio.CueCombo
		}
		h.sound.Play(cue)
		h.setStatus(fmt.Sprintf("HIT +%d  %.1f m/s", res.Points, res.Speed))
	case hit.OutcomeForbiddenHit:
		h.sound.Play(audio.CueForbidden)
		h.setStatus("FORBIDDEN!")
	case hit.OutcomeWrongHand:
		h.sound.Play(audio.CueWrongHand)
		h.setStatus("WRONG HAND")
	case hit.OutcomeTooWeak:
		h.sound.Play(audio.CueTooWeak)
		h.setStatus(fmt.Sprintf("TOO WEAK  %.1f m/s", res.Speed))
	case hit.OutcomeMissBoundary, hit.OutcomeMissTimeout:
		if res.Kind == target.KindForbidden {
			return
		}
		h.sound.Play(audio.CueMiss)
		h.setStatus("MISS")
	}
}

func (h *host) OnGameFinished(r game.Result) {
	h.result = &r
	if r.Success {
		h.sound.Play(audio.CueWin)
	} else {
		h.sound.Play(audio.CueLose)
	}
	h.setStatus("")
}
