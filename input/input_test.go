package input

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

func TestDefaultKeyTableResolve(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
		ok   bool
	}{
		{"left punch", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), Intent{IntentPunch, target.HandLeft}, true},
		{"left punch upper", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), Intent{IntentPunch, target.HandLeft}, true},
		{"right jab", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Intent{IntentJab, target.HandRight}, true},
		{"right move left", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), Intent{IntentMoveLeft, target.HandRight}, true},
		{"start", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Intent{Type: IntentStart}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Resolve(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve = %+v/%v, want %+v/%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoadKeyConfigAndMerge(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"up":    "left_punch",
		"space": "none",
		"X":     "reset",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	if got, ok := kt.Resolve(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); !ok || got.Type != IntentPunch || got.Hand != target.HandLeft {
		t.Errorf("up = %+v/%v", got, ok)
	}
	if _, ok := kt.Resolve(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); ok {
		t.Error("space should be unbound")
	}
	if got, ok := kt.Resolve(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); !ok || got.Type != IntentReset {
		t.Errorf("x = %+v/%v", got, ok)
	}

	// Base table untouched
	if _, ok := DefaultKeyTable().Runes[' ']; !ok {
		t.Error("merge mutated the default table")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig(map[string]string{"q": "uppercut"}); err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("unknown action err = %v", err)
	}
	if _, err := LoadKeyConfig(map[string]string{"qq": "quit"}); err == nil || !strings.Contains(err.Error(), "invalid rune key") {
		t.Errorf("invalid key err = %v", err)
	}
}

const frame = 16 * time.Millisecond

func TestHandsMoveAndClamp(t *testing.T) {
	h := NewHands()
	start := h.Rest(target.HandLeft).X

	h.Apply(Intent{IntentMoveRight, target.HandLeft})
	if got := h.Rest(target.HandLeft).X; got != start {
		t.Errorf("hand jumped to %v before any frame", got)
	}
	h.Frame(time.Second)
	if got := h.Rest(target.HandLeft).X; got != start+parameter.HandStepX {
		t.Errorf("x = %v, want %v", got, start+parameter.HandStepX)
	}

	for i := 0; i < 100; i++ {
		h.Apply(Intent{IntentMoveLeft, target.HandLeft})
	}
	h.Frame(10 * time.Second)
	if got := h.Rest(target.HandLeft).X; got != -parameter.HandLimitX {
		t.Errorf("x = %v, want clamp %v", got, -parameter.HandLimitX)
	}

	h.Apply(Intent{Type: IntentQuit})
	h.Reset()
	h.Frame(time.Second)
	if h.Rest(target.HandLeft).X != -parameter.HandStartOffsetX {
		t.Error("reset did not recenter")
	}
}

func TestHandsSlideBelowHitSpeed(t *testing.T) {
	if parameter.HandSlideSpeed >= parameter.MinHitVelocity {
		t.Fatalf("slide speed %v reaches hit velocity %v", parameter.HandSlideSpeed, parameter.MinHitVelocity)
	}

	h := NewHands()
	goal := h.Rest(target.HandRight).X - 3*parameter.HandStepX
	for range 3 {
		h.Apply(Intent{IntentMoveLeft, target.HandRight})
	}

	prev := h.Rest(target.HandRight).X
	moving := 0
	for i := 0; i < 100; i++ {
		pose := h.Frame(frame)[target.HandRight]
		speed := math.Abs(pose.X-prev) / frame.Seconds()
		if speed > parameter.HandSlideSpeed+1e-9 {
			t.Fatalf("frame %d moved at %.2f m/s", i, speed)
		}
		if pose.X != prev {
			moving++
		}
		prev = pose.X
	}
	if math.Abs(prev-goal) > 1e-9 {
		t.Errorf("settled at %v, want %v", prev, goal)
	}
	if moving < 2 {
		t.Errorf("three steps covered in %d frame", moving)
	}
}

func TestHandsStrikeLastsOneFrame(t *testing.T) {
	h := NewHands()
	h.Apply(Intent{IntentPunch, target.HandRight})
	h.Apply(Intent{IntentJab, target.HandRight}) // weaker strike does not cancel the punch

	poses := h.Frame(frame)
	if poses[target.HandRight].Z != parameter.HandRestZ+parameter.PunchReach {
		t.Errorf("punch z = %v", poses[target.HandRight].Z)
	}
	if poses[target.HandLeft].Z != parameter.HandRestZ {
		t.Errorf("left z = %v", poses[target.HandLeft].Z)
	}

	poses = h.Frame(frame)
	if poses[target.HandRight].Z != parameter.HandRestZ {
		t.Errorf("strike persisted: z = %v", poses[target.HandRight].Z)
	}
}

func TestDetectEnterOnce(t *testing.T) {
	h := NewHands()
	left := h.Rest(target.HandLeft)
	tg := *target.New(7, target.KindLeft, vmath.V3(left.X, parameter.HandY, left.Z+parameter.PunchReach), 0)

	// Resting hand is out of reach
	if c := h.Detect(h.Frame(frame), []target.Target{tg}); len(c) != 0 {
		t.Fatalf("unexpected contacts %v", c)
	}

	h.Apply(Intent{IntentPunch, target.HandLeft})
	c := h.Detect(h.Frame(frame), []target.Target{tg})
	if len(c) != 1 || c[0] != (Contact{Hand: target.HandLeft, TargetID: 7}) {
		t.Fatalf("contacts = %v, want left on 7", c)
	}

	// Still overlapping on the next strike without separating: no new contact
	h.Apply(Intent{IntentPunch, target.HandLeft})
	if c := h.Detect(h.Frame(frame), []target.Target{tg}); len(c) != 0 {
		t.Errorf("repeat contact %v", c)
	}

	// Separate, then strike again: new contact
	h.Detect(h.Frame(frame), []target.Target{tg})
	h.Apply(Intent{IntentPunch, target.HandLeft})
	if c := h.Detect(h.Frame(frame), []target.Target{tg}); len(c) != 1 {
		t.Errorf("contacts after separation = %v", c)
	}
}

func TestDetectIgnoresFarAndResolved(t *testing.T) {
	h := NewHands()
	right := h.Rest(target.HandRight)

	far := *target.New(1, target.KindRight, vmath.V3(right.X+1, parameter.HandY, right.Z), 0)
	resolved := *target.New(2, target.KindRight, right, 0)
	resolved.Resolve(target.OutcomeHit)

	if c := h.Detect(h.Frame(frame), []target.Target{far, resolved}); len(c) != 0 {
		t.Errorf("contacts = %v, want none", c)
	}
}
