package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cube-boxer/game"
	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/phase"
	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(rowText(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestFieldProjection(t *testing.T) {
	f := NewField(80, 30)

	x, y, ok := f.Project(vmath.V3(0, 0, parameter.SpawnAnchorZ))
	if !ok || y != f.Top {
		t.Errorf("far point at (%d,%d,%v), want row %d", x, y, ok, f.Top)
	}
	if x != f.Left+(f.Width-1)/2 {
		t.Errorf("center column = %d, want %d", x, f.Left+(f.Width-1)/2)
	}

	_, y, ok = f.Project(vmath.V3(0, 0, parameter.DestroyPlaneZ))
	if !ok || y != f.Top+f.Height-1 {
		t.Errorf("near plane row = %d, want %d", y, f.Top+f.Height-1)
	}

	if _, _, ok := f.Project(vmath.V3(0, 0, parameter.DestroyPlaneZ-1)); ok {
		t.Error("point behind the plane should be outside")
	}
	if _, _, ok := f.Project(vmath.V3(10, 0, 5)); ok {
		t.Error("point far to the side should be outside")
	}

	// Left of center projects left
	lx, _, _ := f.Project(vmath.V3(-1, 0, 5))
	rx, _, _ := f.Project(vmath.V3(1, 0, 5))
	if lx >= rx {
		t.Errorf("left x %d not left of right x %d", lx, rx)
	}
}

func TestDrawTargetsAndHands(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)

	left := *target.New(1, target.KindLeft, vmath.V3(-0.5, 1.3, 8), 0)
	forbidden := *target.New(2, target.KindForbidden, vmath.V3(0.5, 1.3, 4), 0)
	hands := [target.HandCount]vmath.Vec3{
		vmath.V3(-0.35, 1.3, 0),
		vmath.V3(0.35, 1.3, 0.6),
	}

	r.Draw(View{
		Targets: []target.Target{left, forbidden},
		Hands:   hands,
		Phase:   phase.Easy,
		Running: true,
	})

	f := r.Field()
	check := func(name string, p vmath.Vec3, want rune) {
		x, y, ok := f.Project(p)
		if !ok {
			t.Fatalf("%s not projected", name)
		}
		got, _, _, _ := screen.GetContent(x, y)
		if got != want {
			t.Errorf("%s at (%d,%d) = %q, want %q", name, x, y, got, want)
		}
	}
	check("left target", left.Position, GlyphLeftTarget)
	check("forbidden target", forbidden.Position, GlyphForbiddenTarget)
	check("left hand", hands[target.HandLeft], GlyphLeftHand)
	check("right hand", hands[target.HandRight], GlyphRightHand)

	hx, hy, _ := f.Project(hands[target.HandRight])
	if _, _, style, _ := screen.GetContent(hx, hy); style != styleHandPunch {
		t.Error("punching hand should use the punch style")
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)

	r.Draw(View{
		Phase:     phase.Normal,
		Remaining: 12500 * time.Millisecond,
		Running:   true,
		Score:     7,
		Combo:     4,
		BestCombo: 6,
		Goal:      100,
		Status:    "HIT +1",
	})

	hud := rowText(screen, 0)
	for _, want := range []string{"Score 7/100", "Combo 4 x2", "Best 6", "Normal", "12.5s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(rowText(screen, 1), "HIT +1") {
		t.Error("status line missing")
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name string
		view View
		want []string
	}{
		{"idle", View{Goal: 100}, []string{"SPACE to start"}},
		{"countdown", View{Running: true, CountingDown: true, Countdown: 3, Goal: 100}, []string{"3"}},
		{"resting", View{Running: true, Resting: true, Phase: phase.Easy}, []string{"Easy  REST"}},
		{"win", View{Goal: 100, Result: &game.Result{Score: 120, Success: true}}, []string{"FINISHED", "Score 120 / 100", "YOU WIN"}},
		{"lose", View{Goal: 100, Result: &game.Result{Score: 40}}, []string{"FINISHED", "TRY AGAIN"}},
		{"muted", View{Muted: true}, []string{"[muted]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newScreen(t)
			screen.SetSize(120, 30)
			r := NewRenderer(screen)
			r.Draw(tt.view)

			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q", want)
				}
			}
		})
	}
}

func TestResize(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	before := r.Field()

	screen.SetSize(40, 20)
	r.Resize()
	after := r.Field()

	if after.Width >= before.Width || after.Height >= before.Height {
		t.Errorf("field did not shrink: %+v -> %+v", before, after)
	}
	r.Draw(View{}) // must not panic on a small screen
}

func TestDrawCountdownCentered(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	r.Draw(View{Running: true, CountingDown: true, Countdown: 2})

	f := r.Field()
	w, _ := screen.Size()
	got, _, _, _ := screen.GetContent((w-1)/2, f.Top+f.Height/2)
	if got != '2' {
		t.Errorf("countdown cell = %q, want '2'", got)
	}
}
