package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/score"
	"github.com/lixenwraith/cube-boxer/target"
)

const (
	hudRows    = 2
	footerRows = 2
)

// Glyphs
const (
	GlyphLeftTarget      = '◆'
	GlyphRightTarget     = '◆'
	GlyphForbiddenTarget = '✖'
	GlyphLeftHand        = '⊂'
	GlyphRightHand       = '⊃'
	GlyphRestLine        = '·'
	GlyphBorder          = '│'
	GlyphPlane           = '─'
)

var (
	styleDefault   = tcell.StyleDefault
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLeft      = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleRight     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleForbidden = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHandRest  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHandPunch = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
	styleWin       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws a top-down view of the playfield with a HUD
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	field  Field
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the layout after a terminal resize
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.field = NewField(r.width, r.height)
}

// Field returns the current playfield mapping
func (r *Renderer) Field() Field {
	return r.field
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.Clear()

	r.drawField(v)
	r.drawHUD(v)
	r.drawFooter(v)
	r.drawOverlay(v)

	r.screen.Show()
}

func (r *Renderer) drawHUD(v View) {
	left := fmt.Sprintf("Score %d/%d  Combo %d x%d  Best %d",
		v.Score, v.Goal, v.Combo, score.PointsFor(v.Combo+1), v.BestCombo)
	r.text(1, 0, styleHUD, left)

	var right string
	switch {
	case v.Result != nil:
		right = "Finished"
	case v.Resting:
		right = fmt.Sprintf("%s  REST", v.Phase)
	default:
		right = fmt.Sprintf("%s  %4.1fs", v.Phase, v.Remaining.Seconds())
	}
	r.text(r.width-runewidth.StringWidth(right)-1, 0, styleHUD, right)

	if v.Status != "" {
		r.centered(1, styleStatus, v.Status)
	}
}

func (r *Renderer) drawField(v View) {
	f := r.field

	for y := f.Top; y < f.Top+f.Height; y++ {
		r.screen.SetContent(f.Left-1, y, GlyphBorder, nil, styleDim)
		r.screen.SetContent(f.Left+f.Width, y, GlyphBorder, nil, styleDim)
	}

	restRow := f.RowOf(parameter.HandRestZ)
	planeRow := f.RowOf(parameter.DestroyPlaneZ)
	for x := f.Left; x < f.Left+f.Width; x++ {
		r.screen.SetContent(x, restRow, GlyphRestLine, nil, styleDim)
		r.screen.SetContent(x, planeRow, GlyphPlane, nil, styleDim)
	}

	for _, t := range v.Targets {
		x, y, ok := f.Project(t.Position)
		if !ok {
			continue
		}
		glyph, style := targetGlyph(t.Kind)
		r.screen.SetContent(x, y, glyph, nil, style)
	}

	for i, pose := range v.Hands {
		x, y, ok := f.Project(pose)
		if !ok {
			continue
		}
		style := styleHandRest
		if pose.Z > parameter.HandRestZ {
			style = styleHandPunch
		}
		glyph := GlyphLeftHand
		if target.Hand(i) == target.HandRight {
			glyph = GlyphRightHand
		}
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *Renderer) drawFooter(v View) {
	speeds := fmt.Sprintf("L %5.1f m/s  R %5.1f m/s", v.Speeds[target.HandLeft], v.Speeds[target.HandRight])
	r.text(1, r.height-2, styleDim, speeds)

	if len(v.Metrics) > 0 {
		parts := make([]string, 0, len(v.Metrics))
		for _, m := range v.Metrics {
			parts = append(parts, fmt.Sprintf("%s=%g", strings.TrimPrefix(m.Key, "game."), m.Value))
		}
		line := strings.Join(parts, " ")
		r.text(runewidth.StringWidth(speeds)+3, r.height-2, styleDim, runewidth.Truncate(line, r.width-runewidth.StringWidth(speeds)-4, "…"))
	}

	help := "A/D move  W punch  S jab | J/L move  I punch  K jab | Space start  R reset  M mute  Esc quit"
	if v.Muted {
		help += "  [muted]"
	}
	r.text(1, r.height-1, styleDim, runewidth.Truncate(help, r.width-2, "…"))
}

func (r *Renderer) drawOverlay(v View) {
	mid := r.field.Top + r.field.Height/2

	switch {
	case v.Result != nil:
		res := v.Result
		verdict, style := "TRY AGAIN", styleLose
		if res.Success {
			verdict, style = "YOU WIN", styleWin
		}
		r.centered(mid-2, styleHUD, "FINISHED")
		r.centered(mid-1, styleHUD, fmt.Sprintf("Score %d / %d", res.Score, v.Goal))
		r.centered(mid, style, verdict)
		r.centered(mid+1, styleDim, fmt.Sprintf("Best combo %d  Hits %d  Misses %d", res.BestCombo, res.Tally.Hits, res.Tally.MissBoundary+res.Tally.MissTimeout))
		r.centered(mid+2, styleDim, "R to reset")
	case v.CountingDown:
		r.centered(mid, styleHUD, fmt.Sprintf("%d", v.Countdown))
	case !v.Running:
		r.centered(mid, styleHUD, "SPACE to start")
	}
}

// text draws s from (x, y), clipped to the screen
func (r *Renderer) text(x, y int, style tcell.Style, s string) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

func (r *Renderer) centered(y int, style tcell.Style, s string) {
	r.text((r.width-runewidth.StringWidth(s))/2, y, style, s)
}

func targetGlyph(k target.Kind) (rune, tcell.Style) {
	switch k {
	case target.KindLeft:
		return GlyphLeftTarget, styleLeft
	case target.KindRight:
		return GlyphRightTarget, styleRight
	case target.KindForbidden:
		return GlyphForbiddenTarget, styleForbidden
	default:
		return '?', styleDefault
	}
}
