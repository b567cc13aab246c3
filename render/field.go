package render

import (
	"math"

	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/vmath"
)

// Field maps the world's X/Z plane onto a screen rectangle, far side at the top
type Field struct {
	Left, Top     int // screen origin
	Width, Height int // cells
	HalfWidthX    float64
	NearZ, FarZ   float64
}

// NewField sizes the playfield to the screen, keeping the HUD rows free
func NewField(screenW, screenH int) Field {
	w := min(screenW-2, parameter.FieldMaxWidth)
	h := max(screenH-hudRows-footerRows-2, 1)
	return Field{
		Left:       (screenW - w) / 2,
		Top:        hudRows + 1,
		Width:      max(w, 1),
		Height:     h,
		HalfWidthX: parameter.HandLimitX + parameter.ContactHalfWidth,
		NearZ:      parameter.DestroyPlaneZ,
		FarZ:       parameter.SpawnAnchorZ,
	}
}

// Project returns the cell of a world position, false when outside the field
func (f Field) Project(p vmath.Vec3) (x, y int, ok bool) {
	u := (p.X + f.HalfWidthX) / (2 * f.HalfWidthX)
	v := (f.FarZ - p.Z) / (f.FarZ - f.NearZ)
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, 0, false
	}
	x = f.Left + int(math.Round(u*float64(f.Width-1)))
	y = f.Top + int(math.Round(v*float64(f.Height-1)))
	return x, y, true
}

// RowOf returns the screen row of depth z clamped to the field
func (f Field) RowOf(z float64) int {
	_, y, ok := f.Project(vmath.V3(0, 0, z))
	if !ok {
		if z > f.FarZ {
			return f.Top
		}
		return f.Top + f.Height - 1
	}
	return y
}
