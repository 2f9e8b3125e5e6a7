package core

import "math"

// Projection maps the fixed world viewport onto a grid of terminal cells.
// World Y grows upwards from the bottom edge; cell rows grow downwards.
type Projection struct {
	WorldW, WorldH float64 // Logical viewport size in world units
	Cols, Rows     int     // Target cell grid
}

// NewProjection creates a projection of a worldW x worldH viewport onto cols x rows cells.
func NewProjection(worldW, worldH float64, cols, rows int) Projection {
	return Projection{WorldW: worldW, WorldH: worldH, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Col returns the cell column containing world x.
func (p Projection) Col(x float64) int {
	return int(math.Floor(x / p.WorldW * float64(p.Cols)))
}

// Row returns the cell row containing world y.
func (p Projection) Row(y float64) int {
	return p.Rows - 1 - int(math.Floor(y/p.WorldH*float64(p.Rows)))
}

// Cells returns the cell span covered by a world rectangle as x, y, w, h.
// Every non-empty rectangle covers at least one cell.
func (p Projection) Cells(r Rect) (int, int, int, int) {
	x0 := p.Col(r.X)
	x1 := int(math.Ceil(r.Right()/p.WorldW*float64(p.Cols))) - 1
	top := p.Rows - int(math.Ceil(r.Top()/p.WorldH*float64(p.Rows)))
	bottom := p.Row(r.Y)
	if x1 < x0 {
		x1 = x0
	}
	if bottom < top {
		bottom = top
	}
	return x0, top, x1 - x0 + 1, bottom - top + 1
}

// ToWorld maps the center of cell (col, row) back to world coordinates.
func (p Projection) ToWorld(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * p.WorldW / float64(p.Cols)
	y := (float64(p.Rows-row) - 0.5) * p.WorldH / float64(p.Rows)
	return x, y
}
