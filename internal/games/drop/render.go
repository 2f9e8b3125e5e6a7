package drop

import (
	"github.com/vovakirdan/drop/internal/core"
)

// Visual characters for terminal rendering
const (
	DropChar   = '▓'
	BucketWall = '█'
	BucketRim  = '▀'
)

// Render draws the current world to the screen, scaling the logical
// viewport to fit the whole buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	p := g.world.Params
	proj := core.NewProjection(p.WorldW, p.WorldH, dst.Width(), dst.Height())

	for _, d := range g.world.Raindrops {
		x, y, w, h := proj.Cells(d.Rect)
		dst.FillCells(x, y, w, h, DropChar, core.ColorBrightCyan)
	}

	g.drawBucket(dst, proj)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBucket renders the bucket as an open-topped container.
func (g *Game) drawBucket(dst *core.Screen, proj core.Projection) {
	x, y, w, h := proj.Cells(g.world.Bucket.Rect)

	// Rim on top, walls on the sides, solid bottom
	dst.FillCells(x, y, w, 1, BucketRim, core.ColorOrange)
	dst.FillCells(x, y+1, 1, h-1, BucketWall, core.ColorOrange)
	dst.FillCells(x+w-1, y+1, 1, h-1, BucketWall, core.ColorOrange)
	dst.FillCells(x, y+h-1, w, 1, BucketWall, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillCells(boxX, boxY, boxW, boxH, ' ', core.ColorWhite)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
