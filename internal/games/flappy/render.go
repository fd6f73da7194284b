package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/boya/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Title screen text
const (
	titleText = "The Boya Game"
	startText = "Start the Game!"
	overText  = "Game Over!"
)

// viewport maps field coordinates onto screen cells. The bottom row is
// reserved for the ground line.
type viewport struct {
	cols, rows     int
	fieldW, fieldH float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   core.Max(dst.Height()-1, 1),
		fieldW: snap.FieldW,
		fieldH: snap.FieldH,
	}
}

func (v viewport) col(x float64) int {
	return int(x * float64(v.cols) / v.fieldW)
}

func (v viewport) row(y float64) int {
	return int(y * float64(v.rows) / v.fieldH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	vp := newViewport(dst, snap)

	dst.DrawTextColored(0, dst.Height()-1, strings.Repeat(string(GroundChar), dst.Width()), core.ColorDarkGreen)

	if snap.Phase == PhaseIdle {
		g.drawTitle(dst, vp)
		return
	}

	for _, o := range snap.Obstacles {
		drawPipe(dst, vp, o, snap.ObstacleWidth)
	}
	drawBird(dst, vp, snap)

	scoreText := fmt.Sprintf("SCORE: %d", snap.Score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-2, 0, scoreText, core.ColorWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == PhaseOver {
		drawCenteredMessage(dst, overText, fmt.Sprintf("Final Score: %d  |  R to retry", snap.Score))
	}
}

// drawTitle renders the Idle screen.
func (g *Game) drawTitle(dst *core.Screen, vp viewport) {
	mid := vp.rows / 2
	dst.DrawTextCentered(mid-1, titleText, core.ColorBlue)
	dst.DrawTextCentered(mid+1, startText, core.ColorYellow)
	dst.DrawTextCentered(mid+3, "press space to flap", core.ColorGray)
}

// drawPipe renders one obstacle. The lower half of the field is drawn in a
// darker shade, like the vertical gradient of the raster renderer.
func drawPipe(dst *core.Screen, vp viewport, o Obstacle, width float64) {
	x0 := vp.col(o.X)
	x1 := core.Max(vp.col(o.X+width), x0+1)
	topEnd := vp.row(o.GapTop)
	bottomStart := vp.row(vp.fieldH - o.GapBottom)

	shade := func(y int) core.Color {
		if y < vp.rows/2 {
			return core.ColorGreen
		}
		return core.ColorDarkGreen
	}

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, PipeChar, shade(y))
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, PipeCapTop, shade(topEnd-1))
		}
		for y := bottomStart; y < vp.rows; y++ {
			dst.SetColored(x, y, PipeChar, shade(y))
		}
		if bottomStart < vp.rows {
			dst.SetColored(x, bottomStart, PipeCapBottom, shade(bottomStart))
		}
	}
}

// drawBird renders the actor's hitbox, at least one cell in size.
func drawBird(dst *core.Screen, vp viewport, snap Snapshot) {
	a := snap.Actor
	x0, y0 := vp.col(a.X), vp.row(a.Y)
	x1 := core.Max(vp.col(a.Right()), x0+1)
	y1 := core.Max(vp.row(a.Bottom()), y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, BirdChar, core.ColorYellow)
		}
	}
	dst.SetColored(x1-1, y0, BeakChar, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
