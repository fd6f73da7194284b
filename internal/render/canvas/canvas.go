// Package canvas renders game snapshots to raster images at field
// resolution, the way the game looks on a real canvas: a sky backdrop,
// gradient pipes, the bird sprite and the score.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/boya/internal/assets"
	"github.com/vovakirdan/boya/internal/games/flappy"
)

// Palette
var (
	skyTop      = color.RGBA{0x70, 0xC5, 0xCE, 0xFF}
	skyBottom   = color.RGBA{0xDE, 0xF4, 0xF7, 0xFF}
	pipeLight   = color.RGBA{0x4C, 0xAF, 0x50, 0xFF}
	pipeDark    = color.RGBA{0x38, 0x8E, 0x3C, 0xFF}
	titleColor  = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	startColor  = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	scoreColor  = color.Black
	dialogColor = color.RGBA{0x00, 0x00, 0x00, 0xB0}
)

// Renderer draws snapshots. It is safe to reuse across frames but not
// across goroutines.
type Renderer struct {
	assets *assets.Assets
}

// NewRenderer creates a renderer using the given art.
func NewRenderer(a *assets.Assets) *Renderer {
	return &Renderer{assets: a}
}

// Draw renders one frame.
func (r *Renderer) Draw(snap flappy.Snapshot) image.Image {
	w := int(math.Ceil(snap.FieldW))
	h := int(math.Ceil(snap.FieldH))
	dc := gg.NewContext(w, h)

	sky := gg.NewLinearGradient(0, 0, 0, snap.FieldH)
	sky.AddColorStop(0, skyTop)
	sky.AddColorStop(1, skyBottom)
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, snap.FieldW, snap.FieldH)
	dc.Fill()

	if snap.Phase == flappy.PhaseIdle {
		drawTitle(dc, snap)
		return dc.Image()
	}

	for _, o := range snap.Obstacles {
		drawPipe(dc, snap, o)
	}
	r.drawBird(dc, snap)

	dc.SetColor(scoreColor)
	dc.DrawString(fmt.Sprintf("SCORE: %d", snap.Score), snap.FieldW-100, 30)

	if snap.Phase == flappy.PhaseOver {
		drawGameOver(dc, snap)
	}
	return dc.Image()
}

// SavePNG renders snap and writes it to path, creating parent directories.
func (r *Renderer) SavePNG(snap flappy.Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("canvas: cannot create directory for %s: %w", path, err)
	}
	if err := imaging.Save(r.Draw(snap), path); err != nil {
		return fmt.Errorf("canvas: cannot save %s: %w", path, err)
	}
	return nil
}

func drawTitle(dc *gg.Context, snap flappy.Snapshot) {
	cx, cy := snap.FieldW/2, snap.FieldH/2

	dc.SetColor(titleColor)
	dc.DrawStringAnchored("The Boya Game", cx, cy-20, 0.5, 0.5)
	dc.SetColor(startColor)
	dc.DrawStringAnchored("Start the Game!", cx, cy+20, 0.5, 0.5)
}

// drawPipe fills both solid segments with a vertical light-to-dark
// gradient spanning the whole field.
func drawPipe(dc *gg.Context, snap flappy.Snapshot, o flappy.Obstacle) {
	grad := gg.NewLinearGradient(o.X, 0, o.X, snap.FieldH)
	grad.AddColorStop(0, pipeLight)
	grad.AddColorStop(1, pipeDark)
	dc.SetFillStyle(grad)

	top := o.TopBox(snap.ObstacleWidth)
	bottom := o.BottomBox(snap.ObstacleWidth, snap.FieldH)
	dc.DrawRectangle(top.X, top.Y, top.W, top.H)
	dc.DrawRectangle(bottom.X, bottom.Y, bottom.W, bottom.H)
	dc.Fill()
}

func (r *Renderer) drawBird(dc *gg.Context, snap flappy.Snapshot) {
	a := snap.Actor
	if r.assets != nil && r.assets.Bird != nil {
		dc.DrawImage(r.assets.Bird, int(math.Round(a.X)), int(math.Round(a.Y)))
		return
	}
	dc.SetColor(startColor)
	dc.DrawRectangle(a.X, a.Y, a.W, a.H)
	dc.Fill()
}

func drawGameOver(dc *gg.Context, snap flappy.Snapshot) {
	const boxW, boxH = 200.0, 90.0
	x := (snap.FieldW - boxW) / 2
	y := (snap.FieldH - boxH) / 2

	dc.SetColor(dialogColor)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 8)
	dc.Fill()

	dc.SetColor(color.White)
	dc.DrawStringAnchored("Game Over!", snap.FieldW/2, y+28, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Final Score: %d", snap.Score), snap.FieldW/2, y+58, 0.5, 0.5)
}
