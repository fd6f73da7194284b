// Package assets loads the game's art. The simulation never depends on
// asset content; hosts only wait for loading to finish before ticking.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/boya/internal/config"
)

// Assets holds decoded images sized to field units.
type Assets struct {
	Bird image.Image
}

// Load reads the sprite named in cfg and scales it to the actor's hitbox.
// With no sprite configured a bird is drawn instead.
func Load(cfg config.FlappyConfig) (*Assets, error) {
	w, h := spriteSize(cfg)

	if cfg.Assets.BirdSprite == "" {
		return &Assets{Bird: DrawBird(w, h)}, nil
	}

	img, err := imaging.Open(cfg.Assets.BirdSprite)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load bird sprite %s: %w", cfg.Assets.BirdSprite, err)
	}
	return &Assets{Bird: imaging.Resize(img, w, h, imaging.Lanczos)}, nil
}

// Generated returns the built-in art for cfg. It never fails.
func Generated(cfg config.FlappyConfig) *Assets {
	w, h := spriteSize(cfg)
	return &Assets{Bird: DrawBird(w, h)}
}

func spriteSize(cfg config.FlappyConfig) (int, int) {
	w := int(math.Max(1, math.Round(cfg.Actor.Width)))
	h := int(math.Max(1, math.Round(cfg.Actor.Height)))
	return w, h
}

// DrawBird paints a simple facing-right bird filling a w x h canvas.
func DrawBird(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	// Body
	dc.DrawEllipse(fw*0.45, fh*0.55, fw*0.42, fh*0.42)
	dc.SetColor(color.RGBA{0xFF, 0xD5, 0x4F, 0xFF})
	dc.Fill()

	// Wing
	dc.DrawEllipse(fw*0.32, fh*0.62, fw*0.18, fh*0.14)
	dc.SetColor(color.RGBA{0xF5, 0xB0, 0x2E, 0xFF})
	dc.Fill()

	// Eye
	dc.DrawCircle(fw*0.62, fh*0.38, fh*0.13)
	dc.SetColor(color.White)
	dc.Fill()
	dc.DrawCircle(fw*0.65, fh*0.38, fh*0.06)
	dc.SetColor(color.Black)
	dc.Fill()

	// Beak
	dc.MoveTo(fw*0.78, fh*0.50)
	dc.LineTo(fw, fh*0.60)
	dc.LineTo(fw*0.78, fh*0.70)
	dc.ClosePath()
	dc.SetColor(color.RGBA{0xFF, 0x70, 0x43, 0xFF})
	dc.Fill()

	return dc.Image()
}
