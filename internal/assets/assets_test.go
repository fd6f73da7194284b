package assets

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/vovakirdan/boya/internal/config"
)

func TestLoadGeneratedBird(t *testing.T) {
	a, err := Load(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	b := a.Bird.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("bird size = %dx%d, expected 40x30", b.Dx(), b.Dy())
	}
	// The body is opaque in the middle
	if _, _, _, alpha := a.Bird.At(18, 16).RGBA(); alpha == 0 {
		t.Error("bird body should be painted")
	}
}

func TestLoadSpriteFileIsResized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bird.png")
	src := imaging.New(200, 150, color.NRGBA{R: 255, A: 255})
	if err := imaging.Save(src, path); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultFlappyConfig()
	cfg.Assets.BirdSprite = path
	a, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if a.Bird.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("bird bounds = %v, expected 40x30", a.Bird.Bounds())
	}
}

func TestLoadMissingSprite(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Assets.BirdSprite = filepath.Join(t.TempDir(), "nope.png")
	if _, err := Load(cfg); err == nil {
		t.Error("Load() should fail for a missing sprite")
	}
	if Generated(cfg).Bird == nil {
		t.Error("Generated() should always return a bird")
	}
}
