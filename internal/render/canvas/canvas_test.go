package canvas

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/boya/internal/assets"
	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
	"github.com/vovakirdan/boya/internal/games/flappy"
)

func playingSnapshot() flappy.Snapshot {
	return flappy.Snapshot{
		Phase:         flappy.PhasePlaying,
		Score:         3,
		FieldW:        320,
		FieldH:        480,
		ObstacleWidth: 40,
		GapSize:       150,
		Actor:         core.NewBox(50, 150, 40, 30),
		Obstacles: []flappy.Obstacle{
			{X: 200, GapTop: 100, GapBottom: 230},
		},
	}
}

func isGreenish(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return g > r && g > b
}

func TestDrawPipes(t *testing.T) {
	r := NewRenderer(assets.Generated(config.DefaultFlappyConfig()))
	img := r.Draw(playingSnapshot())

	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 480 {
		t.Fatalf("image size = %dx%d, expected 320x480", b.Dx(), b.Dy())
	}
	// Top segment spans y in [0, 100), bottom segment y in [250, 480)
	if !isGreenish(img.At(220, 50)) {
		t.Errorf("top segment pixel = %v, expected green", img.At(220, 50))
	}
	if !isGreenish(img.At(220, 400)) {
		t.Errorf("bottom segment pixel = %v, expected green", img.At(220, 400))
	}
	if isGreenish(img.At(220, 175)) {
		t.Error("gap should show the sky")
	}

	// Gradient darkens toward the bottom
	_, gTop, _, _ := img.At(220, 10).RGBA()
	_, gBottom, _, _ := img.At(220, 470).RGBA()
	if gBottom >= gTop {
		t.Errorf("pipe gradient should darken downward: top g=%d bottom g=%d", gTop, gBottom)
	}
}

func TestDrawWithoutAssets(t *testing.T) {
	r := NewRenderer(nil)
	img := r.Draw(playingSnapshot())
	r8, g8, b8, _ := img.At(60, 160).RGBA()
	if r8>>8 != 0xFF || g8>>8 != 0xFF || b8>>8 != 0 {
		t.Errorf("bird placeholder pixel = %v, expected yellow", img.At(60, 160))
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	r := NewRenderer(assets.Generated(config.DefaultFlappyConfig()))

	snap := playingSnapshot()
	snap.Phase = flappy.PhaseOver
	if err := r.SavePNG(snap, path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PNG not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG is empty")
	}
}
