package swipe

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the current FPS and TPS, refreshed every ~0.5 seconds.
// It renders into its own image with ebitenutil.DebugPrint.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), elapsed: 0.5}
}

// update redraws the overlay image once half a second has passed.
func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
