package drawingboard

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows the smoothed frame rate and Ebitengine's tick rate in the
// top-left corner of the window. It draws on the screen, not the canvas, so
// it never ends up in screenshots.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{img: ebiten.NewImage(100, 32), lastUpdate: -fpsRefresh}
	return o
}

// update redraws the text at most every fpsRefresh seconds.
func (o *fpsOverlay) update(c *Clock) {
	now := c.Tick()
	if now-o.lastUpdate < fpsRefresh {
		return
	}
	o.lastUpdate = now

	o.img.Clear()
	// semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", c.FrameRate(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
