package flipdeck

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS renders the FPS/TPS readout and navigation state in the top-left
// corner. The text is redrawn every ~0.5 seconds.
func (p *Presenter) drawFPS(screen *ebiten.Image) {
	if p.fpsImage == nil {
		// 140x48 fits three lines of debug text.
		p.fpsImage = ebiten.NewImage(140, 48)
	}
	if p.fpsElapsed >= 0.5 || !p.fpsPrimed {
		p.fpsElapsed = 0
		p.fpsPrimed = true

		p.fpsImage.Clear()
		p.fpsImage.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(p.fpsImage, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npage %d/%d %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			p.nav.Current()+1, p.nav.Pages(), p.nav.State()))
	}
	screen.DrawImage(p.fpsImage, nil)
}
