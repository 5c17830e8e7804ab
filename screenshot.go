package flipdeck

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG is written to ScreenshotDir with a
// timestamped filename that includes the current page number.
func (p *Presenter) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once and writes it for every
// queued label. Called at the end of Presenter.Draw.
func (p *Presenter) flushScreenshots(screen *ebiten.Image) {
	if len(p.screenshotQueue) == 0 {
		return
	}
	defer func() { p.screenshotQueue = p.screenshotQueue[:0] }()

	if err := os.MkdirAll(p.ScreenshotDir, 0o755); err != nil {
		logger.Error("screenshot: mkdir", "dir", p.ScreenshotDir, "err", err)
		return
	}

	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	page := p.nav.Current()
	for _, label := range p.screenshotQueue {
		path := filepath.Join(p.ScreenshotDir, screenshotName(stamp, page, label))
		if err := savePNG(path, frame); err != nil {
			logger.Error("screenshot", "page", page, "label", label, "err", err)
			continue
		}
		logger.Debug("screenshot written", "path", path, "page", page)
	}
}

// captureFrame copies the screen into straight-alpha NRGBA. Ebitengine
// stores premultiplied colors, so partly transparent pixels are divided
// back out.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	img := image.NewNRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	for px := img.Pix; len(px) >= 4; px = px[4:] {
		a := uint32(px[3])
		if a == 0 || a == 0xff {
			continue
		}
		for c := 0; c < 3; c++ {
			px[c] = uint8(min(uint32(px[c])*0xff/a, 0xff))
		}
	}
	return img
}

// savePNG writes img to path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flipdeck: screenshot %s: %w", path, err)
	}
	if err := errors.Join(png.Encode(f, img), f.Close()); err != nil {
		return fmt.Errorf("flipdeck: screenshot %s: %w", path, err)
	}
	return nil
}

// screenshotName builds "<stamp>_p<page>_<label>.png" with the page shown
// one-based like the FPS readout. Characters other than ASCII letters,
// digits, '-' and '.' in label become '_'; a blank label is "unlabeled".
func screenshotName(stamp string, page int, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "unlabeled"
	}
	label = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
	return fmt.Sprintf("%s_p%d_%s.png", stamp, page+1, label)
}
