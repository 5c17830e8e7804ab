package flipdeck

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// edgeShade is how much a tile darkens when it is edge-on.
const edgeShade = 0.35

// Draw renders the backdrop, every tile's visible face and the crossfade
// overlay, then flushes queued screenshots.
func (p *Presenter) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	screen.Fill(p.backdrop())

	shape := p.grid.Shape()
	origin := shape.Offset()
	faces := p.painter.Faces()
	for i := range faces {
		if i >= p.grid.Len() {
			break
		}
		if drawTile(screen, p.grid.Card(i), faces[i], shape, origin) {
			stats.tilesDrawn++
		} else {
			stats.tilesSkipped++
		}
	}

	if page, alpha, ok := p.nav.Overlay(); ok {
		if img, ok := p.pages.Image(page).(*ebiten.Image); ok {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(origin.X, origin.Y)
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(img, &op)
			stats.overlay = true
		}
	}

	if p.showFPS {
		p.drawFPS(screen)
	}

	p.flushScreenshots(screen)

	if p.debug {
		stats.drawTime = time.Since(t0)
		p.debugLog(stats)
	}
}

// backdrop returns the color behind the tiles: the incoming page's during a
// transition, the current page's otherwise.
func (p *Presenter) backdrop() color.Color {
	page := p.nav.Current()
	if tr, ok := p.nav.Transition(); ok {
		page = tr.To
	}
	if c := p.pages.Backdrop(page); c != nil {
		return c
	}
	return color.Black
}

// drawTile draws the face of card that currently faces the viewer, squeezed
// horizontally by the cosine of its rotation about the vertical axis. It
// reports whether anything was drawn.
func drawTile(screen *ebiten.Image, card *Card, faces TileFaces, shape GridShape, origin Vec2) bool {
	face := faces.Front
	if card.ShowingBack() {
		face = faces.Back
	}
	if face.Empty() {
		return false
	}
	img, ok := face.Image.(*ebiten.Image)
	if !ok {
		return false
	}

	rad := card.Angle() * math.Pi / 180
	squeeze := math.Abs(math.Cos(rad))
	if squeeze < 1e-3 {
		return false
	}

	src := face.Src
	sub := img.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	if card.Angle() != 0 {
		op.GeoM.Translate(-src.Width/2, 0)
		op.GeoM.Scale(squeeze, 1)
		op.GeoM.Translate(src.Width/2, 0)
		shade := float32(1 - edgeShade*math.Abs(math.Sin(rad)))
		op.ColorScale.Scale(shade, shade, shade, 1)
	}
	dst := shape.TileRect(card.Row, card.Col)
	op.GeoM.Translate(origin.X+dst.X, origin.Y+dst.Y)
	screen.DrawImage(sub, &op)
	return true
}
