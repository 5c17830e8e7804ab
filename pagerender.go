package flipdeck

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// PageStyle describes how the default renderer draws a page.
type PageStyle struct {
	Title    string
	Subtitle string // lines separated by "\n"
	Gradient [2]colorful.Color
	Accent   colorful.Color
	Text     colorful.Color
}

// accentCircle is a translucent disc placed relative to the page size.
type accentCircle struct {
	cx, cy  float64 // fraction of width / height
	radius  float64 // fraction of the short side
	opacity float64
}

var accentCircles = [...]accentCircle{
	{cx: 0.84, cy: 0.2, radius: 0.2, opacity: 0.16},
	{cx: 0.16, cy: 0.76, radius: 0.28, opacity: 0.12},
}

const (
	subtitleOpacity = 0.82
	titleBaseline   = 0.52 // fraction of height
)

// PageRenderer is the default ImageProvider. It draws a diagonal gradient,
// two accent circles, a centered title and a subtitle for each page.
type PageRenderer struct {
	styles []PageStyle
	title  *text.GoTextFaceSource
	body   *text.GoTextFaceSource
	white  *ebiten.Image
}

// NewPageRenderer creates a renderer for styles using the Go fonts.
func NewPageRenderer(styles []PageStyle) (*PageRenderer, error) {
	if len(styles) == 0 {
		return nil, ErrNoPages
	}
	title, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("flipdeck: failed to parse title font: %w", err)
	}
	body, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("flipdeck: failed to parse body font: %w", err)
	}
	return &PageRenderer{styles: styles, title: title, body: body}, nil
}

// Pages returns the number of page styles.
func (r *PageRenderer) Pages() int { return len(r.styles) }

// Backdrop returns the first gradient stop of page.
func (r *PageRenderer) Backdrop(page int) color.Color {
	return r.styles[page].Gradient[0].Clamped()
}

// Render draws page at width×height.
func (r *PageRenderer) Render(page, width, height int) ImageHandle {
	st := r.styles[page]
	img := ebiten.NewImage(width, height)
	w, h := float64(width), float64(height)
	short := math.Min(w, h)

	r.drawGradient(img, st.Gradient, w, h)
	for _, c := range accentCircles {
		vector.DrawFilledCircle(img,
			float32(math.Round(w*c.cx)), float32(math.Round(h*c.cy)),
			float32(math.Round(short*c.radius)),
			withOpacity(st.Accent, c.opacity), true)
	}

	titleSize := math.Max(48, math.Round(short*0.12))
	subSize := math.Max(18, math.Round(short*0.04))
	titleY := math.Round(h * titleBaseline)
	r.drawLine(img, r.title, st.Title, titleSize, w/2, titleY, st.Text, 1)

	if st.Subtitle != "" {
		y := math.Round(titleY + subSize*1.4)
		for i, line := range strings.Split(st.Subtitle, "\n") {
			if i > 0 {
				y += math.Round(subSize * 1.2)
			}
			r.drawLine(img, r.body, line, subSize, w/2, y, st.Text, subtitleOpacity)
		}
	}
	return img
}

// drawGradient fills img with a top-left to bottom-right two-stop gradient.
func (r *PageRenderer) drawGradient(img *ebiten.Image, stops [2]colorful.Color, w, h float64) {
	if r.white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		r.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	mid := stops[0].BlendRgb(stops[1], 0.5)
	corners := [4]struct {
		x, y float64
		c    colorful.Color
	}{
		{0, 0, stops[0]},
		{w, 0, mid},
		{0, h, mid},
		{w, h, stops[1]},
	}
	vs := make([]ebiten.Vertex, 0, 4)
	for _, k := range corners {
		c := k.c.Clamped()
		vs = append(vs, ebiten.Vertex{
			DstX: float32(k.x), DstY: float32(k.y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: 1,
		})
	}
	is := []uint16{0, 1, 2, 1, 3, 2}
	img.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{})
}

// drawLine draws s centered on x with its baseline at y.
func (r *PageRenderer) drawLine(img *ebiten.Image, src *text.GoTextFaceSource, s string, size, x, y float64, c colorful.Color, opacity float64) {
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.Clamped())
	op.ColorScale.ScaleAlpha(float32(opacity))
	text.Draw(img, s, face, op)
}

func withOpacity(c colorful.Color, opacity float64) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(opacity * 255))}
}
