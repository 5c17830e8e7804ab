package flipdeck

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageHandle is an opaque displayable image. *ebiten.Image is drawn as is;
// any other image.Image is uploaded to an *ebiten.Image once per render by
// PageCache. Handles that are neither can be painted but are not drawn.
type ImageHandle interface {
	Bounds() image.Rectangle
}

// ImageProvider renders a page into an image of exactly width×height pixels.
// Render must be pure: the same page and size always look the same.
type ImageProvider interface {
	Render(page, width, height int) ImageHandle
}

// BackdropProvider is optionally implemented by an ImageProvider to supply
// the color shown behind the tiles while a page is current or incoming.
type BackdropProvider interface {
	Backdrop(page int) color.Color
}

// deallocator is implemented by images that hold GPU memory.
type deallocator interface {
	Deallocate()
}

// PageCache renders every page once per grid pixel size and keeps the
// results until the size changes.
type PageCache struct {
	provider ImageProvider
	pages    int
	w, h     int
	images   []ImageHandle
	warned   bool
}

// NewPageCache creates an empty cache for pages pages.
func NewPageCache(provider ImageProvider, pages int) *PageCache {
	return &PageCache{provider: provider, pages: pages}
}

// Resize renders all pages at w×h unless the cache already holds that size.
// It reports whether pages were rendered.
func (c *PageCache) Resize(w, h int) bool {
	w, h = max(w, 1), max(h, 1)
	if c.images != nil && c.w == w && c.h == h {
		return false
	}
	c.release()
	c.w, c.h = w, h
	c.images = make([]ImageHandle, c.pages)
	for i := range c.images {
		c.images[i] = c.own(i, c.provider.Render(i, w, h))
	}
	logger.Debug("pages rendered", "pages", c.pages, "w", w, "h", h)
	return true
}

// own returns img in a drawable form. CPU images are copied to the GPU and
// the copy belongs to the cache.
func (c *PageCache) own(page int, img ImageHandle) ImageHandle {
	switch src := img.(type) {
	case *ebiten.Image:
		return src
	case image.Image:
		return ebiten.NewImageFromImage(src)
	default:
		if !c.warned {
			c.warned = true
			logger.Warn("page image is not drawable", "page", page, "type", fmt.Sprintf("%T", img))
		}
		return img
	}
}

func (c *PageCache) release() {
	for _, img := range c.images {
		if d, ok := img.(deallocator); ok {
			d.Deallocate()
		}
	}
	c.images = nil
}

// Image returns the cached image for page, or nil when the page is out of
// range or nothing has been rendered yet.
func (c *PageCache) Image(page int) ImageHandle {
	if page < 0 || page >= len(c.images) {
		return nil
	}
	return c.images[page]
}

// Size returns the pixel size the pages were last rendered at.
func (c *PageCache) Size() (int, int) { return c.w, c.h }

// Backdrop returns the provider's backdrop color for page, or nil when the
// provider does not supply one.
func (c *PageCache) Backdrop(page int) color.Color {
	if b, ok := c.provider.(BackdropProvider); ok && page >= 0 && page < c.pages {
		return b.Backdrop(page)
	}
	return nil
}
