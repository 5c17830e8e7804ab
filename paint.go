package flipdeck

// FaceSource is a declarative paint instruction for one face of a tile: the
// page image and the part of it the face shows. A zero FaceSource is a
// cleared face.
type FaceSource struct {
	Image ImageHandle
	Page  int

	// Offset is the background offset (-col*tileWidth, -row*tileHeight) of
	// the page image relative to the tile.
	Offset Vec2

	// Src is the same region expressed as a rectangle in image space.
	Src Rect
}

// Empty reports whether the face shows nothing.
func (f FaceSource) Empty() bool { return f.Image == nil }

// TileFaces holds the front and back paint instructions for one tile.
type TileFaces struct {
	Front, Back FaceSource
}

// FacePainter maps every tile's faces onto sub-rectangles of whole-page
// images. It keeps the last painted pair so a rescale can repaint with new
// metrics.
type FacePainter struct {
	grid  *TileGrid
	pages *PageCache
	faces []TileFaces
	front int
	back  int
}

// NewFacePainter creates a painter over grid and pages. Nothing is painted
// until Paint is called.
func NewFacePainter(grid *TileGrid, pages *PageCache) *FacePainter {
	return &FacePainter{grid: grid, pages: pages, front: NoPage, back: NoPage}
}

// Paint sets every tile's front face to page front and its back face to page
// back. Passing NoPage for back clears the back faces.
func (p *FacePainter) Paint(front, back int) {
	p.front, p.back = front, back
	shape := p.grid.Shape()
	tiles := p.grid.Tiles()
	if cap(p.faces) < len(tiles) {
		p.faces = make([]TileFaces, len(tiles))
	}
	p.faces = p.faces[:len(tiles)]

	frontImg := p.pages.Image(front)
	var backImg ImageHandle
	if back != NoPage {
		backImg = p.pages.Image(back)
	}
	for i, t := range tiles {
		p.faces[i].Front = faceFor(frontImg, front, shape, t)
		if backImg == nil {
			p.faces[i].Back = FaceSource{}
		} else {
			p.faces[i].Back = faceFor(backImg, back, shape, t)
		}
	}
}

// Repaint repeats the last Paint against the grid's current shape.
func (p *FacePainter) Repaint() {
	if p.front == NoPage {
		return
	}
	p.Paint(p.front, p.back)
}

// Faces returns the paint instructions in tile order. The returned slice MUST
// NOT be mutated.
func (p *FacePainter) Faces() []TileFaces { return p.faces }

// Painted returns the pages last passed to Paint.
func (p *FacePainter) Painted() (front, back int) { return p.front, p.back }

func faceFor(img ImageHandle, page int, shape GridShape, t Tile) FaceSource {
	if img == nil {
		return FaceSource{}
	}
	src := shape.TileRect(t.Row, t.Col)
	return FaceSource{
		Image:  img,
		Page:   page,
		Offset: Vec2{X: -src.X, Y: -src.Y},
		Src:    src,
	}
}
