package flipdeck

import "math"

// Target tile size interpolation. Viewports whose short side is at or below
// minShortSide get minTileSize tiles; at or above maxShortSide, maxTileSize.
const (
	minTileSize  = 64
	maxTileSize  = 256
	minShortSide = 600
	maxShortSide = 1400
)

// GridShape describes how square tiles cover a viewport. GridWidth and
// GridHeight are never smaller than the viewport; the surplus is split around
// the viewport by Offset.
type GridShape struct {
	Cols, Rows            int
	TileWidth, TileHeight float64
	GridWidth, GridHeight float64

	// ViewportWidth and ViewportHeight are the (defaulted) viewport the
	// shape was computed for.
	ViewportWidth, ViewportHeight float64
}

// jsRound rounds half up like the browser's Math.round.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

// sanitizeViewport treats zero or negative dimensions as 1px.
func sanitizeViewport(w, h int) (float64, float64) {
	return float64(max(w, 1)), float64(max(h, 1))
}

// TargetTileSize maps the viewport's short side linearly from
// [600, 1400] onto [64, 256], clamped at both ends.
func TargetTileSize(w, h int) int {
	fw, fh := sanitizeViewport(w, h)
	short := math.Min(fw, fh)
	ratio := (short - minShortSide) / math.Max(1, maxShortSide-minShortSide)
	t := math.Min(1, math.Max(0, ratio))
	return int(jsRound(minTileSize + (maxTileSize-minTileSize)*t))
}

// ComputeGrid derives the tile grid for a viewport of w×h pixels. Tiles are
// square and the grid always covers the viewport.
func ComputeGrid(w, h int) GridShape {
	fw, fh := sanitizeViewport(w, h)
	target := float64(TargetTileSize(w, h))

	approxCols := math.Max(1, jsRound(fw/target))
	approxRows := math.Max(1, jsRound(fh/target))
	tile := math.Max(1, math.Ceil(math.Max(fw/approxCols, fh/approxRows)))

	cols := int(math.Max(1, math.Ceil(fw/tile)))
	rows := int(math.Max(1, math.Ceil(fh/tile)))

	return GridShape{
		Cols:           cols,
		Rows:           rows,
		TileWidth:      tile,
		TileHeight:     tile,
		GridWidth:      tile * float64(cols),
		GridHeight:     tile * float64(rows),
		ViewportWidth:  fw,
		ViewportHeight: fh,
	}
}

// Count returns the number of tiles in the grid.
func (g GridShape) Count() int {
	return g.Cols * g.Rows
}

// SameTiling reports whether both shapes have the same column and row count.
// Shapes that differ only in pixel size are a rescale, not a rebuild.
func (g GridShape) SameTiling(o GridShape) bool {
	return g.Cols == o.Cols && g.Rows == o.Rows
}

// Offset returns the position at which the grid is drawn so that its surplus
// over the viewport is split evenly on both sides. Both components are <= 0.
func (g GridShape) Offset() Vec2 {
	overflowX := math.Max(0, g.GridWidth-g.ViewportWidth)
	overflowY := math.Max(0, g.GridHeight-g.ViewportHeight)
	return Vec2{
		X: -math.Floor(overflowX / 2),
		Y: -math.Floor(overflowY / 2),
	}
}

// TileRect returns the tile's rectangle in grid space.
func (g GridShape) TileRect(row, col int) Rect {
	return Rect{
		X:      float64(col) * g.TileWidth,
		Y:      float64(row) * g.TileHeight,
		Width:  g.TileWidth,
		Height: g.TileHeight,
	}
}
