package flipdeck

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flipEase is the easing curve for a single tile rotation.
var flipEase ease.TweenFunc = ease.InOutCubic

// Tile is one cell of the grid together with its stagger timing. Tiles are
// immutable; the grid replaces all of them at once when it rebuilds.
type Tile struct {
	Row, Col   int
	DelayMs    int
	DurationMs int
}

// Delay returns the tile's flip delay.
func (t Tile) Delay() time.Duration { return millis(t.DelayMs) }

// Duration returns the tile's flip duration.
func (t Tile) Duration() time.Duration { return millis(t.DurationMs) }

// Card is the animated state of one tile: whether it is flipped, the timing
// currently applied to its transition and its rotation angle in degrees.
type Card struct {
	Tile

	Flipped bool

	delay    time.Duration
	duration time.Duration
	wait     float32 // seconds of delay still to elapse
	tween    *gween.Tween
	angle    float64
}

// Angle returns the current rotation in degrees. It runs from 0 to +180 for
// forward flips and 0 to -180 for backward flips.
func (c *Card) Angle() float64 { return c.angle }

// ShowingBack reports whether the card has rotated past its edge.
func (c *Card) ShowingBack() bool { return c.angle > 90 || c.angle < -90 }

// Timing returns the transition delay and duration currently applied to the
// card. Both are zero at rest.
func (c *Card) Timing() (delay, duration time.Duration) { return c.delay, c.duration }

func (c *Card) flip(sign float64) {
	c.delay = c.Tile.Delay()
	c.duration = c.Tile.Duration()
	c.wait = float32(c.delay.Seconds())
	c.tween = gween.New(0, float32(180*sign), float32(c.duration.Seconds()), flipEase)
	c.angle = 0
	c.Flipped = true
}

func (c *Card) reset() {
	c.delay = 0
	c.duration = 0
	c.wait = 0
	c.tween = nil
	c.angle = 0
	c.Flipped = false
}

func (c *Card) update(dt float32) {
	if c.tween == nil {
		return
	}
	if c.wait > 0 {
		c.wait -= dt
		if c.wait > 0 {
			return
		}
		dt = -c.wait
		c.wait = 0
	}
	val, _ := c.tween.Update(dt)
	c.angle = float64(val)
}

// TileGrid holds the tiles for the current GridShape. The tile set is one
// versioned unit: every rebuild replaces all tiles and bumps Generation.
type TileGrid struct {
	shape GridShape
	tiles []Tile
	cards []Card
	gen   uint64
	built bool
}

// NewTileGrid creates an empty grid. Call Apply with force set to build it.
func NewTileGrid() *TileGrid {
	return &TileGrid{}
}

// Apply installs shape. Tiles are rebuilt when force is set, when the grid
// has never been built, or when the column or row count changed; otherwise
// only the pixel metrics change. Apply reports whether it rebuilt.
func (g *TileGrid) Apply(shape GridShape, force bool) bool {
	if g.built && !force && g.shape.SameTiling(shape) {
		g.shape = shape
		return false
	}
	g.shape = shape
	g.rebuild()
	return true
}

func (g *TileGrid) rebuild() {
	cols, rows := g.shape.Cols, g.shape.Rows
	tiles := make([]Tile, 0, cols*rows)
	cards := make([]Card, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			delay, duration := TileTiming(row, col, cols)
			t := Tile{Row: row, Col: col, DelayMs: delay, DurationMs: duration}
			tiles = append(tiles, t)
			cards = append(cards, Card{Tile: t})
		}
	}
	g.tiles = tiles
	g.cards = cards
	g.gen++
	g.built = true
	logger.Debug("grid rebuilt", "cols", cols, "rows", rows, "gen", g.gen)
}

// Shape returns the shape the grid was last applied with.
func (g *TileGrid) Shape() GridShape { return g.shape }

// Generation returns the rebuild counter. It starts at 0 and increments on
// every rebuild.
func (g *TileGrid) Generation() uint64 { return g.gen }

// Len returns the number of tiles.
func (g *TileGrid) Len() int { return len(g.tiles) }

// Tiles returns the tiles in row-major order. The returned slice MUST NOT be
// mutated.
func (g *TileGrid) Tiles() []Tile { return g.tiles }

// Card returns the animated state of tile i.
func (g *TileGrid) Card(i int) *Card { return &g.cards[i] }

// startFlip applies every tile's stagger timing, marks all cards flipped and
// returns the longest delay+duration.
func (g *TileGrid) startFlip(sign float64) time.Duration {
	var longest time.Duration
	for i := range g.cards {
		c := &g.cards[i]
		c.flip(sign)
		longest = max(longest, c.delay+c.duration)
	}
	return longest
}

// resetCards zeroes every card's transition timing and clears its flip.
func (g *TileGrid) resetCards() {
	for i := range g.cards {
		g.cards[i].reset()
	}
}

// Animating reports whether any card is flipped.
func (g *TileGrid) Animating() bool {
	for i := range g.cards {
		if g.cards[i].Flipped {
			return true
		}
	}
	return false
}

// Advance moves every card's rotation forward by dt seconds.
func (g *TileGrid) Advance(dt float32) {
	for i := range g.cards {
		g.cards[i].update(dt)
	}
}
