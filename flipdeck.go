package flipdeck

import "errors"

// ErrNoPages is returned when a deck or presenter is configured without pages.
var ErrNoPages = errors.New("flipdeck: deck has no pages")

// Vec2 is a 2D vector used for offsets and positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Direction is a navigation intent produced by the input aggregator.
type Direction uint8

const (
	DirNone     Direction = iota // no request
	DirForward                   // next page
	DirBackward                  // previous page
)

// String returns a lower-case name for the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// step returns the index delta for the direction.
func (d Direction) step() int {
	switch d {
	case DirForward:
		return 1
	case DirBackward:
		return -1
	default:
		return 0
	}
}

// NoPage marks an absent face (a tile at rest has no back face).
const NoPage = -1
