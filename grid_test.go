package flipdeck

import (
	"math"
	"testing"
	"time"
)

func newTestGrid(w, h int) *TileGrid {
	g := NewTileGrid()
	g.Apply(ComputeGrid(w, h), true)
	return g
}

func TestTileGridRowMajor(t *testing.T) {
	g := newTestGrid(1280, 720)
	shape := g.Shape()
	if g.Len() != shape.Cols*shape.Rows {
		t.Fatalf("Len() = %d, want %d", g.Len(), shape.Cols*shape.Rows)
	}
	for i, tile := range g.Tiles() {
		if tile.Row != i/shape.Cols || tile.Col != i%shape.Cols {
			t.Fatalf("tile %d at (%d,%d), want (%d,%d)", i, tile.Row, tile.Col, i/shape.Cols, i%shape.Cols)
		}
		delay, duration := TileTiming(tile.Row, tile.Col, shape.Cols)
		if tile.DelayMs != delay || tile.DurationMs != duration {
			t.Fatalf("tile %d timing = (%d,%d), want (%d,%d)", i, tile.DelayMs, tile.DurationMs, delay, duration)
		}
		if tile.Delay() != time.Duration(delay)*time.Millisecond {
			t.Fatalf("tile %d Delay() = %v", i, tile.Delay())
		}
	}
}

func TestTileGridGeneration(t *testing.T) {
	g := NewTileGrid()
	if g.Generation() != 0 {
		t.Fatalf("new grid generation = %d, want 0", g.Generation())
	}

	if !g.Apply(ComputeGrid(1280, 720), false) {
		t.Error("first Apply should build")
	}
	if g.Generation() != 1 {
		t.Errorf("generation = %d, want 1", g.Generation())
	}

	// Same column and row count: rescale only.
	if g.Apply(ComputeGrid(1275, 715), false) {
		t.Error("Apply with the same tiling should not rebuild")
	}
	if g.Generation() != 1 {
		t.Errorf("generation = %d, want 1 after rescale", g.Generation())
	}
	if g.Shape().ViewportWidth != 1275 {
		t.Errorf("shape not updated on rescale: viewport width %v", g.Shape().ViewportWidth)
	}

	if !g.Apply(ComputeGrid(1920, 1080), false) {
		t.Error("Apply with a new tiling should rebuild")
	}
	if g.Generation() != 2 {
		t.Errorf("generation = %d, want 2", g.Generation())
	}

	if !g.Apply(ComputeGrid(1920, 1080), true) {
		t.Error("forced Apply should rebuild")
	}
	if g.Generation() != 3 {
		t.Errorf("generation = %d, want 3", g.Generation())
	}
}

func TestTileGridRebuildReplacesTiles(t *testing.T) {
	g := newTestGrid(1280, 720)
	g.startFlip(1)
	g.Apply(ComputeGrid(400, 800), false)
	if g.Len() != 6*12 {
		t.Fatalf("Len() = %d, want 72", g.Len())
	}
	if g.Animating() {
		t.Error("rebuilt grid should have no flipped cards")
	}
}

func TestTileGridStartFlip(t *testing.T) {
	g := newTestGrid(1280, 720)
	longest := g.startFlip(1)

	var want time.Duration
	for i, tile := range g.Tiles() {
		want = max(want, tile.Delay()+tile.Duration())
		c := g.Card(i)
		if !c.Flipped {
			t.Fatalf("card %d not flipped", i)
		}
		delay, duration := c.Timing()
		if delay != tile.Delay() || duration != tile.Duration() {
			t.Fatalf("card %d timing = (%v,%v), want (%v,%v)", i, delay, duration, tile.Delay(), tile.Duration())
		}
	}
	if longest != want {
		t.Errorf("startFlip() = %v, want %v", longest, want)
	}
	if !g.Animating() {
		t.Error("Animating() = false after startFlip")
	}

	g.resetCards()
	for i := 0; i < g.Len(); i++ {
		c := g.Card(i)
		delay, duration := c.Timing()
		if c.Flipped || delay != 0 || duration != 0 || c.Angle() != 0 {
			t.Fatalf("card %d not reset: flipped=%v delay=%v duration=%v angle=%v",
				i, c.Flipped, delay, duration, c.Angle())
		}
	}
	if g.Animating() {
		t.Error("Animating() = true after resetCards")
	}
}

func TestCardRotation(t *testing.T) {
	tests := []struct {
		name string
		sign float64
		want float64
	}{
		{"forward", 1, 180},
		{"backward", -1, -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(640, 480)
			g.startFlip(tt.sign)
			c := g.Card(0)

			// Still within the delay: no rotation yet.
			if c.DelayMs > 0 {
				g.Advance(float32(c.DelayMs) / 2000)
				if c.Angle() != 0 {
					t.Errorf("angle during delay = %v, want 0", c.Angle())
				}
			}

			for i := 0; i < 20; i++ {
				g.Advance(0.1)
			}
			if math.Abs(c.Angle()-tt.want) > 0.5 {
				t.Errorf("final angle = %v, want %v", c.Angle(), tt.want)
			}
			if !c.ShowingBack() {
				t.Error("ShowingBack() = false after a full flip")
			}
		})
	}
}

func TestCardAtRestShowsFront(t *testing.T) {
	g := newTestGrid(640, 480)
	g.Advance(1)
	c := g.Card(0)
	if c.Angle() != 0 || c.ShowingBack() {
		t.Errorf("card at rest: angle=%v showingBack=%v", c.Angle(), c.ShowingBack())
	}
}
