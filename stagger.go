package flipdeck

import (
	"math"
	"time"
)

// Stagger timing constants. Together with Stagger these form a compatibility
// contract: the same grid must always sweep the same way.
const (
	maxDelayMs         = 250
	baseDurationMs     = 800
	durationSpreadMs   = 700
	durationSeedOffset = 999
)

// Stagger returns a deterministic pseudo-random value in [0, 1) for seed,
// using the trigonometric hash frac(sin(seed*12.9898)*43758.5453).
func Stagger(seed int) float64 {
	x := math.Sin(float64(seed)*12.9898) * 43758.5453
	return x - math.Floor(x)
}

// TileTiming returns the flip delay and duration in milliseconds for the tile
// at (row, col) in a grid cols wide.
func TileTiming(row, col, cols int) (delayMs, durationMs int) {
	seed := row*cols + col + 1
	delayMs = int(math.Floor(Stagger(seed) * maxDelayMs))
	durationMs = int(math.Floor(baseDurationMs + Stagger(seed+durationSeedOffset)*durationSpreadMs))
	return delayMs, durationMs
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
