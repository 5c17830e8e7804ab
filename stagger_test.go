package flipdeck

import (
	"math"
	"testing"
)

func TestStaggerRange(t *testing.T) {
	for seed := 0; seed < 5000; seed++ {
		s := Stagger(seed)
		if s < 0 || s >= 1 {
			t.Fatalf("Stagger(%d) = %v, want [0, 1)", seed, s)
		}
	}
}

func TestStaggerDeterministic(t *testing.T) {
	for _, seed := range []int{1, 2, 17, 999, 1000, 4321} {
		a, b := Stagger(seed), Stagger(seed)
		if a != b {
			t.Errorf("Stagger(%d) not deterministic: %v != %v", seed, a, b)
		}
	}
}

func TestStaggerZeroSeed(t *testing.T) {
	if got := Stagger(0); got != 0 {
		t.Errorf("Stagger(0) = %v, want 0", got)
	}
}

func TestStaggerFormula(t *testing.T) {
	for _, seed := range []int{1, 5, 113} {
		x := math.Sin(float64(seed)*12.9898) * 43758.5453
		want := x - math.Floor(x)
		if got := Stagger(seed); got != want {
			t.Errorf("Stagger(%d) = %v, want %v", seed, got, want)
		}
	}
}

func TestTileTimingBounds(t *testing.T) {
	const cols = 14
	for row := 0; row < 8; row++ {
		for col := 0; col < cols; col++ {
			delay, duration := TileTiming(row, col, cols)
			if delay < 0 || delay >= 250 {
				t.Errorf("tile (%d,%d) delay = %d, want [0, 250)", row, col, delay)
			}
			if duration < 800 || duration >= 1500 {
				t.Errorf("tile (%d,%d) duration = %d, want [800, 1500)", row, col, duration)
			}
		}
	}
}

func TestTileTimingSeeds(t *testing.T) {
	// Tile (r, c) uses seed r*cols+c+1 for its delay and seed+999 for its
	// duration.
	const cols = 11
	row, col := 3, 4
	seed := row*cols + col + 1

	delay, duration := TileTiming(row, col, cols)
	if want := int(math.Floor(Stagger(seed) * 250)); delay != want {
		t.Errorf("delay = %d, want %d", delay, want)
	}
	if want := int(math.Floor(800 + Stagger(seed+999)*700)); duration != want {
		t.Errorf("duration = %d, want %d", duration, want)
	}
}

func TestTileTimingGolden(t *testing.T) {
	// Reference timings produced by the browser's Math.sin for the same
	// formula. The raw stagger floats can differ in the last bits, but the
	// floored millisecond values must not.
	tests := []struct {
		seed     int
		delay    int
		duration int
	}{
		{1, 230, 1460},
		{2, 14, 932},
		{3, 139, 848},
		{4, 93, 1332},
		{5, 113, 992},
		{10, 242, 1181},
		{57, 56, 1118},
		{112, 11, 1462},
		{1000, 235, 1152},
		{4321, 29, 1053},
	}
	const cols = 100
	for _, tt := range tests {
		row, col := (tt.seed-1)/cols, (tt.seed-1)%cols
		delay, duration := TileTiming(row, col, cols)
		if delay != tt.delay || duration != tt.duration {
			t.Errorf("seed %d (%d,%d): timing = %d/%d, want %d/%d",
				tt.seed, row, col, delay, duration, tt.delay, tt.duration)
		}
	}
}

func TestTileTimingDependsOnlyOnPosition(t *testing.T) {
	// The same linear index in the same grid always yields the same timing,
	// and different tiles are not all identical.
	d1, u1 := TileTiming(2, 5, 9)
	d2, u2 := TileTiming(2, 5, 9)
	if d1 != d2 || u1 != u2 {
		t.Fatalf("timing changed between calls: (%d,%d) vs (%d,%d)", d1, u1, d2, u2)
	}

	seen := make(map[[2]int]bool)
	for i := 0; i < 20; i++ {
		d, u := TileTiming(0, i, 20)
		seen[[2]int{d, u}] = true
	}
	if len(seen) < 10 {
		t.Errorf("only %d distinct timings across 20 tiles", len(seen))
	}
}
