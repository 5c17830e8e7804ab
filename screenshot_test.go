package flipdeck

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestScreenshotName(t *testing.T) {
	tests := []struct {
		page  int
		label string
		want  string
	}{
		{0, "hello", "20260101_120000_p1_hello.png"},
		{2, "after-flip", "20260101_120000_p3_after-flip.png"},
		{0, "page.01", "20260101_120000_p1_page.01.png"},
		{1, "has spaces", "20260101_120000_p2_has_spaces.png"},
		{0, "path/to/thing", "20260101_120000_p1_path_to_thing.png"},
		{0, "back\\slash", "20260101_120000_p1_back_slash.png"},
		{0, "special!@#$%", "20260101_120000_p1_special_____.png"},
		{4, "", "20260101_120000_p5_unlabeled.png"},
		{0, "   ", "20260101_120000_p1_unlabeled.png"},
		{0, "MixedCase123", "20260101_120000_p1_MixedCase123.png"},
	}
	for _, tt := range tests {
		got := screenshotName("20260101_120000", tt.page, tt.label)
		if got != tt.want {
			t.Errorf("screenshotName(page %d, %q) = %q, want %q", tt.page, tt.label, got, tt.want)
		}
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := savePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if c := color.NRGBAModel.Convert(got.At(1, 2)).(color.NRGBA); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("pixel = %+v", c)
	}

	if err := savePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	p, _ := newTestPresenter(t, Options{})
	p.Screenshot("a")
	p.Screenshot("b")
	p.Screenshot("c")
	if len(p.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(p.screenshotQueue))
	}
	if p.screenshotQueue[0] != "a" || p.screenshotQueue[1] != "b" || p.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", p.screenshotQueue)
	}
}

func TestScreenshotDirOption(t *testing.T) {
	p, _ := newTestPresenter(t, Options{ScreenshotDir: "out"})
	if p.ScreenshotDir != "out" {
		t.Errorf("ScreenshotDir = %q, want %q", p.ScreenshotDir, "out")
	}
}
