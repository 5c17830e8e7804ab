package flipdeck

import (
	"image"
	"image/color"
	"time"
)

// fakeImage stands in for a rendered page without touching the GPU.
type fakeImage struct {
	page, w, h  int
	deallocated bool
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *fakeImage) Deallocate()             { f.deallocated = true }

// fakeProvider records every render call.
type fakeProvider struct {
	renders  []*fakeImage
	backdrop bool
}

func (p *fakeProvider) Render(page, w, h int) ImageHandle {
	img := &fakeImage{page: page, w: w, h: h}
	p.renders = append(p.renders, img)
	return img
}

// backdropProvider is a fakeProvider that also supplies backdrop colors.
type backdropProvider struct {
	fakeProvider
}

func (p *backdropProvider) Backdrop(page int) color.Color {
	return color.RGBA{R: uint8(page), A: 255}
}

// recordingSink collects navigation events.
type recordingSink struct {
	events []NavigationEvent
}

func (s *recordingSink) EmitNavigation(e NavigationEvent) {
	s.events = append(s.events, e)
}

func (s *recordingSink) types() []NavEventType {
	out := make([]NavEventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

// navFixture is a navigator wired to a real grid, painter and scheduler over
// fake page images.
type navFixture struct {
	grid    *TileGrid
	pages   *PageCache
	painter *FacePainter
	sched   *Scheduler
	nav     *Navigator
	sink    *recordingSink
}

func newNavFixture(pages int, policy NavPolicy) *navFixture {
	f := &navFixture{
		grid:  NewTileGrid(),
		sched: NewScheduler(),
		sink:  &recordingSink{},
	}
	shape := ComputeGrid(1280, 720)
	f.grid.Apply(shape, true)
	f.pages = NewPageCache(&fakeProvider{}, pages)
	f.pages.Resize(int(shape.GridWidth), int(shape.GridHeight))
	f.painter = NewFacePainter(f.grid, f.pages)
	f.painter.Paint(0, NoPage)
	f.nav = NewNavigator(pages, f.grid, f.painter, f.sched, policy)
	f.nav.SetEventSink(f.sink)
	return f
}

// advance steps tweens and timers together in frame-sized increments, the
// way Presenter.step does.
func (f *navFixture) advance(d time.Duration) {
	const frame = time.Second / 60
	for d > 0 {
		dt := min(d, frame)
		f.grid.Advance(float32(dt.Seconds()))
		f.nav.Advance(float32(dt.Seconds()))
		f.sched.Advance(dt)
		d -= dt
	}
}

// flipLength is the time a flip takes to complete on the fixture's grid.
func (f *navFixture) flipLength() time.Duration {
	var longest time.Duration
	for _, t := range f.grid.Tiles() {
		longest = max(longest, t.Delay()+t.Duration())
	}
	return longest + completionGrace
}
