package flipdeck

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures a Presenter.
type Options struct {
	// Provider renders page images. Required.
	Provider ImageProvider

	// Pages is the number of pages Provider can render. Must be >= 1.
	Pages int

	// Wrap makes navigation past either end wrap around.
	Wrap bool

	// Click controls whether clicks advance the deck.
	Click ClickPolicy

	// ReducedMotion selects the crossfade instead of the tile flip.
	ReducedMotion bool

	// ScreenshotDir is where Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
}

const defaultScreenshotDir = "screenshots"

// Presenter is the top-level object that owns the tile grid, page images,
// navigation state machine and input aggregation. It implements ebiten.Game.
type Presenter struct {
	grid    *TileGrid
	pages   *PageCache
	painter *FacePainter
	sched   *Scheduler
	nav     *Navigator
	input   *InputAggregator
	poller  inputPoller

	viewW, viewH int
	laidOut      bool

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir   string
	screenshotQueue []string

	injectQueue []syntheticInput
	testRunner  *TestRunner

	debug      bool
	showFPS    bool
	fpsImage   *ebiten.Image
	fpsElapsed float64
	fpsPrimed  bool
}

// NewPresenter wires a presenter from opts. The grid is built on the first
// SetViewport (or Layout) call.
func NewPresenter(opts Options) (*Presenter, error) {
	if opts.Provider == nil {
		return nil, errors.New("flipdeck: presenter needs an image provider")
	}
	if opts.Pages < 1 {
		return nil, ErrNoPages
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}

	p := &Presenter{
		grid:          NewTileGrid(),
		sched:         NewScheduler(),
		ScreenshotDir: dir,
	}
	p.pages = NewPageCache(opts.Provider, opts.Pages)
	p.painter = NewFacePainter(p.grid, p.pages)
	p.nav = NewNavigator(opts.Pages, p.grid, p.painter, p.sched, NavPolicy{Wrap: opts.Wrap})
	p.nav.SetReducedMotion(opts.ReducedMotion)
	p.input = NewInputAggregator(p.nav, p.sched, opts.Click)
	return p, nil
}

// Navigator returns the presenter's navigation state machine.
func (p *Presenter) Navigator() *Navigator { return p.nav }

// Input returns the presenter's input aggregator.
func (p *Presenter) Input() *InputAggregator { return p.input }

// Grid returns the presenter's tile grid.
func (p *Presenter) Grid() *TileGrid { return p.grid }

// Painter returns the presenter's face painter.
func (p *Presenter) Painter() *FacePainter { return p.painter }

// Scheduler returns the virtual clock that drives all timers.
func (p *Presenter) Scheduler() *Scheduler { return p.sched }

// SetEventSink forwards navigation events to sink.
func (p *Presenter) SetEventSink(sink EventSink) { p.nav.SetEventSink(sink) }

// SetReducedMotion is the motion-preference signal. It only affects
// transitions started after the call.
func (p *Presenter) SetReducedMotion(on bool) {
	if p.nav.ReducedMotion() != on {
		logger.Debug("motion preference changed", "reduced", on)
	}
	p.nav.SetReducedMotion(on)
}

// SetShowFPS toggles the FPS/state readout.
func (p *Presenter) SetShowFPS(on bool) { p.showFPS = on }

// Update processes input and advances animations and timers by one tick.
func (p *Presenter) Update() error {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	if !p.processInjectedInput() {
		p.poller.poll(p.input)
	}
	p.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// step advances tweens and then fires any timers that fall due within dt.
func (p *Presenter) step(dt time.Duration) {
	secs := float32(dt.Seconds())
	p.grid.Advance(secs)
	p.nav.Advance(secs)
	p.sched.Advance(dt)
	p.fpsElapsed += dt.Seconds()
}

// Layout reports the outside size as the logical screen size and feeds it to
// SetViewport.
func (p *Presenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.SetViewport(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// SetViewport is the viewport signal. Repeated calls with an unchanged size
// do nothing.
func (p *Presenter) SetViewport(w, h int) {
	if p.laidOut && w == p.viewW && h == p.viewH {
		return
	}
	first := !p.laidOut
	p.viewW, p.viewH = w, h
	p.laidOut = true
	p.applyLayout(first)
}

// applyLayout recomputes the grid for the current viewport. A changed tile
// count rebuilds the grid and abandons any transition in flight; a resize
// that keeps the tile count only rescales.
func (p *Presenter) applyLayout(force bool) {
	shape := ComputeGrid(p.viewW, p.viewH)
	if p.grid.Apply(shape, force) {
		p.nav.Abandon()
	}
	p.pages.Resize(int(shape.GridWidth), int(shape.GridHeight))
	p.input.SetPageHeight(shape.ViewportHeight)

	if p.nav.Animating() {
		p.painter.Repaint()
		return
	}
	p.grid.resetCards()
	p.painter.Paint(p.nav.Current(), NoPage)
}
