package flipdeck

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// completionGrace is added to the longest tile delay+duration before a
	// flip is finalized.
	completionGrace = 50 * time.Millisecond

	// fadeDuration is the length of each half of the reduced-motion
	// crossfade.
	fadeDuration = 360 * time.Millisecond
)

// fadeEase is the easing curve for the crossfade overlay.
var fadeEase ease.TweenFunc = ease.InOutSine

// State is the navigation state machine's state.
type State uint8

const (
	StateIdle      State = iota // no transition in flight
	StateAnimating              // a transition owns the view
)

// String returns a lower-case name for the state.
func (s State) String() string {
	if s == StateAnimating {
		return "animating"
	}
	return "idle"
}

// Outcome is the result of a navigation request.
type Outcome uint8

const (
	Ignored Outcome = iota // no-op: target out of range or equal to current
	Started                // a transition began
	Queued                 // stored as the pending direction
)

// String returns a lower-case name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Started:
		return "started"
	case Queued:
		return "queued"
	default:
		return "ignored"
	}
}

// NavigationState is a snapshot of the navigator.
type NavigationState struct {
	Current   int
	Animating bool
	Pending   Direction
}

// Transition describes the transition in flight.
type Transition struct {
	From, To   int
	Direction  Direction
	Sign       float64 // +1 when moving to a higher index, -1 otherwise
	Reduced    bool
	Generation uint64

	seq uint64
}

// NavPolicy configures how directions map to pages.
type NavPolicy struct {
	// Wrap maps forward past the last page to the first and backward past
	// the first page to the last. When false such requests are no-ops.
	Wrap bool
}

// overlay is the full-page image faded in by the reduced-motion path.
type overlay struct {
	page  int
	alpha float64
	tween *gween.Tween
}

// Navigator is the single state machine that serializes page changes. It
// accepts, queues or drops requests and drives the flip or crossfade for
// accepted ones. It is not safe for concurrent use; all calls must come from
// the game loop.
type Navigator struct {
	pages   int
	policy  NavPolicy
	reduced bool

	state  NavigationState
	active Transition
	seq    uint64

	grid    *TileGrid
	painter *FacePainter
	sched   *Scheduler
	sink    EventSink

	fade overlay
}

// NewNavigator creates a navigator over pages pages, idle on page 0.
func NewNavigator(pages int, grid *TileGrid, painter *FacePainter, sched *Scheduler, policy NavPolicy) *Navigator {
	return &Navigator{
		pages:   pages,
		policy:  policy,
		grid:    grid,
		painter: painter,
		sched:   sched,
		fade:    overlay{page: NoPage},
	}
}

// SetEventSink sets the receiver for navigation events. Pass nil to disable.
func (n *Navigator) SetEventSink(sink EventSink) { n.sink = sink }

// SetReducedMotion selects the crossfade path for transitions started from
// now on. A transition already in flight keeps its mode.
func (n *Navigator) SetReducedMotion(on bool) { n.reduced = on }

// ReducedMotion reports whether new transitions use the crossfade path.
func (n *Navigator) ReducedMotion() bool { return n.reduced }

// Pages returns the number of pages.
func (n *Navigator) Pages() int { return n.pages }

// Current returns the current page index.
func (n *Navigator) Current() int { return n.state.Current }

// Animating reports whether a transition is in flight.
func (n *Navigator) Animating() bool { return n.state.Animating }

// State returns the current state-machine state.
func (n *Navigator) State() State {
	if n.state.Animating {
		return StateAnimating
	}
	return StateIdle
}

// Snapshot returns a copy of the navigation state.
func (n *Navigator) Snapshot() NavigationState { return n.state }

// Transition returns the transition in flight, if any.
func (n *Navigator) Transition() (Transition, bool) {
	if !n.state.Animating {
		return Transition{}, false
	}
	return n.active, true
}

// Overlay returns the crossfade overlay's page and opacity. visible is false
// when no overlay is shown.
func (n *Navigator) Overlay() (page int, alpha float64, visible bool) {
	if n.fade.page == NoPage || n.fade.alpha <= 0 {
		return NoPage, 0, false
	}
	return n.fade.page, n.fade.alpha, true
}

// Request asks for one page in direction dir. While idle a valid request
// starts a transition. While animating it overwrites the pending direction,
// so only the last request made during a transition is replayed.
func (n *Navigator) Request(dir Direction) Outcome {
	if dir == DirNone {
		return Ignored
	}
	if n.state.Animating {
		n.state.Pending = dir
		n.emit(NavQueued, Transition{From: n.state.Current, To: n.active.To, Direction: dir})
		logger.Debug("navigation queued", "dir", dir, "current", n.state.Current)
		return Queued
	}
	target, ok := n.target(dir)
	if !ok {
		n.emit(NavIgnored, Transition{From: n.state.Current, To: n.state.Current, Direction: dir})
		logger.Debug("navigation ignored", "dir", dir, "current", n.state.Current)
		return Ignored
	}
	n.begin(target, dir)
	return Started
}

// GoTo starts a transition straight to index. It is a no-op while animating,
// when index is out of range or when it is already current.
func (n *Navigator) GoTo(index int) Outcome {
	if n.state.Animating || index < 0 || index >= n.pages || index == n.state.Current {
		return Ignored
	}
	dir := DirForward
	if index < n.state.Current {
		dir = DirBackward
	}
	n.begin(index, dir)
	return Started
}

func (n *Navigator) target(dir Direction) (int, bool) {
	next := n.state.Current + dir.step()
	if n.policy.Wrap && n.pages > 0 {
		next = (next + n.pages) % n.pages
	}
	if next < 0 || next >= n.pages || next == n.state.Current {
		return 0, false
	}
	return next, true
}

func (n *Navigator) begin(target int, dir Direction) {
	n.seq++
	sign := 1.0
	if target < n.state.Current {
		sign = -1
	}
	tr := Transition{
		From:       n.state.Current,
		To:         target,
		Direction:  dir,
		Sign:       sign,
		Reduced:    n.reduced,
		Generation: n.grid.Generation(),
		seq:        n.seq,
	}
	n.active = tr
	n.state.Animating = true
	n.emit(NavStarted, tr)
	logger.Debug("navigation started", "from", tr.From, "to", tr.To, "dir", dir, "reduced", tr.Reduced, "gen", tr.Generation)

	if tr.Reduced {
		n.beginFade(tr)
		return
	}
	n.beginFlip(tr)
}

func (n *Navigator) beginFlip(tr Transition) {
	n.painter.Paint(tr.From, tr.To)
	longest := n.grid.startFlip(tr.Sign)
	n.sched.After(longest+completionGrace, func() { n.finishFlip(tr) })
}

func (n *Navigator) finishFlip(tr Transition) {
	if !n.live(tr) {
		logger.Debug("stale flip completion", "to", tr.To, "gen", tr.Generation)
		return
	}
	n.settle(tr.To)
	n.release(tr)
}

func (n *Navigator) beginFade(tr Transition) {
	n.fade = overlay{page: tr.To, tween: gween.New(0, 1, float32(fadeDuration.Seconds()), fadeEase)}
	n.sched.After(fadeDuration, func() {
		if !n.live(tr) {
			return
		}
		n.settle(tr.To)
		n.fade.alpha = 1
		n.fade.tween = gween.New(1, 0, float32(fadeDuration.Seconds()), fadeEase)
		n.sched.After(fadeDuration, func() {
			if !n.live(tr) {
				return
			}
			n.fade = overlay{page: NoPage}
			n.release(tr)
		})
	})
}

// live reports whether tr is still the transition in flight on the current
// grid generation.
func (n *Navigator) live(tr Transition) bool {
	return n.state.Animating && n.active.seq == tr.seq && n.grid.Generation() == tr.Generation
}

// settle makes page current and paints it on every front face.
func (n *Navigator) settle(page int) {
	n.state.Current = page
	n.painter.Paint(page, NoPage)
	n.grid.resetCards()
}

// release returns to idle and replays the pending direction, if any.
func (n *Navigator) release(tr Transition) {
	n.state.Animating = false
	n.emit(NavFinished, tr)
	logger.Debug("navigation finished", "current", n.state.Current)
	if pending := n.state.Pending; pending != DirNone {
		n.state.Pending = DirNone
		n.Request(pending)
	}
}

// Abandon cancels the transition in flight without completing it. The
// current page is unchanged, the pending direction is dropped and any timer
// still scheduled for the transition becomes a no-op.
func (n *Navigator) Abandon() {
	if !n.state.Animating {
		return
	}
	tr := n.active
	n.state.Animating = false
	n.state.Pending = DirNone
	n.active = Transition{}
	n.fade = overlay{page: NoPage}
	n.emit(NavAbandoned, tr)
	logger.Debug("navigation abandoned", "from", tr.From, "to", tr.To, "gen", tr.Generation)
}

// Advance moves the crossfade overlay forward by dt seconds.
func (n *Navigator) Advance(dt float32) {
	if n.fade.tween == nil {
		return
	}
	val, done := n.fade.tween.Update(dt)
	n.fade.alpha = float64(val)
	if done {
		n.fade.tween = nil
	}
}

func (n *Navigator) emit(t NavEventType, tr Transition) {
	if n.sink == nil {
		return
	}
	n.sink.EmitNavigation(NavigationEvent{
		Type:       t,
		Direction:  tr.Direction,
		From:       tr.From,
		To:         tr.To,
		Reduced:    tr.Reduced,
		Generation: tr.Generation,
	})
}
