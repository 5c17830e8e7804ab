package flipdeck

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// --- Constants ---

const (
	wheelThreshold   = 40.0                   // pixels of accumulated wheel delta per navigation
	wheelQuietPeriod = 160 * time.Millisecond // accumulator resets after this long without wheel input
	wheelLinePixels  = 40.0                   // pixel equivalent of one wheel line
	wheelPagePixels  = 800.0                  // page-mode fallback before a viewport is known
	swipeMinDistance = 50.0                   // vertical travel required for a swipe
	tapMaxDistance   = 10.0                   // movement below this on both axes is a tap
	clickSuppression = 360 * time.Millisecond // clicks ignored after a classified touch
)

// Key identifies a navigation key.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyPageDown
	KeyPageUp
)

// ParseKey maps a key name ("ArrowDown", "PageUp", ...) to a Key.
func ParseKey(name string) Key {
	switch name {
	case "ArrowDown":
		return KeyArrowDown
	case "ArrowUp":
		return KeyArrowUp
	case "PageDown":
		return KeyPageDown
	case "PageUp":
		return KeyPageUp
	default:
		return KeyUnknown
	}
}

// WheelMode is the unit of a wheel delta.
type WheelMode uint8

const (
	WheelPixel WheelMode = iota // delta is in pixels
	WheelLine                   // delta is in lines
	WheelPage                   // delta is in pages
)

// ParseWheelMode maps "pixel", "line" or "page" to a WheelMode. Empty means
// pixel.
func ParseWheelMode(name string) (WheelMode, error) {
	switch strings.ToLower(name) {
	case "", "pixel":
		return WheelPixel, nil
	case "line":
		return WheelLine, nil
	case "page":
		return WheelPage, nil
	default:
		return WheelPixel, fmt.Errorf("flipdeck: unknown wheel mode %q", name)
	}
}

// ClickPolicy controls whether clicks advance the deck.
type ClickPolicy uint8

const (
	ClickAlways    ClickPolicy = iota // every click advances
	ClickTouchOnly                    // clicks advance only once touch input has been seen
	ClickNever                        // clicks never advance
)

// String returns the config name of the policy.
func (p ClickPolicy) String() string {
	switch p {
	case ClickTouchOnly:
		return "touch"
	case ClickNever:
		return "never"
	default:
		return "always"
	}
}

// ParseClickPolicy maps "always", "touch" or "never" to a ClickPolicy. Empty
// means always.
func ParseClickPolicy(name string) (ClickPolicy, error) {
	switch strings.ToLower(name) {
	case "", "always":
		return ClickAlways, nil
	case "touch":
		return ClickTouchOnly, nil
	case "never":
		return ClickNever, nil
	default:
		return ClickAlways, fmt.Errorf("flipdeck: unknown click policy %q", name)
	}
}

// Requester accepts directional navigation requests. *Navigator implements it.
type Requester interface {
	Request(dir Direction) Outcome
}

// WheelAccumulator turns many small wheel deltas into one decision.
type WheelAccumulator struct {
	Sum   float64
	reset *Timer
}

// ResetTimerActive reports whether the quiet-period reset is scheduled.
func (w *WheelAccumulator) ResetTimerActive() bool { return w.reset.Active() }

func (w *WheelAccumulator) clear() {
	w.Sum = 0
	w.reset.Stop()
	w.reset = nil
}

// InputAggregator normalizes keyboard, wheel, touch and click input into
// requests on a single Requester, so the same queuing rules apply to every
// source.
type InputAggregator struct {
	nav    Requester
	sched  *Scheduler
	policy ClickPolicy

	wheel      WheelAccumulator
	pageHeight float64

	touchActive bool
	touchStart  Vec2
	touchSeen   bool
	suppress    *Timer
}

// NewInputAggregator creates an aggregator feeding nav. Timers for the wheel
// quiet period and click suppression run on sched.
func NewInputAggregator(nav Requester, sched *Scheduler, policy ClickPolicy) *InputAggregator {
	return &InputAggregator{nav: nav, sched: sched, policy: policy, pageHeight: wheelPagePixels}
}

// SetPageHeight sets the pixel equivalent of a page-mode wheel delta.
func (a *InputAggregator) SetPageHeight(h float64) {
	if h > 0 {
		a.pageHeight = h
	}
}

// SetClickPolicy replaces the click policy.
func (a *InputAggregator) SetClickPolicy(p ClickPolicy) { a.policy = p }

// Accumulator returns the wheel accumulator's sum and whether its reset timer
// is running.
func (a *InputAggregator) Accumulator() (sum float64, resetActive bool) {
	return a.wheel.Sum, a.wheel.ResetTimerActive()
}

// ClickSuppressed reports whether clicks are currently swallowed after a
// touch gesture.
func (a *InputAggregator) ClickSuppressed() bool { return a.suppress.Active() }

// Key handles a key press. It reports whether the key is a navigation key;
// such keys are consumed whether or not the request is accepted.
func (a *InputAggregator) Key(k Key) bool {
	switch k {
	case KeyArrowDown, KeyPageDown:
		a.nav.Request(DirForward)
		return true
	case KeyArrowUp, KeyPageUp:
		a.nav.Request(DirBackward)
		return true
	default:
		return false
	}
}

// Wheel adds a vertical wheel delta. Positive deltas scroll down (forward).
func (a *InputAggregator) Wheel(delta float64, mode WheelMode) {
	switch mode {
	case WheelLine:
		delta *= wheelLinePixels
	case WheelPage:
		delta *= a.pageHeight
	}
	if delta == 0 {
		return
	}

	a.wheel.Sum += delta
	a.wheel.reset.Stop()
	a.wheel.reset = a.sched.After(wheelQuietPeriod, func() {
		a.wheel.Sum = 0
		a.wheel.reset = nil
	})

	if math.Abs(a.wheel.Sum) < wheelThreshold {
		return
	}
	dir := DirForward
	if a.wheel.Sum < 0 {
		dir = DirBackward
	}
	a.wheel.clear()
	a.nav.Request(dir)
}

// TouchStart records the start of a touch. touches is the number of touches
// active after this one began; anything but 1 cancels gesture tracking.
func (a *InputAggregator) TouchStart(x, y float64, touches int) {
	a.touchSeen = true
	if touches != 1 {
		a.touchActive = false
		return
	}
	a.touchActive = true
	a.touchStart = Vec2{X: x, Y: y}
}

// TouchEnd classifies the gesture that ended at (x, y). changed is the number
// of touches that ended together; only single-touch gestures are recognized.
// A mostly-vertical swipe longer than 50px navigates (moving the finger up
// goes forward); a touch that moved less than 10px on both axes is a tap and
// goes forward. Either classification suppresses clicks for 360ms.
func (a *InputAggregator) TouchEnd(x, y float64, changed int) {
	if !a.touchActive || changed != 1 {
		a.touchActive = false
		return
	}
	a.touchActive = false

	dx := a.touchStart.X - x
	dy := a.touchStart.Y - y
	adx, ady := math.Abs(dx), math.Abs(dy)

	var dir Direction
	switch {
	case ady > adx && ady > swipeMinDistance:
		dir = DirForward
		if dy < 0 {
			dir = DirBackward
		}
	case adx < tapMaxDistance && ady < tapMaxDistance:
		dir = DirForward
	default:
		return
	}

	a.suppressClicks()
	a.nav.Request(dir)
}

// TouchCancel drops the gesture in progress.
func (a *InputAggregator) TouchCancel() { a.touchActive = false }

func (a *InputAggregator) suppressClicks() {
	a.suppress.Stop()
	a.suppress = a.sched.After(clickSuppression, func() { a.suppress = nil })
}

// Click handles a primary click. It requests forward unless a touch gesture
// was just classified or the click policy forbids it.
func (a *InputAggregator) Click() {
	if a.suppress.Active() {
		return
	}
	switch a.policy {
	case ClickNever:
		return
	case ClickTouchOnly:
		if !a.touchSeen {
			return
		}
	}
	a.nav.Request(DirForward)
}
