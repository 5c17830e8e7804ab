// Package flipdeck renders a small multi-page presentation for [Ebitengine]
// as a grid of independently timed flip tiles.
//
// Every page change rotates each tile of a viewport-covering grid: the front
// face shows the old page, the back face the new one, and per-tile delays
// and durations make the flip sweep across the screen instead of happening
// all at once.
//
// # Quick start
//
// The simplest way to get started is [NewDeck] and [Run]:
//
//	p, win, err := flipdeck.NewDeck(flipdeck.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := flipdeck.Run(p, win); err != nil {
//		log.Fatal(err)
//	}
//
// For your own page artwork implement [ImageProvider] and pass it to
// [NewPresenter]. [Presenter] implements [ebiten.Game].
//
// # Pieces
//
// [ComputeGrid] sizes square tiles so the grid covers the viewport.
// [Stagger] and [TileTiming] derive each tile's delay and duration from its
// coordinates alone, so a given grid always sweeps the same way. [TileGrid]
// holds the tiles and bumps its generation on every rebuild. [FacePainter]
// maps tile faces onto sub-rectangles of whole-page images. [Navigator] is
// the one state machine that starts, queues or drops page changes, and
// [InputAggregator] turns keys, wheel, touch and clicks into requests on it.
//
// # Timing
//
// All timers run on a [Scheduler] advanced by the game loop. A timer
// belonging to a transition checks the grid generation it was created
// under, so a resize that rebuilds the grid cancels the transition safely.
//
// # Reduced motion
//
// With [Presenter.SetReducedMotion] the flip is replaced by a crossfade of
// the whole page. Queuing and no-op rules are identical.
//
// [Ebitengine]: https://ebitengine.org
package flipdeck
