package flipdeck

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	synthKey syntheticKind = iota
	synthWheel
	synthTouchStart
	synthTouchEnd
	synthClick
)

// syntheticInput is one queued input event. Injected events go through the
// same InputAggregator as real input.
type syntheticInput struct {
	kind  syntheticKind
	key   Key
	delta float64
	mode  WheelMode
	x, y  float64
}

// InjectKey queues a key press. The event is consumed on the next frame.
func (p *Presenter) InjectKey(k Key) {
	p.injectQueue = append(p.injectQueue, syntheticInput{kind: synthKey, key: k})
}

// InjectWheel queues a vertical wheel delta.
func (p *Presenter) InjectWheel(delta float64, mode WheelMode) {
	p.injectQueue = append(p.injectQueue, syntheticInput{kind: synthWheel, delta: delta, mode: mode})
}

// InjectSwipe queues a single-finger touch from (fromX, fromY) to (toX, toY).
// Consumes two frames.
func (p *Presenter) InjectSwipe(fromX, fromY, toX, toY float64) {
	p.injectQueue = append(p.injectQueue,
		syntheticInput{kind: synthTouchStart, x: fromX, y: fromY},
		syntheticInput{kind: synthTouchEnd, x: toX, y: toY},
	)
}

// InjectTap queues a touch that starts and ends at (x, y).
func (p *Presenter) InjectTap(x, y float64) {
	p.InjectSwipe(x, y, x, y)
}

// InjectClick queues a primary click.
func (p *Presenter) InjectClick() {
	p.injectQueue = append(p.injectQueue, syntheticInput{kind: synthClick})
}

// processInjectedInput pops one injected event and feeds it to the input
// aggregator. Returns true if an event was consumed (real input is skipped
// for that frame).
func (p *Presenter) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case synthKey:
		p.input.Key(evt.key)
	case synthWheel:
		p.input.Wheel(evt.delta, evt.mode)
	case synthTouchStart:
		p.input.TouchStart(evt.x, evt.y, 1)
	case synthTouchEnd:
		p.input.TouchEnd(evt.x, evt.y, 1)
	case synthClick:
		p.input.Click()
	}
	return true
}
