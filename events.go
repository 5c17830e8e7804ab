package flipdeck

// NavEventType identifies what happened to a navigation request.
type NavEventType uint8

const (
	NavStarted   NavEventType = iota // a transition began
	NavQueued                        // request stored as the pending direction
	NavIgnored                       // request dropped (out of range or same page)
	NavFinished                      // a transition completed and the page changed
	NavAbandoned                     // a transition was cancelled by a grid rebuild
)

// String returns a lower-case name for the event type.
func (t NavEventType) String() string {
	switch t {
	case NavStarted:
		return "started"
	case NavQueued:
		return "queued"
	case NavIgnored:
		return "ignored"
	case NavFinished:
		return "finished"
	case NavAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// NavigationEvent describes a navigation outcome.
type NavigationEvent struct {
	Type       NavEventType
	Direction  Direction
	From, To   int
	Reduced    bool   // crossfade instead of flip
	Generation uint64 // tile grid generation the transition belongs to
}

// EventSink receives navigation events. Set one on a Presenter or Navigator
// to bridge them into another system such as an ECS world.
type EventSink interface {
	EmitNavigation(event NavigationEvent)
}
