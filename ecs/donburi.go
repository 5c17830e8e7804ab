// Package ecs provides ECS adapters for flipdeck.
package ecs

import (
	"github.com/phanxgames/flipdeck"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for flipdeck navigation
// events. Subscribe to it in your ECS systems to react to page changes.
var NavigationEventType = events.NewEventType[flipdeck.NavigationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Navigation
// events are published to NavigationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) flipdeck.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitNavigation(event flipdeck.NavigationEvent) {
	NavigationEventType.Publish(s.world, event)
}
