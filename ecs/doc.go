// Package ecs provides ECS adapters for flipdeck's navigation events.
//
// The primary adapter is [NewDonburiSink], which bridges navigation events
// (started, queued, ignored, finished, abandoned) into a [Donburi] world as
// typed events. Subscribe to [NavigationEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	presenter.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
