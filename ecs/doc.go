// Package ecs provides ECS adapters for swipe's panel events.
//
// The primary adapter is [NewDonburiSink], which bridges resolved gestures
// (tap, scroll, settle, state change) from a [swipe.Host] into a [Donburi]
// world as typed events. Subscribe to [ScrollEventType] in your ECS systems
// to receive them, for example to run a purchase system off shop taps.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	host.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
