// Package ecs provides ECS adapters for scenedoc's preview effects.
//
// The primary adapter is [NewDonburiSink], which bridges the effects a
// [scenedoc.Player] produces (commands, messages, view switches, gif control)
// into a [Donburi] world as typed events. Subscribe to [EffectEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	player := scenedoc.NewPlayer(doc, sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
