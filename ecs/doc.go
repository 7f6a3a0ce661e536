// Package ecs provides ECS adapters for highlight's group events.
//
// The primary adapter is [NewDonburiStore], which bridges highlight and clear
// events of every selection group into a [Donburi] world as typed events.
// Subscribe to [HighlightEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	highlighter.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
