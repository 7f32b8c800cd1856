// Package ecs bridges arbor widget events into a [Donburi] world.
//
// [NewDonburiStore] returns an [arbor.EntityStore] that publishes every event
// delivered to a widget with a non-zero EntityID as an
// [arbor.InteractionEvent] on [InteractionEventType]:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
//	button.EntityID = 7
//	ecs.SubscribeEntity(world, 7, func(w donburi.World, e arbor.InteractionEvent) {
//		if e.Type == arbor.EventClick { ... }
//	})
//
// Events are queued by Donburi; call InteractionEventType.ProcessEvents (or
// events.ProcessAllEvents) from a system to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
