package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for arbor widget events.
var InteractionEventType = events.NewEventType[arbor.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
func NewDonburiStore(world donburi.World) arbor.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event arbor.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// SubscribeEntity subscribes fn to events for a single entity id.
func SubscribeEntity(world donburi.World, entityID uint32, fn func(donburi.World, arbor.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e arbor.InteractionEvent) {
		if e.EntityID == entityID {
			fn(w, e)
		}
	})
}
