package ecs

import (
	"github.com/phanxgames/gridmenu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEventType is the Donburi event type for gridmenu menu events.
var MenuEventType = events.NewEventType[gridmenu.MenuEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Menu events
// are published to MenuEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) gridmenu.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event gridmenu.MenuEvent) {
	MenuEventType.Publish(s.world, event)
}
