package ecs

import (
	"github.com/phanxgames/swipe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType carries every resolved panel gesture into the world.
// Events are queued on publish; subscribers see them in host order on the
// next ProcessEvents. Filter on ScrollEvent.Type and Panel, e.g. taps on the
// shop with a RegionID of "buy-3".
var ScrollEventType = events.NewEventType[swipe.ScrollEvent]()

// worldSink queues host events on a single world.
type worldSink struct {
	world donburi.World
}

// NewDonburiSink returns a swipe.EventSink that queues each tap, scroll,
// settle and state change on world. Nothing is delivered until the game
// calls ScrollEventType.ProcessEvents, usually once per frame after
// Host.Update.
func NewDonburiSink(world donburi.World) swipe.EventSink {
	return &worldSink{world: world}
}

func (s *worldSink) EmitEvent(ev swipe.ScrollEvent) {
	ScrollEventType.Publish(s.world, ev)
}
