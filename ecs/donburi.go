package ecs

import (
	"github.com/phanxgames/scenedoc"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectEventType is the Donburi event type for scenedoc preview effects.
var EffectEventType = events.NewEventType[scenedoc.Effect]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EffectSink backed by a Donburi world. Effects are
// published to EffectEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) scenedoc.EffectSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEffect(effect scenedoc.Effect) {
	EffectEventType.Publish(s.world, effect)
}
