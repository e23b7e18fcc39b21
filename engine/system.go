package engine

import (
	"github.com/lixenwraith/star-fighter/event"
)

// System is one simulation stage. Systems run once per tick in priority
// order (lower priority first) and may additionally subscribe to events
// dispatched between passes.
type System interface {
	// Name identifies the system in status metrics
	Name() string

	// Priority orders the per-tick pass, lower runs first
	Priority() int

	// EventTypes lists the event subscriptions, nil for none
	EventTypes() []event.EventType

	// HandleEvent processes one subscribed event
	HandleEvent(ev event.GameEvent)

	// Update advances the system by one tick
	Update()
}

// SystemBase supplies the no-op event plumbing for systems that only
// run the per-tick pass.
type SystemBase struct{}

func (SystemBase) EventTypes() []event.EventType  { return nil }
func (SystemBase) HandleEvent(ev event.GameEvent) {}
