package system

import (
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/event"
	"github.com/lixenwraith/star-fighter/parameter"
)

// AudioSystem forwards sound requests to the installed player. Keeping
// it event-driven means gameplay systems never block on audio.
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates the audio system
func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string  { return "audio" }
func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }
func (s *AudioSystem) Update()       {}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(event.SoundRequestPayload); ok {
		s.world.Resource.Sound.Play(p.Sound)
	}
}
