package event

import (
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/vmath"
)

// ExplosionRequestPayload carries detonation point and missile kind;
// the combat system derives radius and damage from upgrade levels
type ExplosionRequestPayload struct {
	Center vmath.Vec3
	Kind   component.MissileKind
}

// PlayerDamageRequestPayload carries raw damage crossing the line
type PlayerDamageRequestPayload struct {
	Amount float64
}

// SoundRequestPayload names the cue to play
type SoundRequestPayload struct {
	Sound core.SoundType
}
