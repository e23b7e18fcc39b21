package component

import (
	"time"
)

// EnemyArchetype is the enemy subtype discriminant. Behavior and stats
// dispatch through lookup tables keyed by the archetype, not subtyping.
type EnemyArchetype int

const (
	EnemyScout EnemyArchetype = iota
	EnemyFighter
	EnemyDrone
	EnemyDread
	EnemyArchetypeCount
)

func (a EnemyArchetype) String() string {
	switch a {
	case EnemyScout:
		return "scout"
	case EnemyFighter:
		return "fighter"
	case EnemyDrone:
		return "drone"
	case EnemyDread:
		return "dread"
	default:
		return "unknown"
	}
}

// EnemyComponent is a descending hostile craft
type EnemyComponent struct {
	Archetype     EnemyArchetype
	HP            float64
	MaxHP         float64
	ContactDamage float64

	// Rotates marks archetypes that spin a sub-part for presentation
	Rotates bool
	Spin    float64

	// FlashRemaining is the white hit-flash countdown, applied on tick
	// boundaries only (no out-of-band timers)
	FlashRemaining time.Duration
}

// HealthScale is the published health-bar scale, never negative
func (e *EnemyComponent) HealthScale() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	s := e.HP / e.MaxHP
	if s < 0 {
		return 0
	}
	return s
}
