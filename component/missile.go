package component

import (
	"github.com/lixenwraith/star-fighter/vmath"
)

// MissileKind selects the player missile variant
type MissileKind int

const (
	MissileNormal MissileKind = iota
	MissileBig
	MissileNuke
	MissileKindCount
)

func (k MissileKind) String() string {
	switch k {
	case MissileNormal:
		return "normal"
	case MissileBig:
		return "big"
	case MissileNuke:
		return "nuke"
	default:
		return "unknown"
	}
}

// MissilePhase is the story-mode nuke sub-state
type MissilePhase int

const (
	// MissilePhaseLaunching interpolates along a fixed vertical pad path;
	// the missile has no velocity and does not collide yet
	MissilePhaseLaunching MissilePhase = iota

	// MissilePhaseFlying integrates velocity once per tick
	MissilePhaseFlying
)

// MissileComponent is a player missile in flight
type MissileComponent struct {
	Kind  MissileKind
	Phase MissilePhase

	// Target is the aim point captured at fire time
	Target vmath.Vec3

	// Launch path, used only while Phase is MissilePhaseLaunching
	LaunchFrom    vmath.Vec3
	LaunchTo      vmath.Vec3
	LaunchElapsed float64
}
