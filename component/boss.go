package component

// BossLifecycle is the top-level boss state
type BossLifecycle int

const (
	// BossEntering descends at a fixed rate toward the hold altitude
	BossEntering BossLifecycle = iota

	// BossFighting cycles horizontal movement and fires bullet fans
	BossFighting
)

// BossMoveState is the fighting-phase horizontal movement sub-state
type BossMoveState int

const (
	BossStrafe BossMoveState = iota
	BossCentering
	BossHolding
)

// BossComponent is the stage boss. The world holds at most one.
type BossComponent struct {
	Name  string
	HP    float64
	MaxHP float64

	Lifecycle BossLifecycle
	Move      BossMoveState

	// MoveTimer counts down the current movement sub-state, NextShot
	// counts down to the next bullet fan. Both are in game seconds.
	MoveTimer float64
	NextShot  float64

	// StrafeDir is -1 or +1; alternates each strafe cycle
	StrafeDir float64

	// BobPhase drives the vertical oscillation while fighting
	BobPhase float64
}

// HealthScale is the published health-bar scale, never negative
func (b *BossComponent) HealthScale() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	s := b.HP / b.MaxHP
	if s < 0 {
		return 0
	}
	return s
}
