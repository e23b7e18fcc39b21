package parameter

// Missile launch
const (
	// Base speeds per kind, in units per tick (fixed-step integration)
	MissileSpeedNormal = 0.8
	MissileSpeedBig    = 0.6
	MissileSpeedNuke   = 0.4

	// MissileSpeedUpgradeStep is added per speed upgrade level
	MissileSpeedUpgradeStep = 0.05

	// CasualSpeedFactor slows all missiles outside story mode
	CasualSpeedFactor = 0.8

	// Concurrency caps, enforced outside casual mode
	MissileBigCap  = 5
	MissileNukeCap = 1

	// Story-mode launch pad (below the arena)
	MissilePadY = -40.0

	// Nuke pad: story nukes rise from a distinct lower position
	NukePadY = -48.0

	// NukeLaunchDuration is the launching-phase length in time units
	NukeLaunchDuration = 5.0

	// NukeLaunchRise is the vertical distance covered while launching
	NukeLaunchRise = 12.0

	// Casual-mode spawn ring around the origin
	CasualSpawnRingMin = 70.0
	CasualSpawnRingMax = 90.0

	// CasualRehomeWindow: missiles re-home toward the live aim point for
	// this long after the last aim movement, then coast
	CasualRehomeWindow = 0.3
)

// Missile collision
const (
	// InterceptRadius destroys missile and enemy bullet on proximity
	InterceptRadius = 3.0

	// Hit radii per kind against enemies
	MissileHitRadiusNormal = 4.0
	MissileHitRadiusBig    = 6.0
	MissileHitRadiusNuke   = 8.0

	// BossHitRadiusBonus widens the boss hit check
	BossHitRadiusBonus = 6.0
)
