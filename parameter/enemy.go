package parameter

import "time"

// Enemy archetype base stats. Speeds are units per tick (fixed-step).
const (
	ScoutHP     = 3.5
	ScoutSpeed  = 0.15
	ScoutDamage = 1.0

	FighterHP     = 5.0
	FighterSpeed  = 0.25
	FighterDamage = 5.0

	DroneHP     = 2.0
	DroneSpeed  = 0.35
	DroneDamage = 2.0

	DreadHP     = 30.0
	DreadSpeed  = 0.05
	DreadDamage = 10.0
)

// Archetype selection rolls, later checks override earlier ones
const (
	// DroneRollThreshold applies for wave > 1
	DroneRollThreshold = 0.7
	// FighterRollThreshold applies for difficulty >= 1
	FighterRollThreshold = 0.6
	// DreadRollThreshold applies for difficulty >= 2
	DreadRollThreshold = 0.8
)

// Wave scaling, applied for wave > 5
const (
	EnemyHPScalePerWave    = 0.25
	EnemySpeedScalePerWave = 0.03
	EnemyScaleBaseWave     = 5
)

const (
	// EnemySpinRate is the sub-part rotation for rotating archetypes,
	// radians per second
	EnemySpinRate = 2.5

	// EnemyFlashDuration is the white hit flash length
	EnemyFlashDuration = 150 * time.Millisecond

	// EnemyReward is granted per kill
	EnemyReward = 20
)
