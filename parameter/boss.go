package parameter

// Boss lifecycle and movement
const (
	BossName = "Dread Carrier"

	// BossEnterY is the spawn altitude; the boss descends to BossHoldY
	BossEnterY = 60.0
	BossHoldY  = 30.0

	// BossDescendRate is units per tick while entering (fixed-step)
	BossDescendRate = 0.2

	// Movement sub-state durations, game seconds
	BossStrafeDuration    = 2.0
	BossCenteringDuration = 1.2
	BossHoldDuration      = 1.5

	// BossStrafeSpeed is horizontal units per tick while strafing
	BossStrafeSpeed = 0.15

	// BossStrafeBound keeps the boss inside the arena while strafing
	BossStrafeBound = ArenaHalfWidth - 8.0

	// Vertical bobbing while fighting
	BossBobAmplitude = 1.5
	BossBobRate      = 2.0

	// BossCenteringSnap: centering ends early once |x| drops below this
	BossCenteringSnap = 0.5
)

// Boss firing
const (
	// BossFireInterval is the fixed delay between bullet fans, seconds
	BossFireInterval = 1.2

	// BossFanCount is the number of bullets per fan
	BossFanCount = 7

	// BossFanSpread is the total fan arc in radians
	BossFanSpread = 1.2

	// BossBulletSpeed is in units per second (bullets integrate by
	// elapsed time, unlike missiles and enemies)
	BossBulletSpeed = 12.0

	// BossReward is granted on kill
	BossReward = 1000
)
