package parameter

// Explosion stat formulas: radius = base + radiusLevel*step,
// damage = base + damageLevel*step, doubled on crit
const (
	ExplosionRadiusNormal     = 6.0
	ExplosionRadiusStepNormal = 1.5
	ExplosionDamageNormal     = 2.0
	ExplosionDamageStepNormal = 1.0

	ExplosionRadiusBig     = 18.0
	ExplosionRadiusStepBig = 3.0
	ExplosionDamageBig     = 12.0
	ExplosionDamageStepBig = 3.0

	// CritChancePerLevel is the doubling probability per crit level
	CritChancePerLevel = 0.05

	// Nuke path: larger fixed radius, fixed damage, no crit
	NukeRadius     = 60.0
	NukeRadiusStep = 10.0
	NukeDamage     = 100.0
	NukeDamageStep = 20.0

	// BossDamageRadiusBonus widens the boss area-damage check
	BossDamageRadiusBonus = 10.0
)

// Player
const (
	PlayerMaxHealth = 100.0

	// BulletPlayerDamage is dealt by each bullet crossing the damage line
	BulletPlayerDamage = 3.0
)
