package parameter

// Arena geometry. The play plane is XY with depth on Z; enemies descend
// toward negative Y and the player sits below the damage line.
const (
	// ArenaHalfWidth is the horizontal bound W used for bullet bounce
	// and barrier placement
	ArenaHalfWidth = 30.0

	// BulletBounceMargin keeps bouncing bullets inside |x| <= W-2
	BulletBounceMargin = 2.0

	// DamageLineY is the boundary; enemies and bullets crossing it hurt
	// the player
	DamageLineY = -35.0

	// BulletDropY silently discards bullets that fall this far
	BulletDropY = -50.0

	// EnemySpawnY is the fixed spawn height above the arena
	EnemySpawnY = 40.0

	// ViewerMaxRange culls missiles this far from the viewer origin
	ViewerMaxRange = 200.0
)
