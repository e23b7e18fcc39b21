package parameter

// System execution priorities (lower runs first). The missile, bullet,
// enemy, effect order matches the per-tick collision resolution order.
const (
	PriorityStage   = 10
	PriorityMissile = 20
	PriorityBullet  = 30
	PriorityEnemy   = 40
	PriorityBoss    = 50
	PriorityEffect  = 60
	PriorityCombat  = 70
	PriorityAmmo    = 80
	PriorityAudio   = 900
)
