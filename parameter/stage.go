package parameter

// Stage machine
const (
	// CasualAutoSpawnTicks: a random missile kind auto-fires this often
	// in casual mode
	CasualAutoSpawnTicks = 90

	// DefaultBossHP is used when a boss stage omits hp
	DefaultBossHP = 200.0
)
