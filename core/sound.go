package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaunch    SoundType = iota // Missile fired
	SoundBlast                      // Standard explosion
	SoundNuke                       // Nuke detonation
	SoundIntercept                  // Missile eats an enemy bullet
	SoundPlayerHit                  // Enemy or bullet reached the player line
	SoundBossDown                   // Boss destroyed
	SoundGameOver                   // Health reached zero
	SoundTypeCount
)
