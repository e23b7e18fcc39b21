package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset asks all systems to drop session state
	// Trigger: Director on StartStory/StartCasual/Stop
	// Consumer: every system | Payload: nil
	EventGameReset EventType = iota

	// EventExplosionRequest detonates at a point with kind-based stats
	// Trigger: MissileSystem on impact or interception
	// Consumer: CombatSystem | Payload: ExplosionRequestPayload
	EventExplosionRequest

	// EventPlayerDamageRequest applies damage to the player
	// Trigger: BulletSystem, EnemySystem on damage-line crossing
	// Consumer: CombatSystem | Payload: PlayerDamageRequestPayload
	EventPlayerDamageRequest

	// EventWaveComplete signals stage clearance
	// Trigger: StageSystem (quota drained), CombatSystem (boss kill)
	// Consumer: host signal handler via engine.Game | Payload: nil
	EventWaveComplete

	// EventGameOver signals terminal player death
	// Trigger: CombatSystem when health clamps to zero
	// Consumer: host signal handler via engine.Game | Payload: nil
	EventGameOver

	// EventSoundRequest requests audio feedback
	// Trigger: any system
	// Consumer: AudioSystem | Payload: SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a single queued event with its origin frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
