package parameter

// Effect lifetimes are in ticks; effects age by one per tick
const (
	EffectBlastMaxAge      = 30.0
	EffectNukeSphereMaxAge = 90.0
	EffectFireballMaxAge   = 60.0
	EffectEmberMaxAge      = 600.0

	// DamageFieldWindow: blast/sphere effects intercept bullets while
	// age < window * maxAge
	DamageFieldWindow = 0.9

	// EffectVelocityDamping is applied per tick to velocity-driven effects
	EffectVelocityDamping = 0.95
)

// Casual-mode ambient ember field
const (
	EmberCount = 48

	// EmberBound is the wrap-around half-extent on X and Y
	EmberBound = 60.0

	// EmberDriftSpeed is the initial drift magnitude, units per tick
	EmberDriftSpeed = 0.4

	EmberRadius = 0.8
)
