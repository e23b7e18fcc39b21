package component

// EffectKind discriminates the transient particle effects
type EffectKind int

const (
	// EffectBlast is a standard explosion; acts as a damage field
	EffectBlast EffectKind = iota

	// EffectNukeSphere is the expanding nuke shell; acts as a damage field
	EffectNukeSphere

	// EffectFireball is the nuke core visual; no damage field
	EffectFireball

	// EffectEmber is a casual-mode ambient field particle with
	// wrap-around drift; no damage field
	EffectEmber
)

// EffectComponent is a transient visual/gameplay object. Age advances by
// one per tick; the effect is removed at Age >= MaxAge.
type EffectComponent struct {
	Kind   EffectKind
	Age    float64
	MaxAge float64
	Radius float64
}

// FieldActive reports whether the effect currently intercepts enemy
// bullets. Damage fields expire at 90% of the effect's lifetime.
func (e *EffectComponent) FieldActive() bool {
	if e.Kind != EffectBlast && e.Kind != EffectNukeSphere {
		return false
	}
	return e.Age < 0.9*e.MaxAge
}

// Fade is the published opacity/scale fraction
func (e *EffectComponent) Fade() float64 {
	if e.MaxAge <= 0 {
		return 1
	}
	f := e.Age / e.MaxAge
	if f > 1 {
		f = 1
	}
	return f
}
