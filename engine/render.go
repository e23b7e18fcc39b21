package engine

import (
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/vmath"
)

// PoseClass tags what an entity pose represents on screen
type PoseClass int

const (
	PoseMissile PoseClass = iota
	PoseEnemy
	PoseBullet
	PoseBoss
	PoseEffect
)

// EntityPose is the per-entity presentation snapshot pushed to the
// renderer. Kind carries the class-specific subtype (missile kind,
// enemy archetype, effect kind).
type EntityPose struct {
	Entity      core.Entity
	Class       PoseClass
	Kind        int
	Pos         vmath.Vec3
	Spin        float64
	HealthScale float64
	Flash       bool
	Opacity     float64
	Radius      float64
}

// Renderer receives entity lifecycle notifications after each tick.
// Calls arrive on the game loop goroutine.
type Renderer interface {
	EntityCreated(pose EntityPose)
	EntityUpdated(pose EntityPose)
	EntityDestroyed(id core.Entity)
}

// NullRenderer discards all notifications
type NullRenderer struct{}

func (NullRenderer) EntityCreated(EntityPose)    {}
func (NullRenderer) EntityUpdated(EntityPose)    {}
func (NullRenderer) EntityDestroyed(core.Entity) {}
