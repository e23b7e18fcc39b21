package component

import (
	"github.com/lixenwraith/star-fighter/vmath"
)

// KineticComponent carries position and velocity for any moving entity.
// Speed is the scalar cruising speed used when velocity is recomputed
// (homing, launch transition); it is not derived from Vel each tick.
type KineticComponent struct {
	Pos   vmath.Vec3
	Vel   vmath.Vec3
	Speed float64
}
