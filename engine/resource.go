package engine

import (
	"time"

	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/status"
	"github.com/lixenwraith/star-fighter/vmath"
)

// TimeResource carries the per-tick time readings shared by systems
type TimeResource struct {
	GameTime    time.Time
	RealTime    time.Time
	DeltaTime   float64 // game seconds since the previous tick
	FrameNumber int64
}

// SoundPlayer plays a one-shot sound effect. The audio engine
// implements it; tests use a recording stub.
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// NullSoundPlayer discards all sound requests
type NullSoundPlayer struct{}

func (NullSoundPlayer) Play(core.SoundType) {}

// Resource is the shared resource set systems read and write.
// Fields are fixed at world creation; their contents mutate per tick.
type Resource struct {
	Time    *TimeResource
	State   *GameState
	Loadout *config.Loadout
	Rand    *vmath.FastRand
	Status  *status.Registry
	Buffer  *StateBuffer
	Sound   SoundPlayer
}

// NewResource creates the default resource set
func NewResource() *Resource {
	return &Resource{
		Time:    &TimeResource{},
		State:   NewGameState(),
		Loadout: config.DefaultLoadout(),
		Rand:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
		Status:  status.NewRegistry(),
		Buffer:  NewStateBuffer(),
		Sound:   NullSoundPlayer{},
	}
}
