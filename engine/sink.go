package engine

import (
	"github.com/lixenwraith/star-fighter/component"
)

// BossStatus is the boss health readout for the HUD
type BossStatus struct {
	Name  string
	HP    float64
	MaxHP float64
}

// StateDelta carries only the session values that changed this tick.
// Nil pointers and nil maps mean unchanged.
type StateDelta struct {
	Health         *float64
	Money          *int
	Ammo           map[component.MissileKind]int
	Boss           *BossStatus
	BossCleared    bool
	ReloadProgress map[component.MissileKind]float64
	ReloadTimeLeft map[component.MissileKind]int
}

// StateSink receives session state deltas after each tick.
// Calls arrive on the game loop goroutine.
type StateSink interface {
	StateChanged(delta StateDelta)
}

// NullSink discards all state deltas
type NullSink struct{}

func (NullSink) StateChanged(StateDelta) {}

// StateBuffer accumulates a tick's state changes so systems can report
// them independently and the loop flushes one delta per tick.
type StateBuffer struct {
	delta StateDelta
	dirty bool
}

// NewStateBuffer creates an empty buffer
func NewStateBuffer() *StateBuffer {
	return &StateBuffer{}
}

// SetHealth records a health change
func (b *StateBuffer) SetHealth(health float64) {
	b.delta.Health = &health
	b.dirty = true
}

// SetMoney records a money change
func (b *StateBuffer) SetMoney(money int) {
	b.delta.Money = &money
	b.dirty = true
}

// SetAmmo records an ammo count change for one missile kind
func (b *StateBuffer) SetAmmo(kind component.MissileKind, count int) {
	if b.delta.Ammo == nil {
		b.delta.Ammo = make(map[component.MissileKind]int, int(component.MissileKindCount))
	}
	b.delta.Ammo[kind] = count
	b.dirty = true
}

// SetBoss records the boss health readout
func (b *StateBuffer) SetBoss(boss BossStatus) {
	b.delta.Boss = &boss
	b.dirty = true
}

// SetBossCleared marks the boss as defeated
func (b *StateBuffer) SetBossCleared() {
	b.delta.BossCleared = true
	b.dirty = true
}

// SetReload records reload progress for one missile kind. Progress is
// in [0, 1]; timeLeft is whole game seconds remaining.
func (b *StateBuffer) SetReload(kind component.MissileKind, progress float64, timeLeft int) {
	if b.delta.ReloadProgress == nil {
		b.delta.ReloadProgress = make(map[component.MissileKind]float64, int(component.MissileKindCount))
		b.delta.ReloadTimeLeft = make(map[component.MissileKind]int, int(component.MissileKindCount))
	}
	b.delta.ReloadProgress[kind] = progress
	b.delta.ReloadTimeLeft[kind] = timeLeft
	b.dirty = true
}

// Flush sends the accumulated delta to the sink and resets the buffer.
// Nothing is sent when no change was recorded.
func (b *StateBuffer) Flush(sink StateSink) {
	if !b.dirty {
		return
	}
	sink.StateChanged(b.delta)
	b.delta = StateDelta{}
	b.dirty = false
}
