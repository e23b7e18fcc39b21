package engine

import (
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/core"
)

// ComponentStore groups the typed stores for direct field access
type ComponentStore struct {
	Kinetic *Store[component.KineticComponent]
	Missile *Store[component.MissileComponent]
	Enemy   *Store[component.EnemyComponent]
	Bullet  *Store[component.BulletComponent]
	Boss    *Store[component.BossComponent]
	Effect  *Store[component.EffectComponent]
}

// NewComponentStore creates all component stores
func NewComponentStore() *ComponentStore {
	return &ComponentStore{
		Kinetic: NewStore[component.KineticComponent](),
		Missile: NewStore[component.MissileComponent](),
		Enemy:   NewStore[component.EnemyComponent](),
		Bullet:  NewStore[component.BulletComponent](),
		Boss:    NewStore[component.BossComponent](),
		Effect:  NewStore[component.EffectComponent](),
	}
}

// RemoveAll strips every component from an entity
func (cs *ComponentStore) RemoveAll(e core.Entity) {
	cs.Kinetic.Remove(e)
	cs.Missile.Remove(e)
	cs.Enemy.Remove(e)
	cs.Bullet.Remove(e)
	cs.Boss.Remove(e)
	cs.Effect.Remove(e)
}

// Clear empties every store
func (cs *ComponentStore) Clear() {
	cs.Kinetic.Clear()
	cs.Missile.Clear()
	cs.Enemy.Clear()
	cs.Bullet.Clear()
	cs.Boss.Clear()
	cs.Effect.Clear()
}
