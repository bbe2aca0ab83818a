// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	PlayerID    types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Colliders   map[types.EntityID]*component.Collider
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Drifts      map[types.EntityID]*component.Drift
	GameState   *component.GameState
}

func NewECS() *ECS {
	ecs := &ECS{
		GameState: &component.GameState{
			Phase: component.PlayingPhase,
			Lives: config.InitialLives,
		},
	}
	ecs.Clear()
	return ecs
}

// Clear удаляет все сущности, но сохраняет GameState.
func (ecs *ECS) Clear() {
	ecs.NextID = 1
	ecs.PlayerID = 0
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Velocities = make(map[types.EntityID]*component.Velocity)
	ecs.Colliders = make(map[types.EntityID]*component.Collider)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Players = make(map[types.EntityID]*component.Player)
	ecs.Projectiles = make(map[types.EntityID]*component.Projectile)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Drifts = make(map[types.EntityID]*component.Drift)
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Drifts, id)
	if id == ecs.PlayerID {
		ecs.PlayerID = 0
	}
}

// ClearEnemies удаляет всех врагов.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles удаляет все снаряды обеих сторон.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}

// Player возвращает позицию игрока, если он существует.
func (ecs *ECS) Player() (types.EntityID, *component.Position, bool) {
	if ecs.PlayerID == 0 {
		return 0, nil, false
	}
	pos, ok := ecs.Positions[ecs.PlayerID]
	return ecs.PlayerID, pos, ok
}

// EnemyIDs возвращает ID врагов в порядке создания.
// Детерминированный порядок нужен для воспроизводимого рандома.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// ProjectileIDs возвращает ID снарядов указанной стороны в порядке создания.
func (ecs *ECS) ProjectileIDs(side component.Side) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id, p := range ecs.Projectiles {
		if p.Side == side {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

// RenderableIDs возвращает ID всего, что рисуется, в порядке создания.
func (ecs *ECS) RenderableIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Renderables))
	for id := range ecs.Renderables {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
