package entity

import (
	"testing"

	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEnemy(ecs *ECS) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Renderables[id] = &component.Renderable{}
	ecs.Enemies[id] = &component.Enemy{Kind: 1}
	return id
}

func addProjectile(ecs *ECS, side component.Side) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Projectiles[id] = &component.Projectile{Side: side}
	return id
}

func TestNewECSStartsPlaying(t *testing.T) {
	ecs := NewECS()
	assert.Equal(t, component.PlayingPhase, ecs.GameState.Phase)
	assert.Equal(t, 3, ecs.GameState.Lives)
	assert.Equal(t, types.EntityID(1), ecs.NewEntity())
}

func TestRemoveEntityDropsAllComponents(t *testing.T) {
	ecs := NewECS()
	id := addEnemy(ecs)
	ecs.PlayerID = id

	ecs.RemoveEntity(id)

	assert.NotContains(t, ecs.Positions, id)
	assert.NotContains(t, ecs.Enemies, id)
	assert.NotContains(t, ecs.Renderables, id)
	_, _, ok := ecs.Player()
	assert.False(t, ok)
}

func TestIDsAreSorted(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 20; i++ {
		want = append(want, addEnemy(ecs))
		addProjectile(ecs, component.PlayerSide)
	}
	assert.Equal(t, want, ecs.EnemyIDs())
	assert.Equal(t, want, ecs.RenderableIDs())
	assert.Len(t, ecs.ProjectileIDs(component.PlayerSide), 20)
	assert.Empty(t, ecs.ProjectileIDs(component.EnemySide))
}

func TestClearKeepsGameState(t *testing.T) {
	ecs := NewECS()
	addEnemy(ecs)
	addProjectile(ecs, component.EnemySide)
	ecs.GameState.Score = 70
	gs := ecs.GameState

	ecs.Clear()

	require.Same(t, gs, ecs.GameState)
	assert.Equal(t, 70, ecs.GameState.Score)
	assert.Empty(t, ecs.Enemies)
	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, types.EntityID(1), ecs.NewEntity(), "ids restart after clear")
}

func TestClearEnemiesAndProjectiles(t *testing.T) {
	ecs := NewECS()
	addEnemy(ecs)
	addProjectile(ecs, component.PlayerSide)
	addProjectile(ecs, component.EnemySide)

	ecs.ClearEnemies()
	assert.Empty(t, ecs.Enemies)
	assert.Len(t, ecs.Projectiles, 2)

	ecs.ClearProjectiles()
	assert.Empty(t, ecs.Projectiles)
	assert.Empty(t, ecs.Positions)
}
