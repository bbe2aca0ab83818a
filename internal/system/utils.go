// internal/system/utils.go
package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/types"
	"go-hongo-shooter/internal/utils"
)

// SpawnPlayer создаёт игрока в стартовой позиции.
func SpawnPlayer(ecs *entity.ECS) types.EntityID {
	id := ecs.NewEntity()
	size := config.PlayerDisplaySize
	ecs.Positions[id] = &component.Position{X: config.PlayerStartX, Y: config.PlayerStartY}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Colliders[id] = &component.Collider{Width: size, Height: size}
	ecs.Renderables[id] = &component.Renderable{Sprite: config.SpritePlayer, Width: size, Height: size}
	ecs.Players[id] = &component.Player{Scale: config.PlayerScale}
	ecs.PlayerID = id
	return id
}

// SpawnProjectile создаёт снаряд указанной стороны в точке (x, y).
func SpawnProjectile(ecs *entity.ECS, side component.Side, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	w, h, vy, sprite := config.BulletWidth, config.BulletHeight, config.BulletSpeed, config.SpriteBullet
	if side == component.EnemySide {
		w, h, vy, sprite = config.EnemyBulletWidth, config.EnemyBulletHeight, config.EnemyBulletSpeed, config.SpriteEnemyBullet
	}
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Y: vy}
	ecs.Colliders[id] = &component.Collider{Width: w, Height: h}
	ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Width: w, Height: h}
	ecs.Projectiles[id] = &component.Projectile{Side: side}
	return id
}

// SpawnEnemy создаёт врага; drift может быть nil.
func SpawnEnemy(ecs *entity.ECS, x, y float64, kind int, fallSpeed float64, groupID int, drift *component.Drift) types.EntityID {
	id := ecs.NewEntity()
	size := config.EnemyDisplaySize
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Y: fallSpeed}
	ecs.Colliders[id] = &component.Collider{Width: size, Height: size}
	ecs.Renderables[id] = &component.Renderable{Sprite: config.EnemySprite(kind), Width: size, Height: size}
	ecs.Enemies[id] = &component.Enemy{Kind: kind, GroupID: groupID}
	if drift != nil {
		ecs.Drifts[id] = drift
		ecs.Positions[id].X = drift.BaseX + drift.OffsetAt(ecs.GameState.Time)
	}
	return id
}

// overlaps проверяет пересечение коллайдеров двух сущностей.
func overlaps(ecs *entity.ECS, a, b types.EntityID) bool {
	pa, okA := ecs.Positions[a]
	pb, okB := ecs.Positions[b]
	ca, okCA := ecs.Colliders[a]
	cb, okCB := ecs.Colliders[b]
	if !okA || !okB || !okCA || !okCB {
		return false
	}
	return rectsOverlap(pa, ca, pb, cb)
}

func rectsOverlap(pa *component.Position, ca *component.Collider, pb *component.Position, cb *component.Collider) bool {
	return utils.RectsOverlap(pa.X, pa.Y, ca.Width, ca.Height, pb.X, pb.Y, cb.Width, cb.Height)
}
