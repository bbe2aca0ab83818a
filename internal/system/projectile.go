// internal/system/projectile.go
package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/entity"
)

// ProjectileSystem удаляет снаряды, покинувшие экран.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		if isOffScreen(proj.Side, pos.Y) {
			s.ecs.RemoveEntity(id)
		}
	}
}

// isOffScreen: пули игрока уходят вверх, вражеские — вниз.
func isOffScreen(side component.Side, y float64) bool {
	if side == component.EnemySide {
		return y > config.EnemyBulletMaxY
	}
	return y < config.PlayerBulletMinY
}
