// internal/system/movement.go
package system

import (
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/utils"
)

// MovementSystem интегрирует скорости, применяет дрейф врагов
// и удерживает игрока в границах экрана.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	now := s.ecs.GameState.Time
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		if drift, hasDrift := s.ecs.Drifts[id]; hasDrift {
			pos.X = drift.BaseX + drift.OffsetAt(now)
		}

		if _, isPlayer := s.ecs.Players[id]; isPlayer {
			halfW := 0.0
			if col, ok := s.ecs.Colliders[id]; ok {
				halfW = col.Width / 2
			}
			pos.X = utils.Clamp(pos.X, halfW, config.ScreenWidth-halfW)
		}
	}
}

// Freeze обнуляет скорости всех сущностей.
func (s *MovementSystem) Freeze() {
	for _, vel := range s.ecs.Velocities {
		vel.X, vel.Y = 0, 0
	}
}
