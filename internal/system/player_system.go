// internal/system/player_system.go
package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/input"
)

// PlayerSystem переводит ввод в скорость игрока и выстрелы.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(in input.State) {
	id, pos, ok := s.ecs.Player()
	if !ok {
		return
	}
	vel := s.ecs.Velocities[id]
	if vel == nil {
		vel = &component.Velocity{}
		s.ecs.Velocities[id] = vel
	}
	vel.X = float64(in.Direction()) * config.PlayerSpeed

	gs := s.ecs.GameState
	if in.Fire && gs.Time >= gs.NextShotTime {
		s.shoot(pos)
		gs.NextShotTime = gs.Time + config.ShotCooldown
	}
}

// shoot выпускает пулю из верхней середины игрока.
func (s *PlayerSystem) shoot(pos *component.Position) {
	height := config.PlayerDisplaySize
	if col, ok := s.ecs.Colliders[s.ecs.PlayerID]; ok {
		height = col.Height
	}
	SpawnProjectile(s.ecs, component.PlayerSide, pos.X, pos.Y-height/2)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerFired})
}
