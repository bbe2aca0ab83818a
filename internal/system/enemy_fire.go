package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/utils"
)

// EnemyFireSystem — ответный огонь врагов.
// Когда истекает кулдаун, каждый живой враг независимо бросает кубик на выстрел.
type EnemyFireSystem struct {
	ecs             *entity.ECS
	fire            defs.EnemyFireDef
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewEnemyFireSystem(ecs *entity.ECS, fire defs.EnemyFireDef, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemyFireSystem {
	return &EnemyFireSystem{ecs: ecs, fire: fire, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *EnemyFireSystem) Update() {
	if !s.fire.Enabled {
		return
	}
	gs := s.ecs.GameState
	if gs.Time < gs.NextEnemyFireTime {
		return
	}

	chance := s.fire.FireChanceFor(gs.Score)
	for _, id := range s.ecs.EnemyIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok || !s.rng.Chance(chance) {
			continue
		}
		halfH := 0.0
		if col, ok := s.ecs.Colliders[id]; ok {
			halfH = col.Height / 2
		}
		SpawnProjectile(s.ecs, component.EnemySide, pos.X, pos.Y+halfH)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyFired, Data: id})
	}
	gs.NextEnemyFireTime = gs.Time + s.fire.CooldownFor(gs.Score)
}

// Delay откладывает первый бросок на один интервал от текущего времени.
func (s *EnemyFireSystem) Delay() {
	gs := s.ecs.GameState
	gs.NextEnemyFireTime = gs.Time + s.fire.CooldownFor(gs.Score)
}
