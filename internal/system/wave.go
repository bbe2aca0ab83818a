// internal/system/wave.go
package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/utils"
	"math"
)

// WaveSystem отвечает за появление врагов и их уход за нижнюю границу.
type WaveSystem struct {
	ecs             *entity.ECS
	variant         defs.VariantDefinition
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	lives           LifeLoser
}

// LifeLoser — то, что умеет отнимать жизнь. Реализуется StateSystem.
type LifeLoser interface {
	LoseLife()
}

func NewWaveSystem(ecs *entity.ECS, variant defs.VariantDefinition, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, lives LifeLoser) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		variant:         variant,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		lives:           lives,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.PlayerHit, ws)
	return ws
}

func (s *WaveSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.GameState.Phase != component.PlayingPhase {
			return
		}
		pos, ok := s.ecs.Positions[id]
		if !ok || pos.Y <= config.EnemyEscapeY {
			continue
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
		if s.variant.SpawnPolicy == defs.SpawnSingle {
			s.SpawnWave()
		}
		if s.variant.EscapeCostsLife {
			s.lives.LoseLife()
		}
	}

	if s.ecs.GameState.Phase == component.PlayingPhase && len(s.ecs.Enemies) == 0 {
		s.SpawnWave()
	}
}

// OnEvent — одиночный враг заменяется сразу после гибели или столкновения с игроком.
func (s *WaveSystem) OnEvent(e event.Event) {
	if s.variant.SpawnPolicy != defs.SpawnSingle || s.ecs.GameState.Phase != component.PlayingPhase {
		return
	}
	switch e.Type {
	case event.EnemyKilled:
		s.SpawnWave()
	case event.PlayerHit:
		if hit, ok := e.Data.(HitData); ok && hit.ByEnemy {
			s.SpawnWave()
		}
	}
}

// SpawnWave создаёт одного врага или группу, в зависимости от варианта.
func (s *WaveSystem) SpawnWave() {
	gs := s.ecs.GameState
	gs.Wave++

	count := 1
	spacing := 0.0
	groupID := 0
	if s.variant.SpawnPolicy == defs.SpawnGroup {
		count = s.variant.GroupSize
		spacing = s.variant.GroupSpacing
		groupID = gs.Wave
	}

	margin := s.variant.DriftAmplitude
	minX := config.EnemySpawnMinX + int(math.Ceil(margin))
	maxX := config.EnemySpawnMaxX - int(math.Ceil(spacing*float64(count-1)+margin))
	startX := float64(s.rng.Between(minX, maxX))

	groupSpeed := s.variant.FallSpeedFor(gs.Score)
	phase := s.rng.Float64() * 2 * math.Pi

	for i := 0; i < count; i++ {
		x := startX + float64(i)*spacing
		speed := groupSpeed
		if s.variant.FallPolicy == defs.FallRandom {
			speed = float64(s.rng.Between(int(s.variant.MinFallSpeed), int(s.variant.MaxFallSpeed)))
		}
		var drift *component.Drift
		if s.variant.DriftAmplitude > 0 {
			drift = &component.Drift{
				BaseX:     x,
				Amplitude: s.variant.DriftAmplitude,
				Frequency: s.variant.DriftFrequency,
				Phase:     phase - s.variant.DriftFrequency*gs.Time,
			}
		}
		kind := s.rng.Between(1, config.EnemyKinds)
		SpawnEnemy(s.ecs, x, config.EnemySpawnY, kind, speed, groupID, drift)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveSpawned, Data: gs.Wave})
}
