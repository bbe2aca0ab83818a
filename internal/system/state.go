// internal/system/state.go
package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/storage"
	"log"
)

// StateSystem ведёт жизни, переход Playing -> GameOver и рекорд.
type StateSystem struct {
	ecs             *entity.ECS
	variant         defs.VariantDefinition
	store           storage.Store
	movement        *MovementSystem
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, variant defs.VariantDefinition, store storage.Store, movement *MovementSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		variant:         variant,
		store:           store,
		movement:        movement,
		eventDispatcher: eventDispatcher,
	}
}

// LoseLife отнимает одну жизнь. Вне фазы Playing ничего не делает.
func (s *StateSystem) LoseLife() {
	gs := s.ecs.GameState
	if gs.Phase != component.PlayingPhase || gs.Lives <= 0 {
		return
	}
	gs.Lives--
	s.eventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: gs.Lives})
	if gs.Lives == 0 {
		s.EnterGameOver()
	}
}

// Update — проверка конца игры в конце кадра.
func (s *StateSystem) Update() {
	gs := s.ecs.GameState
	if gs.Phase == component.PlayingPhase && gs.Lives <= 0 {
		gs.Lives = 0
		s.EnterGameOver()
	}
}

// EnterGameOver замораживает мир, при необходимости очищает его и сохраняет рекорд.
func (s *StateSystem) EnterGameOver() {
	gs := s.ecs.GameState
	if gs.Phase == component.GameOverPhase {
		return
	}
	gs.Phase = component.GameOverPhase

	s.movement.Freeze()
	if s.variant.ClearOnGameOver {
		s.ecs.ClearEnemies()
		s.ecs.ClearProjectiles()
	}

	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		if err := storage.SaveHighScore(s.store, gs.HighScore); err != nil {
			log.Printf("Не удалось сохранить рекорд: %v", err)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.HighScoreBeaten, Data: gs.HighScore})
	}

	log.Printf("Game over: score=%d high=%d wave=%d", gs.Score, gs.HighScore, gs.Wave)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: gs.Score})
}

// Reset возвращает счёт, жизни и кулдауны к началу партии. Рекорд сохраняется.
func (s *StateSystem) Reset() {
	gs := s.ecs.GameState
	gs.Phase = component.PlayingPhase
	gs.Score = 0
	gs.Lives = config.InitialLives
	gs.Wave = 0
	gs.NextShotTime = gs.Time
	gs.NextEnemyFireTime = gs.Time
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
