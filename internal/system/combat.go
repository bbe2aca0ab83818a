package system

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/types"
	"go-hongo-shooter/internal/utils"
	"math"
)

// HitData — данные события PlayerHit
type HitData struct {
	ByEnemy bool // true — таран врагом, false — вражеский снаряд
	Source  types.EntityID
}

// CombatSystem разрешает пересечения: пули игрока с врагами,
// вражеские пули и сами враги с игроком.
type CombatSystem struct {
	ecs             *entity.ECS
	scorePolicy     defs.ScorePolicy
	eventDispatcher *event.Dispatcher
	lives           LifeLoser
}

func NewCombatSystem(ecs *entity.ECS, scorePolicy defs.ScorePolicy, eventDispatcher *event.Dispatcher, lives LifeLoser) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		scorePolicy:     scorePolicy,
		eventDispatcher: eventDispatcher,
		lives:           lives,
	}
}

func (s *CombatSystem) Update() {
	s.resolveBulletHits()
	s.resolvePlayerHits()
}

func (s *CombatSystem) playing() bool {
	return s.ecs.GameState.Phase == component.PlayingPhase
}

func (s *CombatSystem) resolveBulletHits() {
	enemies := s.ecs.EnemyIDs()
	for _, bulletID := range s.ecs.ProjectileIDs(component.PlayerSide) {
		for _, enemyID := range enemies {
			if _, alive := s.ecs.Enemies[enemyID]; !alive {
				continue
			}
			if !overlaps(s.ecs, bulletID, enemyID) {
				continue
			}
			points, dist := s.pointsFor(enemyID)
			s.ecs.RemoveEntity(bulletID)
			s.ecs.RemoveEntity(enemyID)
			s.ecs.GameState.Score += points
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{Points: points, Distance: dist}})
			break
		}
	}
}

func (s *CombatSystem) resolvePlayerHits() {
	playerID, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	for _, bulletID := range s.ecs.ProjectileIDs(component.EnemySide) {
		if !s.playing() {
			return
		}
		if overlaps(s.ecs, bulletID, playerID) {
			s.ecs.RemoveEntity(bulletID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: HitData{Source: bulletID}})
			s.lives.LoseLife()
		}
	}
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !s.playing() {
			return
		}
		if _, alive := s.ecs.Enemies[enemyID]; !alive {
			continue
		}
		if overlaps(s.ecs, enemyID, playerID) {
			s.ecs.RemoveEntity(enemyID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: HitData{ByEnemy: true, Source: enemyID}})
			s.lives.LoseLife()
		}
	}
}

// pointsFor считает очки за врага по правилу варианта.
func (s *CombatSystem) pointsFor(enemyID types.EntityID) (int, float64) {
	if s.scorePolicy != defs.ScoreDistance {
		return config.FlatKillPoints, 0
	}
	_, playerPos, ok := s.ecs.Player()
	enemyPos, hasEnemy := s.ecs.Positions[enemyID]
	if !ok || !hasEnemy {
		return config.MinDistancePoints, 0
	}
	dist := utils.Distance(playerPos.X, playerPos.Y, enemyPos.X, enemyPos.Y)
	return DistancePoints(dist), dist
}

// DistancePoints — max(5, floor(300 - d)).
func DistancePoints(dist float64) int {
	points := int(math.Floor(config.DistancePointsBase - dist))
	if points < config.MinDistancePoints {
		return config.MinDistancePoints
	}
	return points
}
