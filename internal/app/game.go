// internal/app/game.go
package app

import (
	"fmt"
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/input"
	"go-hongo-shooter/internal/storage"
	"go-hongo-shooter/internal/system"
	"go-hongo-shooter/internal/utils"
	"log"
	"strconv"
)

// Options — внешние зависимости игры.
type Options struct {
	Seed  int64         // 0 — сид от текущего времени
	Store storage.Store // где хранится рекорд; nil — без сохранения
	Sound SoundPlayer   // nil — без звука
}

// Game holds the whole mutable game state and the systems that advance it.
type Game struct {
	ECS             *entity.ECS
	Variant         defs.VariantDefinition
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Store           storage.Store
	Sound           SoundPlayer

	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EnemyFireSystem  *system.EnemyFireSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
}

// NewGame собирает игру для варианта и сразу начинает первую партию.
// Рекорд читается из хранилища только здесь.
func NewGame(variant defs.VariantDefinition, opts Options) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	sound := opts.Sound
	if sound == nil {
		sound = NopSound{}
	}

	g := &Game{
		ECS:             ecs,
		Variant:         variant,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		Store:           opts.Store,
		Sound:           sound,
	}
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, variant, opts.Store, g.MovementSystem, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, variant, g.Rng, eventDispatcher, g.StateSystem)
	g.EnemyFireSystem = system.NewEnemyFireSystem(ecs, variant.EnemyFire, g.Rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, variant.ScorePolicy, eventDispatcher, g.StateSystem)

	eventDispatcher.SubscribeAll(&soundListener{sound: sound},
		event.PlayerFired, event.EnemyFired, event.EnemyKilled, event.LifeLost, event.GameOver)

	ecs.GameState.HighScore = storage.LoadHighScore(opts.Store)
	g.startRound()
	log.Printf("Variant %q started, high score %d", variant.ID, ecs.GameState.HighScore)
	return g
}

// Update продвигает игру на один кадр.
func (g *Game) Update(deltaTime float64, in input.State) {
	gs := g.ECS.GameState
	gs.Time += deltaTime

	if gs.Phase == component.GameOverPhase {
		if in.Restart {
			g.Restart()
		}
		return
	}

	g.PlayerSystem.Update(in)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update()
	g.WaveSystem.Update()
	if g.IsGameOver() {
		return
	}
	g.EnemyFireSystem.Update()
	g.CombatSystem.Update()
	g.StateSystem.Update()
}

// Restart начинает новую партию: счёт 0, три жизни, мир пересоздан.
func (g *Game) Restart() {
	g.startRound()
	log.Println("Game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (g *Game) startRound() {
	g.ECS.Clear()
	g.StateSystem.Reset()
	system.SpawnPlayer(g.ECS)
	g.EnemyFireSystem.Delay()
	g.WaveSystem.SpawnWave()
}

func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.Phase == component.GameOverPhase
}

func (g *Game) Score() int     { return g.ECS.GameState.Score }
func (g *Game) HighScore() int { return g.ECS.GameState.HighScore }
func (g *Game) Lives() int     { return g.ECS.GameState.Lives }

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameState.Time
}

// ScoreText — "Puntos: {score}"
func (g *Game) ScoreText() string {
	return config.ScoreLabel + strconv.Itoa(g.Score())
}

// HighScoreText — "High Score: {highScore}"
func (g *Game) HighScoreText() string {
	return config.HighScoreLabel + strconv.Itoa(g.HighScore())
}

// GameOverText возвращает текст оверлея, если игра окончена.
func (g *Game) GameOverText() (string, bool) {
	if !g.IsGameOver() {
		return "", false
	}
	return config.GameOverMessage, true
}

func (g *Game) String() string {
	gs := g.ECS.GameState
	return fmt.Sprintf("%s: %s score=%d lives=%d enemies=%d projectiles=%d",
		g.Variant.ID, gs.Phase, gs.Score, gs.Lives, len(g.ECS.Enemies), len(g.ECS.Projectiles))
}
