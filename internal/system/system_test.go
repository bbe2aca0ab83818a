package system

import (
	"math"
	"testing"

	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/entity"
	"go-hongo-shooter/internal/event"
	"go-hongo-shooter/internal/input"
	"go-hongo-shooter/internal/storage"
	"go-hongo-shooter/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLives struct{ calls int }

func (c *countingLives) LoseLife() { c.calls++ }

func TestDistancePoints(t *testing.T) {
	tests := []struct {
		dist float64
		want int
	}{
		{0, 300},
		{50, 250},
		{50.7, 249},
		{294.5, 5},
		{295, 5},
		{1000, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DistancePoints(tt.dist), "dist=%v", tt.dist)
	}
}

func TestProjectileCleanupPerSide(t *testing.T) {
	ecs := entity.NewECS()
	upGone := SpawnProjectile(ecs, component.PlayerSide, 10, -51)
	upKept := SpawnProjectile(ecs, component.PlayerSide, 10, -49)
	downGone := SpawnProjectile(ecs, component.EnemySide, 10, config.ScreenHeight+51)
	downKept := SpawnProjectile(ecs, component.EnemySide, 10, -100)

	NewProjectileSystem(ecs).Update()

	assert.NotContains(t, ecs.Projectiles, upGone)
	assert.Contains(t, ecs.Projectiles, upKept)
	assert.NotContains(t, ecs.Projectiles, downGone)
	assert.Contains(t, ecs.Projectiles, downKept, "enemy shots above the screen are still falling")
	assert.NotContains(t, ecs.Positions, upGone, "all components are removed")
}

func TestMovementIntegratesAndDrifts(t *testing.T) {
	ecs := entity.NewECS()
	drift := &component.Drift{BaseX: 200, Amplitude: 40, Frequency: math.Pi, Phase: 0}
	id := SpawnEnemy(ecs, 200, 0, 1, 100, 1, drift)

	ecs.GameState.Time = 0.5
	NewMovementSystem(ecs).Update(0.5)

	pos := ecs.Positions[id]
	assert.InDelta(t, 50.0, pos.Y, 1e-9)
	assert.InDelta(t, 240.0, pos.X, 1e-9, "sin(pi/2) puts the enemy at full amplitude")
}

func TestMovementFreeze(t *testing.T) {
	ecs := entity.NewECS()
	SpawnEnemy(ecs, 100, 100, 1, 150, 0, nil)
	SpawnPlayer(ecs)
	ecs.Velocities[ecs.PlayerID].X = 250
	m := NewMovementSystem(ecs)

	m.Freeze()
	for _, v := range ecs.Velocities {
		assert.Zero(t, *v)
	}
}

func TestPlayerSystemVelocity(t *testing.T) {
	ecs := entity.NewECS()
	SpawnPlayer(ecs)
	s := NewPlayerSystem(ecs, event.NewDispatcher())

	s.Update(input.State{Right: true})
	assert.Equal(t, config.PlayerSpeed, ecs.Velocities[ecs.PlayerID].X)

	s.Update(input.State{})
	assert.Zero(t, ecs.Velocities[ecs.PlayerID].X)

	s.Update(input.State{Left: true})
	assert.Equal(t, -config.PlayerSpeed, ecs.Velocities[ecs.PlayerID].X)
}

func TestSingleSpawnRange(t *testing.T) {
	ecs := entity.NewECS()
	variant := defs.VariantLibrary[defs.VariantClassic]
	ws := NewWaveSystem(ecs, variant, utils.NewPRNGService(9), event.NewDispatcher(), &countingLives{})

	for i := 0; i < 200; i++ {
		ws.SpawnWave()
	}
	require.Len(t, ecs.Enemies, 200)
	for id, enemy := range ecs.Enemies {
		pos := ecs.Positions[id]
		assert.GreaterOrEqual(t, pos.X, float64(config.EnemySpawnMinX))
		assert.LessOrEqual(t, pos.X, float64(config.EnemySpawnMaxX))
		speed := ecs.Velocities[id].Y
		assert.GreaterOrEqual(t, speed, 180.0)
		assert.LessOrEqual(t, speed, 270.0)
		assert.Contains(t, []int{1, 2}, enemy.Kind)
		assert.Equal(t, config.EnemySprite(enemy.Kind), ecs.Renderables[id].Sprite)
	}
	assert.Equal(t, 200, ecs.GameState.Wave)
}

func TestEscapeCallsLifeLoser(t *testing.T) {
	ecs := entity.NewECS()
	lives := &countingLives{}
	variant := defs.VariantLibrary[defs.VariantRetaliation]
	ws := NewWaveSystem(ecs, variant, utils.NewPRNGService(1), event.NewDispatcher(), lives)
	SpawnEnemy(ecs, 100, 651, 1, 0, 1, nil)
	SpawnEnemy(ecs, 160, 651, 1, 0, 1, nil)
	SpawnEnemy(ecs, 220, 650, 1, 0, 1, nil)

	ws.Update()

	assert.Equal(t, 2, lives.calls)
	assert.Len(t, ecs.Enemies, 1, "an enemy exactly on the bound is still in play")
}

func TestEnemyFireDisabled(t *testing.T) {
	ecs := entity.NewECS()
	SpawnEnemy(ecs, 100, 100, 1, 0, 0, nil)
	fire := NewEnemyFireSystem(ecs, defs.EnemyFireDef{}, utils.NewPRNGService(1), event.NewDispatcher())

	ecs.GameState.Time = 100
	fire.Update()

	assert.Empty(t, ecs.Projectiles)
}

func TestEnemyFireScoreScaledInterval(t *testing.T) {
	ecs := entity.NewECS()
	SpawnEnemy(ecs, 100, 100, 1, 0, 0, nil)
	def := defs.VariantLibrary[defs.VariantWaves].EnemyFire
	fire := NewEnemyFireSystem(ecs, def, utils.NewPRNGService(1), event.NewDispatcher())

	ecs.GameState.Score = 100000
	ecs.GameState.Time = 10
	fire.Update()

	assert.InDelta(t, 10+defs.MinEnemyFireCooldown, ecs.GameState.NextEnemyFireTime, 1e-9)
}

func TestEnemyShotSpawnsBelowEnemy(t *testing.T) {
	ecs := entity.NewECS()
	SpawnEnemy(ecs, 100, 100, 1, 0, 0, nil)
	def := defs.EnemyFireDef{Enabled: true, Chance: 1, Cooldown: 1}
	fire := NewEnemyFireSystem(ecs, def, utils.NewPRNGService(1), event.NewDispatcher())

	fire.Update()

	ids := ecs.ProjectileIDs(component.EnemySide)
	require.Len(t, ids, 1)
	assert.Equal(t, 100.0, ecs.Positions[ids[0]].X)
	assert.Equal(t, 100+config.EnemyDisplaySize/2, ecs.Positions[ids[0]].Y)
	assert.Equal(t, config.EnemyBulletSpeed, ecs.Velocities[ids[0]].Y)
}

func TestStateSystemLoseLife(t *testing.T) {
	ecs := entity.NewECS()
	store := storage.NewMemoryStore()
	d := event.NewDispatcher()
	var lost []int
	d.Subscribe(event.LifeLost, event.ListenerFunc(func(e event.Event) { lost = append(lost, e.Data.(int)) }))
	gameOvers := 0
	d.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { gameOvers++ }))
	s := NewStateSystem(ecs, defs.VariantLibrary[defs.VariantClassic], store, NewMovementSystem(ecs), d)

	for i := 0; i < 5; i++ {
		s.LoseLife()
	}

	assert.Equal(t, []int{2, 1, 0}, lost)
	assert.Equal(t, 0, ecs.GameState.Lives)
	assert.Equal(t, component.GameOverPhase, s.Current())
	assert.Equal(t, 1, gameOvers, "one game over per episode")
}

func TestStateSystemUpdateCatchesZeroLives(t *testing.T) {
	ecs := entity.NewECS()
	s := NewStateSystem(ecs, defs.VariantLibrary[defs.VariantClassic], nil, NewMovementSystem(ecs), event.NewDispatcher())
	ecs.GameState.Lives = 0

	s.Update()

	assert.Equal(t, component.GameOverPhase, s.Current())
}

func TestStateSystemReset(t *testing.T) {
	ecs := entity.NewECS()
	s := NewStateSystem(ecs, defs.VariantLibrary[defs.VariantClassic], nil, NewMovementSystem(ecs), event.NewDispatcher())
	gs := ecs.GameState
	gs.Score, gs.Lives, gs.HighScore, gs.Phase, gs.Time = 40, 0, 40, component.GameOverPhase, 12

	s.Reset()

	assert.Equal(t, 0, gs.Score)
	assert.Equal(t, 3, gs.Lives)
	assert.Equal(t, 40, gs.HighScore)
	assert.Equal(t, component.PlayingPhase, gs.Phase)
	assert.Equal(t, 12.0, gs.NextShotTime)
}
