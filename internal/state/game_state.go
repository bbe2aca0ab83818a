// internal/state/game_state.go
package state

import (
	"go-hongo-shooter/internal/app"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/input"
	"go-hongo-shooter/internal/ui"
	"go-hongo-shooter/pkg/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	deps          Deps
	game          *app.Game
	renderer      *render.SpriteRenderer
	hud           *ui.HUD
	waveIndicator *ui.WaveIndicator
	gameOver      *ui.GameOverOverlay
}

func NewGameState(sm *StateMachine, variant defs.VariantDefinition, deps Deps) *GameState {
	gameLogic := app.NewGame(variant, app.Options{
		Seed:  deps.Seed,
		Store: deps.Store,
		Sound: deps.Sound,
	})

	gs := &GameState{
		sm:       sm,
		deps:     deps,
		game:     gameLogic,
		renderer: render.NewSpriteRenderer(deps.Sprites),
		hud:      ui.NewHUD(deps.HUDFace, deps.Sprites.Get(config.SpriteLife)),
		gameOver: ui.NewGameOverOverlay(deps.OverlayFace),
	}
	// номер группы показываем только там, где враги идут группами
	if variant.SpawnPolicy == defs.SpawnGroup {
		gs.waveIndicator = ui.NewWaveIndicator(config.ScreenWidth/2, config.ScoreTextY, deps.HUDFace)
	}
	return gs
}

// GetGame отдаёт игровую логику (для паузы и отладки).
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	log.Printf("Entering game: %s", g.game)
}

func (g *GameState) Update(deltaTime float64) {
	in := pollInput()
	if in.Pause && !g.game.IsGameOver() {
		g.sm.SetState(NewPauseState(g.sm, g, g.deps))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if m, ok := g.deps.Sound.(muter); ok {
			log.Printf("Sound muted: %v", m.ToggleMute())
		}
	}
	g.game.Update(deltaTime, in)
}

// muter — звук, который умеет выключаться (audio.SoundManager).
type muter interface {
	ToggleMute() bool
}

// pollInput снимает состояние клавиатуры за кадр.
// Стрелки и A/D двигают игрока, пробел стреляет, а в конце партии перезапускает.
func pollInput() input.State {
	return input.State{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   pausePressed(),
	}
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen, g.game.ScoreText(), g.game.HighScoreText(), g.game.Lives())
	if g.waveIndicator != nil {
		g.waveIndicator.Draw(screen, g.game.ECS.GameState.Wave)
	}
	if msg, ok := g.game.GameOverText(); ok {
		g.gameOver.Draw(screen, msg)
	}
}

func (g *GameState) Exit() {}
