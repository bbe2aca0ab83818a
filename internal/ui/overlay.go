package ui

import (
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameOverOverlay — надпись "GAME OVER" с подсказкой о перезапуске.
type GameOverOverlay struct {
	face font.Face
}

func NewGameOverOverlay(face font.Face) *GameOverOverlay {
	return &GameOverOverlay{face: face}
}

func (o *GameOverOverlay) Draw(screen *ebiten.Image, msg string) {
	shade := render.WithAlpha(config.BackgroundColor, 96)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, shade, false)
	drawCenteredLines(screen, msg, o.face, config.ScreenWidth/2, config.ScreenHeight/2,
		config.OverlayLineSpace, config.GameOverColor)
}

// PauseOverlay затемняет экран и пишет "PAUSA".
type PauseOverlay struct {
	face font.Face
}

func NewPauseOverlay(face font.Face) *PauseOverlay {
	return &PauseOverlay{face: face}
}

func (o *PauseOverlay) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseShadeColor, false)
	drawCenteredLines(screen, config.PausedMessage, o.face, config.ScreenWidth/2, config.ScreenHeight/2,
		config.OverlayLineSpace, config.TextColor)
}
