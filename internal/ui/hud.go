// internal/ui/hud.go
package ui

import (
	"go-hongo-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD рисует счёт, рекорд и оставшиеся жизни.
type HUD struct {
	face     font.Face
	lifeIcon *ebiten.Image
}

func NewHUD(face font.Face, lifeIcon *ebiten.Image) *HUD {
	return &HUD{face: face, lifeIcon: lifeIcon}
}

// Draw рисует HUD поверх игрового поля.
func (h *HUD) Draw(screen *ebiten.Image, scoreText, highScoreText string, lives int) {
	drawTextTopLeft(screen, scoreText, h.face, config.ScoreTextX, config.ScoreTextY, config.TextColor)
	drawTextTopLeft(screen, highScoreText, h.face, config.ScoreTextX, config.HighScoreTextY, config.TextColor)
	h.drawLives(screen, lives)
}

// drawLives рисует по иконке на жизнь справа налево.
func (h *HUD) drawLives(screen *ebiten.Image, lives int) {
	if h.lifeIcon == nil {
		return
	}
	b := h.lifeIcon.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sx := config.LifeIconSize / float64(b.Dx())
	sy := config.LifeIconSize / float64(b.Dy())
	for i := 0; i < lives; i++ {
		x := float64(config.LifeIconStartX - i*config.LifeIconSpacing)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x-config.LifeIconSize/2, config.LifeIconY-config.LifeIconSize/2)
		screen.DrawImage(h.lifeIcon, op)
	}
}
