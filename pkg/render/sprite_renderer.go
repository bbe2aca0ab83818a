package render

import (
	"go-hongo-shooter/internal/component"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSource отдаёт изображение по ключу спрайта.
type SpriteSource interface {
	Get(key string) *ebiten.Image
}

// SpriteRenderer рисует фон и все сущности с Renderable.
type SpriteRenderer struct {
	sprites SpriteSource
}

func NewSpriteRenderer(sprites SpriteSource) *SpriteRenderer {
	return &SpriteRenderer{sprites: sprites}
}

// Draw рисует кадр. Сущности рисуются по возрастанию ID.
func (r *SpriteRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	r.drawBackground(screen)

	for _, id := range ecs.RenderableIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		r.drawSprite(screen, ecs.Renderables[id], pos)
	}
}

func (r *SpriteRenderer) drawBackground(screen *ebiten.Image) {
	bg := r.sprites.Get(config.SpriteBackground)
	b := bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.ScreenWidth)/float64(b.Dx()), float64(config.ScreenHeight)/float64(b.Dy()))
	screen.DrawImage(bg, op)
}

// drawSprite масштабирует спрайт под размер Renderable и центрирует на позиции.
func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, rend *component.Renderable, pos *component.Position) {
	img := r.sprites.Get(rend.Sprite)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rend.Width/float64(b.Dx()), rend.Height/float64(b.Dy()))
	op.GeoM.Translate(pos.X-rend.Width/2, pos.Y-rend.Height/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
