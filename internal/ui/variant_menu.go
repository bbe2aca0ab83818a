// internal/ui/variant_menu.go
package ui

import (
	"fmt"
	"go-hongo-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	menuItemWidth   = 420
	menuItemHeight  = 48
	menuItemSpacing = 16
	menuTopY        = 200
)

// MenuItem — строка меню выбора режима.
type MenuItem struct {
	ID    string
	Label string
}

// VariantMenu — вертикальный список режимов с выделенным пунктом.
type VariantMenu struct {
	Items    []MenuItem
	Selected int
	face     font.Face
	title    font.Face
}

func NewVariantMenu(items []MenuItem, face, title font.Face) *VariantMenu {
	return &VariantMenu{Items: items, face: face, title: title}
}

// Move сдвигает выделение, по кругу.
func (m *VariantMenu) Move(delta int) {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = (m.Selected + delta + len(m.Items)) % len(m.Items)
}

// Select выделяет пункт по индексу; индекс вне списка игнорируется.
func (m *VariantMenu) Select(index int) bool {
	if index < 0 || index >= len(m.Items) {
		return false
	}
	m.Selected = index
	return true
}

// Current возвращает выделенный пункт.
func (m *VariantMenu) Current() (MenuItem, bool) {
	if len(m.Items) == 0 {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m *VariantMenu) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCenteredLines(screen, config.WindowTitle, m.title, config.ScreenWidth/2, 120, config.OverlayLineSpace, config.TextColor)

	x := float32(config.ScreenWidth-menuItemWidth) / 2
	for i, item := range m.Items {
		y := float32(menuTopY + i*(menuItemHeight+menuItemSpacing))
		border := config.TextColor
		if i == m.Selected {
			border = config.MenuHighlightColor
			vector.DrawFilledRect(screen, x, y, menuItemWidth, menuItemHeight, config.PauseShadeColor, false)
		}
		vector.StrokeRect(screen, x, y, menuItemWidth, menuItemHeight, 2, border, false)

		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		drawCenteredLines(screen, label, m.face, config.ScreenWidth/2, int(y)+menuItemHeight/2, 0, border)
	}
}
