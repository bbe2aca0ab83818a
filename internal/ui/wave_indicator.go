package ui

import (
	"go-hongo-shooter/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей группы римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.MenuHighlightColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны по центру X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 {
		return
	}
	s := toRoman(wave)
	bounds := text.BoundString(i.face, s)
	x := i.X - bounds.Dx()/2
	y := i.Y + i.face.Metrics().Ascent.Ceil()

	textColor := i.Color
	if wave%10 == 0 {
		textColor = config.GameOverColor // каждая десятая группа
	}
	drawOutlinedText(screen, s, i.face, x, y, i.OutlineThickness, textColor, i.OutlineColor)
}
