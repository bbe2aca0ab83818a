package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawTextTopLeft рисует текст так, что (x, y) — верхний левый угол строки.
func drawTextTopLeft(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// drawCenteredLines рисует строки по центру относительно (cx, cy).
func drawCenteredLines(screen *ebiten.Image, msg string, face font.Face, cx, cy, lineSpace int, clr color.Color) {
	lines := strings.Split(msg, "\n")
	top := cy - (len(lines)-1)*lineSpace/2
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		x := cx - bounds.Dx()/2 - bounds.Min.X
		y := top + i*lineSpace - bounds.Dy()/2 - bounds.Min.Y
		text.Draw(screen, line, face, x, y, clr)
	}
}

// drawOutlinedText рисует текст с обводкой заданной толщины.
func drawOutlinedText(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, fill)
}
