// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp ограничивает значение диапазоном [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RectsOverlap проверяет пересечение двух прямоугольников, заданных центром и размером.
// Касание краями пересечением не считается.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return math.Abs(x1-x2)*2 < w1+w2 && math.Abs(y1-y2)*2 < h1+h2
}
