// component/movement.go
package component

import "math"

// Position — компонент позиции (центр спрайта)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Collider — прямоугольные границы сущности, центрированные на Position.
type Collider struct {
	Width, Height float64
}

// Drift — синусоидальный горизонтальный дрейф врага вокруг BaseX.
type Drift struct {
	BaseX     float64
	Amplitude float64
	Frequency float64 // радиан в секунду
	Phase     float64
}

// OffsetAt возвращает горизонтальное смещение в момент времени t.
func (d *Drift) OffsetAt(t float64) float64 {
	return d.Amplitude * math.Sin(d.Phase+d.Frequency*t)
}
