// internal/component/projectile.go
package component

// Side — чей это снаряд
type Side int

const (
	PlayerSide Side = iota
	EnemySide
)

func (s Side) String() string {
	if s == EnemySide {
		return "enemy"
	}
	return "player"
}

// Projectile представляет летящий снаряд.
// Скорость хранится в Velocity, снаряд летит строго по вертикали.
type Projectile struct {
	Side Side
}
