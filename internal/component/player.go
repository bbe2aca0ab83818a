// internal/component/player.go
package component

// Player помечает сущность, управляемую игроком.
type Player struct {
	Scale float64
}
