package app

import "go-hongo-shooter/internal/event"

// SoundPlayer — звуковые эффекты игры. Реализуется audio.SoundManager.
type SoundPlayer interface {
	PlayShot()
	PlayEnemyShot()
	PlayExplosion()
	PlayLifeLost()
	PlayGameOver()
}

// NopSound ничего не играет.
type NopSound struct{}

func (NopSound) PlayShot()      {}
func (NopSound) PlayEnemyShot() {}
func (NopSound) PlayExplosion() {}
func (NopSound) PlayLifeLost()  {}
func (NopSound) PlayGameOver()  {}

type soundListener struct {
	sound SoundPlayer
}

func (l *soundListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerFired:
		l.sound.PlayShot()
	case event.EnemyFired:
		l.sound.PlayEnemyShot()
	case event.EnemyKilled:
		l.sound.PlayExplosion()
	case event.LifeLost:
		if lives, ok := e.Data.(int); ok && lives == 0 {
			return // GameOver прозвучит отдельно
		}
		l.sound.PlayLifeLost()
	case event.GameOver:
		l.sound.PlayGameOver()
	}
}
