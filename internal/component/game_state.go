package component

// Phase — фаза игры
type Phase int

const (
	PlayingPhase Phase = iota
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case PlayingPhase:
		return "playing"
	case GameOverPhase:
		return "game over"
	}
	return "unknown"
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase     Phase
	Score     int
	Lives     int
	HighScore int
	Wave      int // номер текущей волны (или одиночного врага)

	// Time — игровое время в секундах; все кулдауны сравниваются с ним
	Time              float64
	NextShotTime      float64
	NextEnemyFireTime float64
}
