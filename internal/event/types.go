package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг сбит снарядом игрока, Data: KillData
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг ушёл за нижнюю границу
	PlayerHit       EventType = "PlayerHit"       // Игрок задет врагом или вражеским снарядом
	LifeLost        EventType = "LifeLost"        // Потеряна жизнь, Data: оставшиеся жизни (int)
	PlayerFired     EventType = "PlayerFired"     // Игрок выстрелил
	EnemyFired      EventType = "EnemyFired"      // Враг выстрелил
	WaveSpawned     EventType = "WaveSpawned"     // Появилась новая волна, Data: номер волны (int)
	GameOver        EventType = "GameOver"        // Жизни закончились, Data: итоговый счёт (int)
	HighScoreBeaten EventType = "HighScoreBeaten" // Новый рекорд, Data: рекорд (int)
	GameRestarted   EventType = "GameRestarted"
)

// KillData — данные события EnemyKilled
type KillData struct {
	Points   int
	Distance float64
}
