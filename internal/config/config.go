// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
	WindowTitle  = "Hongo Shooter"

	// Игрок
	PlayerStartX   = 400.0
	PlayerStartY   = 520.0
	PlayerScale    = 2.0
	PlayerSize     = 32.0 // размер спрайта до масштабирования
	PlayerSpeed    = 250.0
	InitialLives   = 3
	ShotCooldown   = 0.3    // секунды между выстрелами
	BulletSpeed    = -300.0 // вверх
	BulletWidth    = 8.0

	// Враги
	EnemySpawnY       = -50.0
	EnemyEscapeY      = 650.0
	EnemyScale        = 1.5
	EnemySize         = 32.0
	EnemySpawnMinX    = 50
	EnemySpawnMaxX    = 750
	EnemyKinds        = 2
	EnemyBulletSpeed  = 250.0 // вниз
	EnemyBulletWidth  = 6.0
	EnemyBulletHeight = 14.0

	// Снаряды за пределами экрана
	PlayerBulletMinY = -50.0
	EnemyBulletMaxY  = ScreenHeight + 50.0

	// Очки
	FlatKillPoints     = 10
	DistancePointsBase = 300.0
	MinDistancePoints  = 5

	// HUD
	HUDFontSize      = 24
	OverlayFontSize  = 32
	ScoreTextX       = 20
	ScoreTextY       = 20
	HighScoreTextY   = 50
	LifeIconStartX   = 750
	LifeIconSpacing  = 40
	LifeIconY        = 30
	LifeIconScale    = 0.5
	OverlayLineSpace = 40
)

// Тексты интерфейса
const (
	ScoreLabel      = "Puntos: "
	HighScoreLabel  = "High Score: "
	GameOverMessage = "GAME OVER\nPresiona ESPACIO para reiniciar"
	PausedMessage   = "PAUSA"
)

// Ключи спрайтов
const (
	SpriteBackground  = "sky"
	SpritePlayer      = "player"
	SpriteBullet      = "bullet"
	SpriteEnemyBullet = "enemy_bullet"
	SpriteEnemy1      = "enemy1"
	SpriteEnemy2      = "enemy2"
	SpriteLife        = "life"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 40, 255}
	TextColor        = color.RGBA{255, 255, 255, 255}
	GameOverColor    = color.RGBA{255, 0, 0, 255}
	PauseShadeColor  = color.RGBA{0, 0, 0, 128}
	PlayerColor      = color.RGBA{200, 120, 60, 255}
	BulletColor      = color.RGBA{255, 230, 90, 255}
	EnemyBulletColor = color.RGBA{255, 80, 200, 255}
	EnemyColors      = []color.RGBA{
		{90, 200, 90, 255},  // enemy1
		{120, 140, 255, 255}, // enemy2
	}
	MenuHighlightColor = color.RGBA{255, 215, 0, 255}
)

// SpriteFiles сопоставляет ключ спрайта с файлом в каталоге ассетов.
var SpriteFiles = map[string]string{
	SpriteBackground:  "fondo.png",
	SpritePlayer:      "hongo.png",
	SpriteBullet:      "armas.png",
	SpriteEnemyBullet: "enemy_bullet.png",
	SpriteEnemy1:      "enemy_1.png",
	SpriteEnemy2:      "enemy_2.png",
	SpriteLife:        "hongo.png",
}

// EnemySprite возвращает ключ спрайта для вида врага (1 или 2).
func EnemySprite(kind int) string {
	if kind == 2 {
		return SpriteEnemy2
	}
	return SpriteEnemy1
}

// Размеры на экране после масштабирования
const (
	PlayerDisplaySize = PlayerSize * PlayerScale
	EnemyDisplaySize  = EnemySize * EnemyScale
	BulletHeight      = PlayerDisplaySize / 2 // пуля примерно в половину игрока
	LifeIconSize      = PlayerSize * LifeIconScale
)
