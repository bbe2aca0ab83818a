package assets

import (
	"errors"
	"fmt"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/pkg/render"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// SpriteManager загружает и кэширует спрайты по ключу.
type SpriteManager struct {
	dir     string
	sprites map[string]*ebiten.Image
}

// NewSpriteManager создает менеджер для каталога с PNG-файлами.
func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[string]*ebiten.Image),
	}
}

// LoadAll загружает все спрайты из config.SpriteFiles.
// Отсутствующие файлы заменяются сгенерированными заглушками.
func (m *SpriteManager) LoadAll() {
	for key, file := range config.SpriteFiles {
		m.load(key, file)
	}
}

func (m *SpriteManager) load(key, file string) {
	if _, ok := m.sprites[key]; ok {
		return
	}
	path := filepath.Join(m.dir, file)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("WARNING: failed to load sprite %s from %s: %v", key, path, err)
		}
		img = placeholder(key)
	}
	m.sprites[key] = img
}

// Get возвращает спрайт; для неизвестного ключа создаётся заглушка.
func (m *SpriteManager) Get(key string) *ebiten.Image {
	if img, ok := m.sprites[key]; ok {
		return img
	}
	img := placeholder(key)
	m.sprites[key] = img
	return img
}

// placeholder рисует простую фигуру вместо отсутствующего PNG.
func placeholder(key string) *ebiten.Image {
	size := float32(config.PlayerSize)
	switch key {
	case config.SpriteBackground:
		img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
		img.Fill(config.BackgroundColor)
		return img
	case config.SpriteBullet:
		img := ebiten.NewImage(int(config.BulletWidth), int(config.BulletHeight))
		img.Fill(config.BulletColor)
		return img
	case config.SpriteEnemyBullet:
		img := ebiten.NewImage(int(config.EnemyBulletWidth), int(config.EnemyBulletHeight))
		img.Fill(config.EnemyBulletColor)
		return img
	case config.SpritePlayer, config.SpriteLife:
		img := ebiten.NewImage(int(size), int(size))
		// шляпка гриба и ножка
		vector.DrawFilledCircle(img, size/2, size/2, size/2, config.PlayerColor, true)
		vector.DrawFilledRect(img, size*3/8, size/2, size/4, size/2, color.White, true)
		return img
	case config.SpriteEnemy1, config.SpriteEnemy2:
		c := config.EnemyColors[0]
		if key == config.SpriteEnemy2 {
			c = config.EnemyColors[1]
		}
		img := ebiten.NewImage(int(size), int(size))
		vector.DrawFilledRect(img, 0, size/4, size, size/2, c, true)
		vector.DrawFilledCircle(img, size/2, size/2, size/4, render.DarkenColor(c), true)
		return img
	}
	img := ebiten.NewImage(int(size), int(size))
	img.Fill(color.RGBA{255, 0, 255, 255})
	return img
}

// LoadFontFace загружает TTF из каталога шрифтов. Без файла используется basicfont.
func LoadFontFace(path string, size float64) font.Face {
	fontData, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("WARNING: failed to read font %s: %v", path, err)
		}
		return basicfont.Face7x13
	}
	face, err := parseFace(fontData, size)
	if err != nil {
		log.Printf("WARNING: %v, falling back to basicfont", err)
		return basicfont.Face7x13
	}
	return face
}

func parseFace(data []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
