// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"go-hongo-shooter/internal/assets"
	"go-hongo-shooter/internal/audio"
	"go-hongo-shooter/internal/config"
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/state"
	"go-hongo-shooter/internal/storage"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame адаптирует StateMachine к интерфейсу ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	variantID := flag.String("variant", defs.DefaultVariantID, "game variant: classic, retaliation or waves")
	defsPath := flag.String("defs", "", "optional JSON file with extra variant definitions")
	scoresPath := flag.String("scores", "hongo_scores.json", "file where the high score is kept")
	assetsDir := flag.String("assets", "assets", "directory with sprites and fonts/")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	mute := flag.Bool("mute", false, "disable sound")
	showMenu := flag.Bool("menu", false, "start from the variant selection menu")
	flag.Parse()

	if *defsPath != "" {
		if err := defs.LoadVariantDefinitions(*defsPath); err != nil {
			log.Fatalf("Failed to load variant definitions: %v", err)
		}
	}
	variant, err := defs.Variant(*variantID)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundManager()
	sound.SetMuted(*mute) // M в игре включает обратно
	if err := sound.Initialize(); err != nil {
		// без звука играть можно
		log.Printf("WARNING: audio disabled: %v", err)
	}
	defer sound.Cleanup()

	sprites := assets.NewSpriteManager(*assetsDir)
	sprites.LoadAll()
	fontPath := filepath.Join(*assetsDir, "fonts", "font.ttf")

	deps := state.Deps{
		Store:       storage.NewFileStore(*scoresPath),
		Sound:       sound,
		Sprites:     sprites,
		HUDFace:     assets.LoadFontFace(fontPath, config.HUDFontSize),
		OverlayFace: assets.LoadFontFace(fontPath, config.OverlayFontSize),
		Seed:        *seed,
	}

	sm := state.NewStateMachine()
	if *showMenu {
		sm.SetState(state.NewMenuState(sm, deps))
	} else {
		sm.SetState(state.NewGameState(sm, variant, deps))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
