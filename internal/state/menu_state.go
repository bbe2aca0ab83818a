// internal/state/menu_state.go
package state

import (
	"go-hongo-shooter/internal/defs"
	"go-hongo-shooter/internal/ui"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что MenuState соответствует интерфейсу State
var _ State = (*MenuState)(nil)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// MenuState — выбор режима игры.
type MenuState struct {
	sm   *StateMachine
	deps Deps
	menu *ui.VariantMenu
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	var items []ui.MenuItem
	for _, id := range defs.VariantIDs() {
		def, err := defs.Variant(id)
		if err != nil {
			continue
		}
		label := def.Name
		if label == "" {
			label = def.ID
		}
		items = append(items, ui.MenuItem{ID: def.ID, Label: label})
	}
	return &MenuState{
		sm:   sm,
		deps: deps,
		menu: ui.NewVariantMenu(items, deps.HUDFace, deps.OverlayFace),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.menu.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.menu.Move(1)
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) && m.menu.Select(i) {
			m.start()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.start()
	}
}

func (m *MenuState) start() {
	item, ok := m.menu.Current()
	if !ok {
		return
	}
	def, err := defs.Variant(item.ID)
	if err != nil {
		log.Printf("WARNING: %v", err)
		return
	}
	m.sm.SetState(NewGameState(m.sm, def, m.deps))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.menu.Draw(screen)
}

func (m *MenuState) Exit() {}
