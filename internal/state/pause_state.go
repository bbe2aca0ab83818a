// internal/state/pause_state.go
package state

import (
	"go-hongo-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: время не идёт, ввод не доходит до логики.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	overlay       *ui.PauseOverlay
}

func NewPauseState(sm *StateMachine, prevState State, deps Deps) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		overlay:       ui.NewPauseOverlay(deps.OverlayFace),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() {
		// SetState вызовет Enter у игры ещё раз, это безопасно
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.overlay.Draw(screen)
}

func (s *PauseState) Exit() {}
