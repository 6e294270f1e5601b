// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fortress-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сражение и рисует его под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	session       *Session
}

func NewPauseState(sm *StateMachine, prevState State, session *Session) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		session:       session,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Возврат без Enter/Exit предыдущего состояния: сражение продолжается.
		s.stateMachine.current = s.previousState
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)
	text.Draw(screen, "PAUSED", s.session.Face, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
