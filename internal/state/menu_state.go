// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"fortress-defense/internal/config"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		startBattle(m.sm, m.session)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	text.Draw(screen, "FORTRESS DEFENSE", m.session.Face, cx-56, cy-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to defend", m.session.Face, cx-74, cy+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}

// startBattle переключает машину на новое сражение; ошибка старта
// оставляет текущее состояние.
func startBattle(sm *StateMachine, session *Session) {
	battle, err := session.NewBattle()
	if err != nil {
		session.Log.Error().Err(err).Msg("battle not started")
		return
	}
	sm.SetState(NewBattleState(sm, session, battle))
}
