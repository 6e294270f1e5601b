// internal/state/result_state.go
package state

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"fortress-defense/internal/app"
	"fortress-defense/internal/config"
	"fortress-defense/internal/system"
)

// ResultState — итог сражения; R начинает новое.
type ResultState struct {
	sm      *StateMachine
	session *Session
	battle  *app.Battle
	lines   []string
}

func NewResultState(sm *StateMachine, session *Session, battle *app.Battle) *ResultState {
	return &ResultState{sm: sm, session: session, battle: battle}
}

func (s *ResultState) Enter() {
	title := "DEFEAT"
	if s.battle.Phase() == system.PhaseVictory {
		title = "VICTORY"
	}
	s.lines = []string{
		title,
		fmt.Sprintf("waves cleared: %d", s.battle.StateSystem.WavesCleared()),
		fmt.Sprintf("fortress: %d", s.battle.FortressHealth()),
		fmt.Sprintf("time: %.1fs", s.battle.Now()),
	}
	s.lines = append(s.lines, s.killLines()...)
	s.lines = append(s.lines, "", "press R to fight again")
}

// killLines читает сводку из журнала, если он включён.
func (s *ResultState) killLines() []string {
	if s.session.Journal == nil {
		return nil
	}
	kills, err := s.session.Journal.KillsByTemplate()
	if err != nil {
		s.session.Log.Error().Err(err).Msg("failed to read journal")
		return nil
	}
	ids := make([]string, 0, len(kills))
	for id := range kills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []string
	for _, id := range ids {
		out = append(out, fmt.Sprintf("  %s fallen: %d", id, kills[id]))
	}
	return out
}

func (s *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		startBattle(s.sm, s.session)
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight/2 - len(s.lines)*9
	for _, line := range s.lines {
		text.Draw(screen, line, s.session.Face, config.ScreenWidth/2-80, y, config.TextLightColor)
		y += 18
	}
}

func (s *ResultState) Exit() {}
