// internal/state/battle_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fortress-defense/internal/app"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/render"
	"fortress-defense/internal/system"
	"fortress-defense/internal/types"
	"fortress-defense/internal/ui"
)

const (
	buttonWidth  = 120
	buttonHeight = 32
	buttonGap    = 8
	hudHeight    = 48 // Нижняя панель: клики по ней не применяют способность
)

var skillKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// BattleState — идущее сражение: ввод командира, скорость, отрисовка.
type BattleState struct {
	sm       *StateMachine
	session  *Session
	battle   *app.Battle
	renderer *render.BattleRenderer

	skills   []defs.SkillTemplate
	buttons  []*ui.Button
	selected int
	speed    int

	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.FortressHealthIndicator
}

func NewBattleState(sm *StateMachine, session *Session, battle *app.Battle) *BattleState {
	s := &BattleState{
		sm:              sm,
		session:         session,
		battle:          battle,
		renderer:        render.NewBattleRenderer(battle, session.Face),
		skills:          battle.CommanderSkills(),
		speed:           1,
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 24, session.Face),
		healthIndicator: ui.NewFortressHealthIndicator(12, 12, 200, 16, session.Face),
	}
	top := config.ScreenHeight - hudHeight + (hudHeight-buttonHeight)/2
	for i, sk := range s.skills {
		x := 12 + i*(buttonWidth+buttonGap)
		label := fmt.Sprintf("%d %s", i+1, sk.Name)
		if sk.Name == "" {
			label = fmt.Sprintf("%d %s", i+1, sk.ID)
		}
		s.buttons = append(s.buttons, ui.NewButton(image.Rect(x, top, x+buttonWidth, top+buttonHeight), label, session.Face))
	}
	return s
}

func (s *BattleState) Enter() {}

func (s *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.current = NewPauseState(s.sm, s, s.session)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.speed = s.speed%3 + 1
	}
	s.handleCommander()

	// Battle ограничивает шаг сам; ускорение — несколько шагов за кадр.
	for i := 0; i < s.speed; i++ {
		s.battle.Update(deltaTime)
	}
	s.refreshButtons()

	if s.battle.Phase().Ended() {
		s.sm.SetState(NewResultState(s.sm, s.session, s.battle))
	}
}

func (s *BattleState) handleCommander() {
	for i, key := range skillKeys {
		if i < len(s.skills) && inpututil.IsKeyJustPressed(key) {
			s.selected = i
		}
	}
	for i, b := range s.buttons {
		if b.IsClicked() {
			s.selected = i
			return
		}
	}
	if len(s.skills) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if y >= config.ScreenHeight-hudHeight {
		return
	}
	s.battle.CastCommander(s.skills[s.selected].ID, types.Vec{X: float64(x), Y: float64(y)})
}

func (s *BattleState) refreshButtons() {
	for i, b := range s.buttons {
		sk := s.skills[i]
		b.Selected = i == s.selected
		b.Disabled = !s.battle.CommanderReady(sk.ID)
		b.Progress = 1
		if sk.Cooldown > 0 {
			b.Progress = 1 - s.battle.CommanderCooldown(sk.ID)/sk.Cooldown
		}
	}
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)

	// Область действия выбранной способности под курсором.
	if len(s.skills) > 0 {
		if r := s.skills[s.selected].Radius; r > 0 {
			x, y := ebiten.CursorPosition()
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, config.CommanderColor, true)
		}
	}

	vector.DrawFilledRect(screen, 0, config.ScreenHeight-hudHeight, config.ScreenWidth, hudHeight, config.HealthBarBack, false)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
	s.healthIndicator.Draw(screen, s.battle.FortressHealth(), s.session.Settings.FortressHealth)
	s.waveIndicator.Draw(screen, s.battle.Wave()+1, len(s.battle.Library.Waves))

	status := s.battle.Phase().String()
	if s.battle.Phase() == system.PhaseIntermission {
		status = "next wave incoming"
	}
	info := fmt.Sprintf("%s  x%d  enemies %d", status, s.speed, s.battle.WaveScheduler.Live())
	text.Draw(screen, info, s.session.Face, config.ScreenWidth-260, 24, config.TextLightColor)
}

func (s *BattleState) Exit() {}
