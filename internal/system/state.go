// internal/system/state.go
package system

import (
	"github.com/rs/zerolog"

	"fortress-defense/internal/config"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/timer"
	"fortress-defense/internal/types"
)

// BattlePhase — фаза сражения целиком.
type BattlePhase int

const (
	PhaseSetup        BattlePhase = iota // Сражение ещё не начато
	PhaseRunning                         // Идёт волна
	PhaseIntermission                    // Пауза перед следующей волной
	PhaseVictory                         // Все волны зачищены
	PhaseDefeat                          // Крепость пала
)

func (p BattlePhase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhaseIntermission:
		return "intermission"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Ended — сражение завершено победой или поражением.
func (p BattlePhase) Ended() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

const intermissionGroup timer.Group = "intermission"

// StateSystem — слой состояния игры: решает, начинать ли следующую волну
// или объявить победу, и ведёт здоровье крепости.
type StateSystem struct {
	registry        *entity.Registry
	waves           *WaveScheduler
	deaths          *DeathSystem
	timers          *timer.Scheduler
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger

	phase          BattlePhase
	fortressHealth int
	intermission   float64
	wavesCleared   int
}

func NewStateSystem(registry *entity.Registry, waves *WaveScheduler, deaths *DeathSystem, timers *timer.Scheduler, eventDispatcher *event.Dispatcher, fortressHealth int, intermission float64, log zerolog.Logger) *StateSystem {
	ss := &StateSystem{
		registry:        registry,
		waves:           waves,
		deaths:          deaths,
		timers:          timers,
		eventDispatcher: eventDispatcher,
		log:             log,
		fortressHealth:  fortressHealth,
		intermission:    intermission,
	}
	eventDispatcher.Subscribe(event.WaveCleared, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.WaveCleared || s.phase != PhaseRunning {
		return
	}
	data, ok := e.Data.(event.WaveData)
	if !ok {
		return
	}
	s.wavesCleared++
	if !s.waves.HasNext() {
		s.end(true, data.Time)
		return
	}
	s.phase = PhaseIntermission
	next := data.Index + 1
	s.timers.At(data.Time+s.intermission, intermissionGroup, func(now float64) {
		s.startWave(next, now)
	})
	s.log.Info().Int("next_wave", next).Float64("in", s.intermission).Msg("intermission")
}

// Start начинает первую волну.
func (s *StateSystem) Start(now float64) error {
	if s.phase != PhaseSetup {
		return nil
	}
	return s.startWave(0, now)
}

func (s *StateSystem) startWave(index int, now float64) error {
	s.phase = PhaseRunning
	if err := s.waves.StartWave(index, now); err != nil {
		s.log.Error().Err(err).Int("wave", index).Msg("failed to start wave")
		s.end(false, now)
		return err
	}
	return nil
}

// Update проверяет прорывы: враг за линией крепости уходит с поля и
// отнимает здоровье крепости.
func (s *StateSystem) Update(now float64) {
	if s.phase.Ended() {
		return
	}
	for _, u := range s.registry.AllByTeam(types.TeamInvaders) {
		if u.Position.X > config.FortressLineX {
			continue
		}
		// Урон крепости засчитывается до вывода юнита: вывод последнего
		// врага закрывает волну, и поражение должно опередить победу.
		s.fortressHealth -= config.BreachDamage
		if s.fortressHealth < 0 {
			s.fortressHealth = 0
		}
		s.log.Info().Uint64("unit", uint64(u.ID)).Int("fortress_health", s.fortressHealth).Msg("fortress breached")
		s.eventDispatcher.Dispatch(event.Event{Type: event.FortressBreached, Data: event.BreachData{
			ID:             u.ID,
			TemplateID:     u.TemplateID,
			FortressHealth: s.fortressHealth,
			Time:           now,
		}})
		if s.fortressHealth == 0 {
			s.end(false, now)
			s.deaths.Withdraw(u)
			return
		}
		s.deaths.Withdraw(u)
	}
}

func (s *StateSystem) end(victory bool, now float64) {
	if s.phase.Ended() {
		return
	}
	s.phase = PhaseDefeat
	if victory {
		s.phase = PhaseVictory
	}
	s.timers.CancelGroup(intermissionGroup)
	s.waves.Cancel()
	s.log.Info().Bool("victory", victory).Int("waves", s.wavesCleared).Msg("battle ended")
	s.eventDispatcher.Dispatch(event.Event{Type: event.BattleEnded, Data: event.BattleEndedData{
		Victory: victory,
		Waves:   s.wavesCleared,
		Time:    now,
	}})
}

func (s *StateSystem) Current() BattlePhase { return s.phase }
func (s *StateSystem) FortressHealth() int  { return s.fortressHealth }
func (s *StateSystem) WavesCleared() int    { return s.wavesCleared }
