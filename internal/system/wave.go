// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/event"
	"fortress-defense/internal/timer"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

// ErrUnknownWave возвращается StartWave для индекса вне списка волн.
var ErrUnknownWave = errors.New("unknown wave")

// WavePhase — состояние текущей волны.
type WavePhase int

const (
	WavePending  WavePhase = iota // Волна ещё не начата
	WaveActive                    // Таймеры появления ещё идут
	WaveClearing                  // Все враги вышли, часть ещё жива
	WaveCleared                   // Ни ожидающих появлений, ни живых врагов
)

func (p WavePhase) String() string {
	switch p {
	case WavePending:
		return "pending"
	case WaveActive:
		return "active"
	case WaveClearing:
		return "clearing"
	case WaveCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Spawner создаёт врага на линии.
type Spawner interface {
	Spawn(templateID string, team types.Team, pos types.Vec, lane *defs.Lane, now float64) (*component.Unit, error)
}

// WaveScheduler запускает появление врагов по таймерам и следит за
// зачисткой волны. О зачистке сообщает событие WaveCleared.
type WaveScheduler struct {
	library         *defs.Library
	timers          *timer.Scheduler
	spawner         Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger

	index      int
	phase      WavePhase
	generation int
	group      timer.Group
	pending    int
	spawned    int
	live       map[types.EntityID]struct{}
}

func NewWaveScheduler(library *defs.Library, timers *timer.Scheduler, spawner Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, log zerolog.Logger) *WaveScheduler {
	return &WaveScheduler{
		library:         library,
		timers:          timers,
		spawner:         spawner,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log,
		index:           -1,
		live:            make(map[types.EntityID]struct{}),
	}
}

// StartWave отменяет таймеры и учёт предыдущей волны и планирует по одному
// таймеру на каждое событие появления новой волны.
func (s *WaveScheduler) StartWave(index int, now float64) error {
	wave, ok := s.library.Wave(index)
	if !ok {
		return fmt.Errorf("start wave %d: %w", index, ErrUnknownWave)
	}
	s.Cancel()

	s.generation++
	s.group = timer.Group(fmt.Sprintf("wave-%d-%d", index, s.generation))
	s.index = index
	s.phase = WaveActive
	s.pending = len(wave.Spawns)
	s.spawned = 0

	for _, spawn := range wave.Spawns {
		offset := spawn.Offset
		if offset < 0 {
			offset = 0
		}
		s.timers.At(now+offset, s.group, func(at float64) {
			s.fire(spawn, at)
		})
	}

	s.log.Info().Int("wave", index).Str("name", wave.Name).Int("events", len(wave.Spawns)).Msg("wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Index: index, Time: now}})

	// Пустая волна зачищается сразу.
	s.evaluate(now)
	return nil
}

func (s *WaveScheduler) fire(spawn defs.SpawnEvent, now float64) {
	s.pending--

	lane, ok := s.library.Lane(spawn.Lane)
	if !ok {
		s.log.Warn().Str("lane", spawn.Lane).Str("unit", spawn.UnitID).Msg("spawn rejected: unknown lane")
	} else {
		for i := 0; i < spawn.Count; i++ {
			pos := s.rng.Jitter(lane.Spawn, config.SpawnJitter)
			u, err := s.spawner.Spawn(spawn.UnitID, types.TeamInvaders, pos, &lane, now)
			if err != nil {
				s.log.Warn().Err(err).Str("unit", spawn.UnitID).Str("lane", lane.ID).Msg("spawn rejected")
				continue
			}
			s.live[u.ID] = struct{}{}
			s.spawned++
		}
	}

	if s.pending == 0 && s.phase == WaveActive {
		s.phase = WaveClearing
	}
	s.evaluate(now)
}

// OnEnemyRemoved снимает врага с учёта. Повторные вызовы с тем же id игнорируются.
func (s *WaveScheduler) OnEnemyRemoved(id types.EntityID, now float64) {
	if _, ok := s.live[id]; !ok {
		return
	}
	delete(s.live, id)
	s.evaluate(now)
}

func (s *WaveScheduler) evaluate(now float64) {
	if s.phase != WaveActive && s.phase != WaveClearing {
		return
	}
	if !s.IsWaveComplete() {
		return
	}
	s.phase = WaveCleared
	s.log.Info().Int("wave", s.index).Int("spawned", s.spawned).Msg("wave cleared")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{
		Index:   s.index,
		Spawned: s.spawned,
		Time:    now,
	}})
}

// Cancel отменяет таймеры текущей волны и забывает её живых врагов.
func (s *WaveScheduler) Cancel() {
	if s.group != "" {
		if n := s.timers.CancelGroup(s.group); n > 0 {
			s.log.Debug().Int("wave", s.index).Int("timers", n).Msg("wave timers cancelled")
		}
	}
	s.pending = 0
	clear(s.live)
	if s.phase == WaveActive || s.phase == WaveClearing {
		s.phase = WavePending
	}
}

// IsWaveComplete — нет ни ожидающих таймеров, ни живых врагов начатой волны.
func (s *WaveScheduler) IsWaveComplete() bool {
	return s.index >= 0 && s.pending == 0 && len(s.live) == 0
}

// HasNext сообщает, есть ли волна после текущей.
func (s *WaveScheduler) HasNext() bool {
	return s.index+1 < len(s.library.Waves)
}

func (s *WaveScheduler) Index() int       { return s.index }
func (s *WaveScheduler) Phase() WavePhase { return s.phase }
func (s *WaveScheduler) Pending() int     { return s.pending }
func (s *WaveScheduler) Live() int        { return len(s.live) }
func (s *WaveScheduler) Spawned() int     { return s.spawned }

// IsLive — учитывается ли враг текущей волной.
func (s *WaveScheduler) IsLive(id types.EntityID) bool {
	_, ok := s.live[id]
	return ok
}
