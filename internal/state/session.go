// internal/state/session.go
package state

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"fortress-defense/internal/app"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/journal"
)

// Session — то, что переживает перезапуск сражения: настройки, контент,
// журнал и шрифт интерфейса.
type Session struct {
	Settings config.Settings
	Library  *defs.Library
	Journal  *journal.Recorder // nil, если журнал выключен
	Face     font.Face
	Log      zerolog.Logger

	seed int64
}

// NewBattle создаёт и запускает новое сражение. Каждое следующее сражение
// получает следующий сид, чтобы повтор не был копией предыдущего.
func (s *Session) NewBattle() (*app.Battle, error) {
	settings := s.Settings
	if settings.Seed != 0 {
		settings.Seed += s.seed
	}
	s.seed++

	battle := app.NewBattle(settings, s.Library, s.Log)
	if s.Journal != nil {
		if err := s.Journal.Begin(battle.Rng.Seed()); err != nil {
			s.Log.Error().Err(err).Msg("journal disabled for this battle")
		} else {
			s.Journal.Attach(battle.EventDispatcher)
		}
	}
	if err := battle.StartBattle(); err != nil {
		return nil, fmt.Errorf("failed to start battle: %w", err)
	}
	return battle, nil
}
