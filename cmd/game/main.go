// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/image/font/basicfont"

	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/journal"
	"fortress-defense/internal/logging"
	"fortress-defense/internal/state"
	"fortress-defense/internal/system"
)

const startFromGame = true // true — начинать с боя, false — с меню

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
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.SettingsFileName)
	headless := flag.Bool("headless", false, "simulate the battle without a window and exit")
	limit := flag.Float64("limit", 600, "headless: game seconds before giving up")
	flag.Parse()

	settings := loadSettings(*configDir)
	log := logging.NewConsole(settings.LogLevel)

	library, err := defs.Load(settings.ContentDir, logging.Component(log, "defs"))
	if err != nil {
		log.Fatal().Err(err).Str("dir", settings.ContentDir).Msg("failed to load content")
	}

	session := &state.Session{
		Settings: settings,
		Library:  library,
		Face:     basicfont.Face7x13,
		Log:      log,
	}
	if settings.Journal.Enabled {
		rec, err := journal.Open(settings.Journal.Path, logging.Component(log, "journal"))
		if err != nil {
			log.Error().Err(err).Msg("journal disabled")
		} else {
			session.Journal = rec
			defer rec.Close()
		}
	}

	if *headless {
		code := runHeadless(session, *limit, log)
		if session.Journal != nil {
			_ = session.Journal.Close()
		}
		os.Exit(code)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		battle, err := session.NewBattle()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start battle")
		}
		sm.SetState(state.NewBattleState(sm, session, battle))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Fortress Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

// loadSettings читает файл настроек; без файла работают значения по умолчанию.
func loadSettings(dir string) config.Settings {
	settings, err := config.Load(dir)
	if err == nil {
		return settings
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		logger := logging.NewConsole("info")
		logger.Warn().Err(err).Msg("using default settings")
	}
	return config.Defaults()
}

func runHeadless(session *state.Session, limit float64, log zerolog.Logger) int {
	battle, err := session.NewBattle()
	if err != nil {
		log.Error().Err(err).Msg("failed to start battle")
		return 1
	}
	phase := battle.Simulate(1.0/60, limit)
	log.Info().
		Str("phase", phase.String()).
		Int("waves_cleared", battle.StateSystem.WavesCleared()).
		Int("fortress_health", battle.FortressHealth()).
		Float64("time", battle.Now()).
		Msg("battle finished")
	if phase != system.PhaseVictory {
		return 2
	}
	return 0
}
