// Package journal records a battle summary into SQLite through gorm.
//
// The recorder is an event listener: the simulation never waits for it and
// write errors are only logged.
package journal

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fortress-defense/internal/event"
	"fortress-defense/internal/types"
)

// memoryDSN is used when no path is configured.
const memoryDSN = "file::memory:"

// BattleRecord — одна запись на сражение.
type BattleRecord struct {
	ID        uint `gorm:"primaryKey"`
	StartedAt time.Time
	Seed      int64
	Ended     bool
	Victory   bool
	Waves     int
	Duration  float64 // Игровые секунды
}

// WaveRecord — начало и зачистка волны.
type WaveRecord struct {
	ID        uint `gorm:"primaryKey"`
	BattleID  uint `gorm:"index"`
	Index     int
	StartedAt float64
	Cleared   bool
	ClearedAt float64
	Spawned   int
}

// DeathRecord — гибель юнита или прорыв врага к крепости.
type DeathRecord struct {
	ID         uint `gorm:"primaryKey"`
	BattleID   uint `gorm:"index"`
	UnitID     uint64
	TemplateID string
	Team       string
	Killer     uint64
	Breach     bool
	Time       float64
}

// Recorder пишет события сражения в базу.
type Recorder struct {
	db     *gorm.DB
	log    zerolog.Logger
	battle BattleRecord
	waves  map[int]uint // индекс волны -> ID записи
}

// Open opens (or creates) the journal database at path and migrates the schema.
// An empty path keeps the journal in memory.
func Open(path string, log zerolog.Logger) (*Recorder, error) {
	dsn := path
	if dsn == "" {
		dsn = memoryDSN
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %q: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	// Каждое соединение с :memory: видит свою базу.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&BattleRecord{}, &WaveRecord{}, &DeathRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return &Recorder{db: db, log: log, waves: make(map[int]uint)}, nil
}

// Begin creates the battle row that following events attach to.
func (r *Recorder) Begin(seed int64) error {
	r.battle = BattleRecord{StartedAt: time.Now(), Seed: seed}
	clear(r.waves)
	if err := r.db.Create(&r.battle).Error; err != nil {
		return fmt.Errorf("failed to create battle record: %w", err)
	}
	return nil
}

// Attach subscribes the recorder to the events it journals.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r, event.WaveStarted, event.WaveCleared, event.UnitDeath, event.FortressBreached, event.BattleEnded)
}

func (r *Recorder) OnEvent(e event.Event) {
	if r.battle.ID == 0 {
		return
	}
	var err error
	switch data := e.Data.(type) {
	case event.WaveData:
		if e.Type == event.WaveStarted {
			err = r.waveStarted(data)
		} else {
			err = r.waveCleared(data)
		}
	case event.UnitDeathData:
		err = r.db.Create(&DeathRecord{
			BattleID:   r.battle.ID,
			UnitID:     uint64(data.ID),
			TemplateID: data.TemplateID,
			Team:       data.Team.String(),
			Killer:     uint64(data.Killer),
			Time:       data.Time,
		}).Error
	case event.BreachData:
		err = r.db.Create(&DeathRecord{
			BattleID:   r.battle.ID,
			UnitID:     uint64(data.ID),
			TemplateID: data.TemplateID,
			Team:       types.TeamInvaders.String(),
			Breach:     true,
			Time:       data.Time,
		}).Error
	case event.BattleEndedData:
		r.battle.Ended = true
		r.battle.Victory = data.Victory
		r.battle.Waves = data.Waves
		r.battle.Duration = data.Time
		err = r.db.Save(&r.battle).Error
	}
	if err != nil {
		r.log.Error().Err(err).Str("event", string(e.Type)).Msg("failed to journal event")
	}
}

func (r *Recorder) waveStarted(data event.WaveData) error {
	rec := WaveRecord{BattleID: r.battle.ID, Index: data.Index, StartedAt: data.Time}
	if err := r.db.Create(&rec).Error; err != nil {
		return err
	}
	r.waves[data.Index] = rec.ID
	return nil
}

func (r *Recorder) waveCleared(data event.WaveData) error {
	id, ok := r.waves[data.Index]
	if !ok {
		return fmt.Errorf("wave %d cleared before it started", data.Index)
	}
	return r.db.Model(&WaveRecord{}).Where("id = ?", id).Updates(map[string]any{
		"cleared":    true,
		"cleared_at": data.Time,
		"spawned":    data.Spawned,
	}).Error
}

// Battle returns the stored record of the current battle.
func (r *Recorder) Battle() (BattleRecord, error) {
	var rec BattleRecord
	err := r.db.First(&rec, r.battle.ID).Error
	return rec, err
}

// Waves returns the waves of the current battle in order.
func (r *Recorder) Waves() ([]WaveRecord, error) {
	var out []WaveRecord
	err := r.db.Where("battle_id = ?", r.battle.ID).Order("id").Find(&out).Error
	return out, err
}

// Deaths returns deaths and breaches of the current battle in order.
func (r *Recorder) Deaths() ([]DeathRecord, error) {
	var out []DeathRecord
	err := r.db.Where("battle_id = ?", r.battle.ID).Order("id").Find(&out).Error
	return out, err
}

// KillsByTemplate counts deaths per unit template, breaches excluded.
func (r *Recorder) KillsByTemplate() (map[string]int, error) {
	var rows []struct {
		TemplateID string
		Count      int
	}
	err := r.db.Model(&DeathRecord{}).
		Select("template_id, count(*) as count").
		Where("battle_id = ? AND breach = ?", r.battle.ID, false).
		Group("template_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.TemplateID] = row.Count
	}
	return out, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
