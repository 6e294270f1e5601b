package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fortress-defense/internal/status"

	"github.com/rs/zerolog"
)

// File names inside the content directory.
const (
	UnitsFile       = "units.json"
	SkillsFile      = "skills.json"
	WavesFile       = "waves.json"
	BattlefieldFile = "battlefield.json"
)

// Battlefield is the static layout: lanes and the starting garrison.
type Battlefield struct {
	Lanes      []Lane      `json:"lanes"`
	Placements []Placement `json:"placements"`
}

// Library holds every content record, keyed by id. It is read-only after Load.
type Library struct {
	Units       map[string]UnitTemplate
	Skills      map[string]SkillTemplate
	Waves       []WaveConfig
	Lanes       map[string]Lane
	Battlefield Battlefield

	log zerolog.Logger
}

// NewLibrary builds a library from in-memory records.
func NewLibrary(log zerolog.Logger, units []UnitTemplate, skills []SkillTemplate, waves []WaveConfig, field Battlefield) *Library {
	lib := &Library{
		Units:       make(map[string]UnitTemplate, len(units)),
		Skills:      make(map[string]SkillTemplate, len(skills)),
		Waves:       waves,
		Lanes:       make(map[string]Lane, len(field.Lanes)),
		Battlefield: field,
		log:         log,
	}
	for _, u := range units {
		lib.Units[u.ID] = u
	}
	for _, s := range skills {
		lib.Skills[s.ID] = s
	}
	for _, l := range field.Lanes {
		lib.Lanes[l.ID] = l
	}
	lib.validate()
	return lib
}

// Load reads all content files from dir.
func Load(dir string, log zerolog.Logger) (*Library, error) {
	var (
		units  []UnitTemplate
		skills []SkillTemplate
		waves  []WaveConfig
		field  Battlefield
	)
	if err := readJSON(filepath.Join(dir, UnitsFile), &units); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, SkillsFile), &skills); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, WavesFile), &waves); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, BattlefieldFile), &field); err != nil {
		return nil, err
	}

	lib := NewLibrary(log, units, skills, waves, field)
	log.Info().
		Int("units", len(lib.Units)).
		Int("skills", len(lib.Skills)).
		Int("waves", len(lib.Waves)).
		Int("lanes", len(lib.Lanes)).
		Msg("content loaded")
	return lib, nil
}

func readJSON(path string, out any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(file, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Unit resolves a template, falling back to DefaultUnit with a warning.
func (l *Library) Unit(id string) UnitTemplate {
	if t, ok := l.Units[id]; ok {
		return t
	}
	l.log.Warn().Str("unit", id).Msg("unit template not found, using default")
	return DefaultUnit
}

// Skill resolves a skill template. Missing skills are logged and reported as absent.
func (l *Library) Skill(id string) (SkillTemplate, bool) {
	t, ok := l.Skills[id]
	if !ok {
		l.log.Warn().Str("skill", id).Msg("skill template not found, trigger skipped")
	}
	return t, ok
}

// Lane looks up a lane by id.
func (l *Library) Lane(id string) (Lane, bool) {
	lane, ok := l.Lanes[id]
	return lane, ok
}

// Wave returns the wave at index.
func (l *Library) Wave(index int) (WaveConfig, bool) {
	if index < 0 || index >= len(l.Waves) {
		return WaveConfig{}, false
	}
	return l.Waves[index], true
}

// validate reports content problems; none of them are fatal.
func (l *Library) validate() {
	for id, s := range l.Skills {
		if s.Target == TargetUnset {
			l.log.Warn().Str("skill", id).Bool("beneficial", s.Beneficial()).
				Msg("skill has no explicit target, falling back to inferred targeting")
		}
		for _, name := range s.StatusEffects {
			if _, ok := status.ParseKind(name); !ok {
				l.log.Warn().Str("skill", id).Str("status", name).Msg("unknown status effect")
			}
		}
	}
	for id, u := range l.Units {
		for _, sid := range u.Skills {
			if _, ok := l.Skills[sid]; !ok {
				l.log.Warn().Str("unit", id).Str("skill", sid).Msg("unit references missing skill")
			}
		}
	}
	for i, w := range l.Waves {
		for _, sp := range w.Spawns {
			if _, ok := l.Lanes[sp.Lane]; !ok {
				l.log.Warn().Int("wave", i).Str("lane", sp.Lane).Msg("spawn references unknown lane")
			}
			if _, ok := l.Units[sp.UnitID]; !ok {
				l.log.Warn().Int("wave", i).Str("unit", sp.UnitID).Msg("spawn references unknown unit")
			}
		}
	}
}
