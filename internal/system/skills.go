// internal/system/skills.go
package system

import (
	"github.com/rs/zerolog"

	"fortress-defense/internal/component"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/skill"
	"fortress-defense/internal/types"
)

// SkillSystem исполняет навыки юнитов по триггерам.
type SkillSystem struct {
	registry *entity.Registry
	library  *defs.Library
	applier  *skill.Applier
	ctx      skill.Context
	triggers *TriggerQueue
	clock    Clock
	log      zerolog.Logger
	missing  map[string]bool
}

func NewSkillSystem(registry *entity.Registry, library *defs.Library, applier *skill.Applier, ctx skill.Context, triggers *TriggerQueue, clock Clock, log zerolog.Logger) *SkillSystem {
	return &SkillSystem{
		registry: registry,
		library:  library,
		applier:  applier,
		ctx:      ctx,
		triggers: triggers,
		clock:    clock,
		log:      log,
		missing:  make(map[string]bool),
	}
}

// Fire применяет навыки источника, подходящие к триггеру. Мёртвый источник
// исполняет только on_death. Возвращает число сработавших навыков.
func (s *SkillSystem) Fire(t Trigger) int {
	source, ok := s.registry.Get(t.Source)
	if !ok {
		return 0
	}
	if !source.Alive && t.Kind != defs.TriggerOnDeath {
		return 0
	}
	var target *component.Unit
	if t.Target != 0 {
		target, _ = s.registry.Get(t.Target)
	}

	now := s.clock()
	fired := 0
	for _, id := range source.Skills {
		tmpl, ok := s.lookup(id)
		if !ok || tmpl.Trigger != t.Kind {
			continue
		}
		var applied bool
		if target != nil {
			applied = s.applier.ApplyOn(tmpl, source, target, now, s.ctx)
		} else {
			applied = s.applier.Apply(tmpl, source, now, s.ctx)
		}
		if applied {
			fired++
		}
	}
	return fired
}

// Cast применяет способность командира в точке, минуя список навыков юнита.
func (s *SkillSystem) Cast(skillID string, caster *component.Unit, point types.Vec) bool {
	tmpl, ok := s.lookup(skillID)
	if !ok {
		return false
	}
	return s.applier.ApplyAt(tmpl, caster, point, s.clock(), s.ctx)
}

// Ready сообщает, готова ли способность caster.
func (s *SkillSystem) Ready(skillID string, caster types.EntityID) bool {
	tmpl, ok := s.library.Skills[skillID]
	return ok && s.applier.Ready(caster, tmpl, s.clock())
}

// Cooldown — сколько секунд осталось до готовности способности caster.
func (s *SkillSystem) Cooldown(skillID string, caster types.EntityID) float64 {
	tmpl, ok := s.library.Skills[skillID]
	if !ok {
		return 0
	}
	return s.applier.Remaining(caster, tmpl, s.clock())
}

// Drain исполняет накопленные триггеры, включая порождённые ими.
func (s *SkillSystem) Drain() int {
	n, complete := s.triggers.Drain(func(t Trigger) { s.Fire(t) })
	if !complete {
		s.log.Error().Int("processed", n).Msg("trigger chain limit reached, remaining triggers dropped")
	}
	return n
}

// Forget сбрасывает перезарядки удалённого юнита.
func (s *SkillSystem) Forget(id types.EntityID) {
	s.applier.Forget(id)
}

// lookup предупреждает о пропавшем навыке один раз.
func (s *SkillSystem) lookup(id string) (defs.SkillTemplate, bool) {
	if s.missing[id] {
		return defs.SkillTemplate{}, false
	}
	tmpl, ok := s.library.Skill(id)
	if !ok {
		s.missing[id] = true
	}
	return tmpl, ok
}
