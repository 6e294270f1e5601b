// internal/system/aura.go
package system

import (
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
)

// AuraSystem запускает passive_tick навыки. Частоту задаёт перезарядка
// навыка: с нулевой перезарядкой аура срабатывает каждый кадр.
type AuraSystem struct {
	registry *entity.Registry
	skills   *SkillSystem
}

func NewAuraSystem(registry *entity.Registry, skills *SkillSystem) *AuraSystem {
	return &AuraSystem{registry: registry, skills: skills}
}

func (s *AuraSystem) Update() {
	for _, u := range s.registry.All() {
		if !u.CanAct() || len(u.Skills) == 0 {
			continue
		}
		s.skills.Fire(Trigger{Kind: defs.TriggerPassiveTick, Source: u.ID})
	}
}
