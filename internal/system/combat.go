// internal/system/combat.go
package system

import (
	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/utils"
)

// CombatSystem выбирает цели и проводит атаки всех юнитов.
type CombatSystem struct {
	registry *entity.Registry
	resolver *combat.Resolver
	triggers *TriggerQueue
	rng      *utils.PRNGService
}

func NewCombatSystem(registry *entity.Registry, resolver *combat.Resolver, triggers *TriggerQueue, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{
		registry: registry,
		resolver: resolver,
		triggers: triggers,
		rng:      rng,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, u := range s.registry.All() {
		if !u.CanAct() || u.Stats.Damage <= 0 || u.Stats.AttackSpeed <= 0 {
			continue
		}
		mods := u.Mods()
		if u.AttackCooldown > 0 {
			// SUPPRESSED замедляет перезарядку.
			u.AttackCooldown -= deltaTime * mods.AttackSpeed
		}

		target := s.acquire(u)
		if target == nil {
			u.TargetID = 0
			if u.AttackCooldown < 0 {
				u.AttackCooldown = 0
			}
			continue
		}
		u.TargetID = target.ID
		if u.AttackCooldown > 0 {
			continue
		}
		u.AttackCooldown += 1 / u.Stats.AttackSpeed
		if u.AttackCooldown < 0 {
			u.AttackCooldown = 0
		}

		// DAZED: промах без урона и без on_attack.
		if mods.Accuracy < 1 && s.rng.Float64() >= mods.Accuracy {
			continue
		}
		base := float64(u.Stats.Damage) * mods.DamageBuff
		if _, ok := s.resolver.Strike(u, target, base); ok {
			s.triggers.Push(Trigger{Kind: defs.TriggerOnAttack, Source: u.ID, Target: target.ID})
		}
	}
}

// acquire оставляет прежнюю цель, пока она жива и в радиусе, иначе берёт ближайшую.
func (s *CombatSystem) acquire(u *component.Unit) *component.Unit {
	if u.TargetID != 0 {
		if t, ok := s.registry.Get(u.TargetID); ok && t.Alive && t.Team != u.Team &&
			t.Position.Dist(u.Position) <= u.Stats.Range {
			return t
		}
	}
	return s.registry.Nearest(u.Position, u.Stats.Range, u.Team.Opponent())
}
