// internal/system/status_effect.go
package system

import (
	"math"

	"fortress-defense/internal/combat"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/status"
)

// StatusEffectSystem продвигает таймеры статусов и применяет периодический
// урон и лечение.
type StatusEffectSystem struct {
	registry *entity.Registry
	resolver *combat.Resolver
	ctx      *CombatContext
}

func NewStatusEffectSystem(registry *entity.Registry, resolver *combat.Resolver, ctx *CombatContext) *StatusEffectSystem {
	return &StatusEffectSystem{registry: registry, resolver: resolver, ctx: ctx}
}

// Update обрабатывает все активные эффекты. Смертельный тик яда убивает
// сразу: DeathSystem получает уведомление от resolver.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, u := range s.registry.All() {
		if !u.Alive || u.Status.Len() == 0 {
			continue
		}
		res := u.Status.Tick(deltaTime)
		for _, p := range res.Pulses {
			if !u.Alive {
				break
			}
			amount := pulseAmount(p.Amount)
			switch p.Kind {
			case status.DamageOverTime:
				s.resolver.Direct(nil, u, amount)
			case status.HealOverTime:
				s.ctx.Heal(u, amount)
			}
		}
	}
}

// pulseAmount округляет тик до целого, но не ниже единицы.
func pulseAmount(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		n = 1
	}
	return n
}
