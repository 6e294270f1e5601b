package system

import (
	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/skill"
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"
)

// Clock возвращает текущее игровое время в секундах.
type Clock func() float64

var _ skill.Context = (*CombatContext)(nil)

// CombatContext — то, чем навыки воздействуют на бой.
type CombatContext struct {
	registry        *entity.Registry
	resolver        *combat.Resolver
	eventDispatcher *event.Dispatcher
	clock           Clock
}

func NewCombatContext(registry *entity.Registry, resolver *combat.Resolver, eventDispatcher *event.Dispatcher, clock Clock) *CombatContext {
	return &CombatContext{
		registry:        registry,
		resolver:        resolver,
		eventDispatcher: eventDispatcher,
		clock:           clock,
	}
}

func (c *CombatContext) InRadius(center types.Vec, radius float64, team types.Team) []*component.Unit {
	return c.registry.InRadius(center, radius, team)
}

func (c *CombatContext) Damage(source, target *component.Unit, amount float64) {
	c.resolver.Strike(source, target, amount)
}

func (c *CombatContext) ApplyStatus(target *component.Unit, kind status.Kind, duration, magnitude, interval float64) bool {
	if !target.Alive || !target.Status.Apply(kind, duration, magnitude, interval) {
		return false
	}
	c.eventDispatcher.Dispatch(event.Event{Type: event.StatusApplied, Data: event.StatusAppliedData{
		Target:   target.ID,
		Kind:     kind,
		Duration: duration,
		Time:     c.clock(),
	}})
	return true
}

func (c *CombatContext) Heal(target *component.Unit, amount int) int {
	healed := target.Heal(amount)
	if healed > 0 {
		c.eventDispatcher.Dispatch(event.Event{Type: event.Healed, Data: event.HealedData{
			Target: target.ID,
			Amount: healed,
			Time:   c.clock(),
		}})
	}
	return healed
}

func (c *CombatContext) Cleanse(target *component.Unit) {
	target.Status.ClearDebuffs()
}
