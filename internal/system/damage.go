package system

import (
	"math"

	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/event"
)

var _ combat.Observer = (*DamageFeedback)(nil)

// DamageFeedback публикует DamageDealt и применяет вампиризм атакующего.
type DamageFeedback struct {
	ctx             *CombatContext
	eventDispatcher *event.Dispatcher
	clock           Clock
}

func NewDamageFeedback(ctx *CombatContext, eventDispatcher *event.Dispatcher, clock Clock) *DamageFeedback {
	return &DamageFeedback{ctx: ctx, eventDispatcher: eventDispatcher, clock: clock}
}

func (d *DamageFeedback) OnDamage(ev combat.DamageEvent, attacker, _ *component.Unit) {
	d.eventDispatcher.Dispatch(event.Event{Type: event.DamageDealt, Data: event.DamageDealtData{
		Attacker: ev.Attacker,
		Target:   ev.Target,
		Amount:   ev.Final,
		Crit:     ev.Crit,
		Facing:   ev.Facing.String(),
		Shared:   ev.Shared,
		Time:     d.clock(),
	}})

	// Перенаправленный урон не лечит второй раз.
	if attacker == nil || ev.Shared || !attacker.Alive || attacker.Stats.Lifesteal <= 0 {
		return
	}
	if amount := int(math.Round(float64(ev.Final) * attacker.Stats.Lifesteal)); amount > 0 {
		d.ctx.Heal(attacker, amount)
	}
}
