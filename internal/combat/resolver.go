package combat

import (
	"math"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

// Roller supplies uniform random numbers in [0, 1).
type Roller interface {
	Float64() float64
}

// DamageEvent describes one resolved hit.
type DamageEvent struct {
	Attacker types.EntityID
	Target   types.EntityID
	Base     float64
	Final    int
	Crit     bool
	Facing   Facing
	Impulse  types.Vec
	Shared   bool // damage redirected from a linked ally
	Lethal   bool
}

// Observer is notified synchronously after damage is applied, before Strike returns.
type Observer interface {
	OnDamage(ev DamageEvent, attacker, target *component.Unit)
}

// Linker finds the damage-share group of a target.
type Linker interface {
	Linked(target *component.Unit) []*component.Unit
}

// Resolver computes and applies damage.
type Resolver struct {
	rng       Roller
	linker    Linker
	observers []Observer
}

func NewResolver(rng Roller) *Resolver {
	return &Resolver{rng: rng}
}

// SetLinker enables damage sharing.
func (r *Resolver) SetLinker(l Linker) {
	r.linker = l
}

// Observe registers o; observers run in registration order.
func (r *Resolver) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

// FinalDamage is the damage formula: facing scale, crit, armor, clamp, round.
func FinalDamage(base float64, facing Facing, crit bool, critMultiplier float64, armor int) int {
	dmg := base * facing.Multiplier()
	if crit {
		if critMultiplier <= 0 {
			critMultiplier = config.DefaultCritMultiple
		}
		dmg *= critMultiplier
	}
	dmg -= float64(armor)
	if dmg < config.MinDamage {
		dmg = config.MinDamage
	}
	return int(math.Round(dmg))
}

// Resolve computes the hit without touching either unit. The crit roll is
// consumed only when the attacker has a non-zero crit chance.
func (r *Resolver) Resolve(attacker, target *component.Unit, base float64) (DamageEvent, bool) {
	if attacker == nil || target == nil || !target.Alive || !utils.IsFinitePositive(base) {
		return DamageEvent{}, false
	}

	ev := DamageEvent{
		Attacker: attacker.ID,
		Target:   target.ID,
		Base:     base,
		Facing:   Classify(attacker.Position, target.Position, target.Facing),
	}
	if chance := attacker.Stats.CritChance; chance > 0 && r.rng != nil {
		ev.Crit = r.rng.Float64() < chance
	}
	ev.Final = FinalDamage(base, ev.Facing, ev.Crit, attacker.Stats.CritMultiplier, target.Stats.Armor)
	ev.Impulse = Impulse(attacker, target, ev.Final)
	return ev, true
}

// Strike resolves and applies a hit: health loss, knockback and observer
// notification happen together. Returns the event for the primary target.
func (r *Resolver) Strike(attacker, target *component.Unit, base float64) (DamageEvent, bool) {
	ev, ok := r.Resolve(attacker, target, base)
	if !ok {
		return ev, false
	}

	var linked []*component.Unit
	if r.linker != nil {
		linked = r.linker.Linked(target)
	}
	portions := Split(ev.Final, target, linked)

	var primary DamageEvent
	for i, p := range portions {
		pe := ev
		pe.Target = p.Unit.ID
		pe.Final = p.Amount
		pe.Shared = p.Shared
		if i == 0 {
			p.Unit.Motion.Velocity = p.Unit.Motion.Velocity.Add(ev.Impulse)
		} else {
			pe.Impulse = types.Vec{}
		}
		pe.Lethal = applyHealthLoss(p.Unit, p.Amount)
		if i == 0 {
			primary = pe
		}
		r.notify(pe, attacker, p.Unit)
	}
	return primary, true
}

// Direct applies unmitigated damage (periodic effects) and notifies observers.
func (r *Resolver) Direct(source, target *component.Unit, amount int) (DamageEvent, bool) {
	if target == nil || !target.Alive || amount <= 0 {
		return DamageEvent{}, false
	}
	ev := DamageEvent{Target: target.ID, Base: float64(amount), Final: amount, Facing: Side}
	if source != nil {
		ev.Attacker = source.ID
	}
	ev.Lethal = applyHealthLoss(target, amount)
	r.notify(ev, source, target)
	return ev, true
}

func (r *Resolver) notify(ev DamageEvent, attacker, target *component.Unit) {
	for _, o := range r.observers {
		o.OnDamage(ev, attacker, target)
	}
}

func applyHealthLoss(u *component.Unit, amount int) bool {
	if !u.Alive || amount <= 0 {
		return false
	}
	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
	return u.Health == 0
}
