package skill

import (
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/status"
)

// Effect is one step of a skill. The set of variants is closed; Applier
// switches over all of them.
type Effect interface {
	isEffect()
}

// StatusEffect puts a non-periodic status on the target.
type StatusEffect struct {
	Kind      status.Kind
	Duration  float64
	Magnitude float64
}

// PeriodicEffect is a DOT or HOT.
type PeriodicEffect struct {
	Kind     status.Kind
	Amount   float64
	Interval float64
	Duration float64
}

// BuffEffect raises the damage multiplier for a while.
type BuffEffect struct {
	Multiplier float64
	Duration   float64
}

// HealEffect restores health immediately.
type HealEffect struct {
	Amount float64
}

// CleanseEffect removes every debuff.
type CleanseEffect struct{}

// DamageEffect deals a hit through the damage resolver.
type DamageEffect struct {
	Amount float64
}

func (StatusEffect) isEffect()   {}
func (PeriodicEffect) isEffect() {}
func (BuffEffect) isEffect()     {}
func (HealEffect) isEffect()     {}
func (CleanseEffect) isEffect()  {}
func (DamageEffect) isEffect()   {}

// Compiled is a skill template resolved into effects.
type Compiled struct {
	Template defs.SkillTemplate
	Target   defs.TargetSelector
	Inferred bool // target came from the beneficial-fields fallback
	Effects  []Effect
	Unknown  []string // status names that did not parse
}

// Compile resolves t once. Effects are ordered: statuses, periodic, buff,
// heal, cleanse, damage.
func Compile(t defs.SkillTemplate) Compiled {
	c := Compiled{Template: t, Target: t.Target}
	if c.Target == defs.TargetUnset {
		c.Inferred = true
		c.Target = defs.TargetEnemy
		if t.Beneficial() {
			c.Target = defs.TargetAlly
		}
	}

	for _, name := range t.StatusEffects {
		kind, ok := status.ParseKind(name)
		if !ok {
			c.Unknown = append(c.Unknown, name)
			continue
		}
		if kind.Periodic() || kind == status.Empowered {
			// Для них есть собственные поля шаблона.
			continue
		}
		e := StatusEffect{Kind: kind, Duration: t.StatusDuration}
		switch kind {
		case status.Stunned:
			e.Duration = fallback(t.StunDuration, t.StatusDuration)
		case status.Slowed:
			e.Duration = fallback(t.SlowDuration, t.StatusDuration)
			e.Magnitude = t.SlowMultiplier
		case status.Suppressed, status.Dazed, status.Greased:
			e.Magnitude = t.StatusStrength
		}
		if e.Duration > 0 {
			c.Effects = append(c.Effects, e)
		}
	}

	if t.DotDamage > 0 {
		c.Effects = append(c.Effects, PeriodicEffect{
			Kind:     status.DamageOverTime,
			Amount:   t.DotDamage,
			Interval: t.DotTick,
			Duration: fallback(t.DotDuration, t.StatusDuration),
		})
	}
	if t.HotHeal > 0 {
		c.Effects = append(c.Effects, PeriodicEffect{
			Kind:     status.HealOverTime,
			Amount:   t.HotHeal,
			Interval: t.HotTick,
			Duration: fallback(t.HotDuration, t.StatusDuration),
		})
	}
	if t.BuffMultiplier > 1 {
		c.Effects = append(c.Effects, BuffEffect{
			Multiplier: t.BuffMultiplier,
			Duration:   fallback(t.BuffDuration, config.DefaultBuffDuration),
		})
	}
	if t.Heal > 0 {
		c.Effects = append(c.Effects, HealEffect{Amount: t.Heal})
	}
	if t.Cleanse {
		c.Effects = append(c.Effects, CleanseEffect{})
	}
	if t.Damage > 0 {
		c.Effects = append(c.Effects, DamageEffect{Amount: t.Damage})
	}
	return c
}

func fallback(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
