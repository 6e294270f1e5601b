package skill

import (
	"math"

	"fortress-defense/internal/component"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"

	"github.com/rs/zerolog"
)

// Context is everything a skill may do to the battle.
type Context interface {
	InRadius(center types.Vec, radius float64, team types.Team) []*component.Unit
	Damage(source, target *component.Unit, amount float64)
	ApplyStatus(target *component.Unit, kind status.Kind, duration, magnitude, interval float64) bool
	Heal(target *component.Unit, amount int) int
	Cleanse(target *component.Unit)
}

// Applier runs skills and tracks per-unit cooldowns.
type Applier struct {
	log      zerolog.Logger
	lastUse  map[types.EntityID]map[string]float64
	compiled map[string]Compiled
}

func NewApplier(log zerolog.Logger) *Applier {
	return &Applier{
		log:      log,
		lastUse:  make(map[types.EntityID]map[string]float64),
		compiled: make(map[string]Compiled),
	}
}

// Ready reports whether source may use skill at now.
func (a *Applier) Ready(source types.EntityID, t defs.SkillTemplate, now float64) bool {
	last, ok := a.lastUse[source][t.ID]
	return !ok || now-last >= t.Cooldown
}

// Remaining returns the cooldown seconds left before source may use t again.
func (a *Applier) Remaining(source types.EntityID, t defs.SkillTemplate, now float64) float64 {
	last, ok := a.lastUse[source][t.ID]
	if !ok {
		return 0
	}
	return math.Max(0, t.Cooldown-(now-last))
}

// Apply uses t centered on the source. Returns false when on cooldown.
func (a *Applier) Apply(t defs.SkillTemplate, source *component.Unit, now float64, ctx Context) bool {
	return a.ApplyAt(t, source, source.Position, now, ctx)
}

// ApplyAt uses t centered on origin, for abilities aimed at a point.
func (a *Applier) ApplyAt(t defs.SkillTemplate, source *component.Unit, origin types.Vec, now float64, ctx Context) bool {
	if source == nil || !a.Ready(source.ID, t, now) {
		return false
	}
	c := a.compile(t)

	for _, target := range a.targets(c, source, origin, ctx) {
		a.applyTo(c, source, target, ctx)
	}

	a.stamp(source.ID, t.ID, now)
	return true
}

// ApplyOn uses an enemy-targeted t on one explicit target, e.g. the unit just
// attacked. Skills aimed at allies or with a radius fall back to ApplyAt
// around the target.
func (a *Applier) ApplyOn(t defs.SkillTemplate, source, target *component.Unit, now float64, ctx Context) bool {
	if source == nil || target == nil || !a.Ready(source.ID, t, now) {
		return false
	}
	c := a.compile(t)
	if c.Target != defs.TargetEnemy || c.Template.Radius > 0 {
		origin := target.Position
		if c.Target == defs.TargetSelf || c.Target == defs.TargetAlly {
			origin = source.Position
		}
		return a.ApplyAt(t, source, origin, now, ctx)
	}

	if target.Alive && target.Team != source.Team {
		a.applyTo(c, source, target, ctx)
	}
	a.stamp(source.ID, t.ID, now)
	return true
}

func (a *Applier) stamp(source types.EntityID, skillID string, now float64) {
	uses, ok := a.lastUse[source]
	if !ok {
		uses = make(map[string]float64)
		a.lastUse[source] = uses
	}
	uses[skillID] = now
}

// Forget drops the cooldowns of a removed unit.
func (a *Applier) Forget(id types.EntityID) {
	delete(a.lastUse, id)
}

func (a *Applier) compile(t defs.SkillTemplate) Compiled {
	if c, ok := a.compiled[t.ID]; ok && t.ID != "" {
		return c
	}
	c := Compile(t)
	if c.Inferred {
		a.log.Warn().Str("skill", t.ID).Str("target", string(c.Target)).
			Msg("skill target inferred from its fields; set an explicit target")
	}
	for _, name := range c.Unknown {
		a.log.Warn().Str("skill", t.ID).Str("status", name).Msg("unknown status effect ignored")
	}
	a.compiled[t.ID] = c
	return c
}

func (a *Applier) targets(c Compiled, source *component.Unit, origin types.Vec, ctx Context) []*component.Unit {
	radius := c.Template.Radius
	switch c.Target {
	case defs.TargetSelf:
		if source.Alive {
			return []*component.Unit{source}
		}
		return nil
	case defs.TargetAlly:
		return ctx.InRadius(origin, radius, source.Team)
	case defs.TargetBoth:
		out := ctx.InRadius(origin, radius, source.Team)
		return append(out, ctx.InRadius(origin, radius, source.Team.Opponent())...)
	default:
		return ctx.InRadius(origin, radius, source.Team.Opponent())
	}
}

func (a *Applier) applyTo(c Compiled, source, target *component.Unit, ctx Context) {
	for _, eff := range c.Effects {
		if !target.Alive {
			return
		}
		switch e := eff.(type) {
		case StatusEffect:
			ctx.ApplyStatus(target, e.Kind, e.Duration, e.Magnitude, 0)
		case PeriodicEffect:
			ctx.ApplyStatus(target, e.Kind, e.Duration, e.Amount, e.Interval)
		case BuffEffect:
			ctx.ApplyStatus(target, status.Empowered, e.Duration, e.Multiplier, 0)
		case HealEffect:
			ctx.Heal(target, int(math.Round(e.Amount)))
		case CleanseEffect:
			ctx.Cleanse(target)
		case DamageEffect:
			ctx.Damage(source, target, e.Amount)
		default:
			a.log.Error().Str("skill", c.Template.ID).Msgf("unhandled effect %T", eff)
		}
	}
}
