package status

import (
	"math"

	"fortress-defense/internal/config"
)

// epsilon absorbs float drift when many small deltas add up to a full interval.
const epsilon = 1e-9

// Entry is one active status effect.
type Entry struct {
	Kind        Kind
	Remaining   float64 // seconds
	Magnitude   float64
	Interval    float64 // periodic kinds only
	Accumulator float64 // seconds since the last periodic fire
}

// Modifiers are the unit stats the active effects currently impose.
type Modifiers struct {
	Stunned     bool
	MoveSpeed   float64
	AttackSpeed float64
	Accuracy    float64
	Friction    float64
	DamageBuff  float64
}

// BaseModifiers is the unaffected state.
func BaseModifiers() Modifiers {
	return Modifiers{
		MoveSpeed:   1,
		AttackSpeed: 1,
		Accuracy:    1,
		Friction:    config.BaseFriction,
		DamageBuff:  1,
	}
}

// Pulse is one periodic fire of a DOT or HOT.
type Pulse struct {
	Kind   Kind
	Amount float64
}

// TickResult collects what happened during one Tick.
type TickResult struct {
	Pulses  []Pulse
	Expired []Kind
}

// Table tracks the status effects of a single unit.
type Table struct {
	entries [kindCount]*Entry
	mods    Modifiers
}

func NewTable() *Table {
	return &Table{mods: BaseModifiers()}
}

// Modifiers returns the current stat modifiers.
func (t *Table) Modifiers() Modifiers {
	return t.mods
}

// Has reports whether kind is active.
func (t *Table) Has(kind Kind) bool {
	return kind >= 0 && kind < kindCount && t.entries[kind] != nil
}

// Get returns a copy of the entry for kind.
func (t *Table) Get(kind Kind) (Entry, bool) {
	if !t.Has(kind) {
		return Entry{}, false
	}
	return *t.entries[kind], true
}

// Kinds lists active kinds in declaration order.
func (t *Table) Kinds() []Kind {
	var out []Kind
	for k, e := range t.entries {
		if e != nil {
			out = append(out, Kind(k))
		}
	}
	return out
}

// Len is the number of active effects.
func (t *Table) Len() int {
	n := 0
	for _, e := range t.entries {
		if e != nil {
			n++
		}
	}
	return n
}

// Apply puts kind on the unit, replacing any previous entry of the same kind.
// Magnitude and interval values <= 0 select the per-kind defaults.
// Invalid durations are ignored and Apply returns false.
func (t *Table) Apply(kind Kind, duration, magnitude, interval float64) bool {
	if kind < 0 || kind >= kindCount {
		return false
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return false
	}
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return false
	}

	e := &Entry{Kind: kind, Remaining: duration, Magnitude: magnitude}
	switch kind {
	case Stunned:
		t.mods.Stunned = true
	case Slowed:
		if e.Magnitude <= 0 || e.Magnitude > 1 {
			e.Magnitude = config.DefaultSlowFactor
		}
	case Snared:
		e.Magnitude = 0
	case Suppressed:
		if e.Magnitude <= 0 || e.Magnitude > 1 {
			e.Magnitude = config.DefaultSuppress
		}
		t.mods.AttackSpeed = e.Magnitude
	case Dazed:
		if e.Magnitude <= 0 || e.Magnitude > 1 {
			e.Magnitude = config.DefaultDazeAccuracy
		}
		t.mods.Accuracy = e.Magnitude
	case Greased:
		if e.Magnitude <= 0 {
			e.Magnitude = config.GreasedFriction
		}
		t.mods.Friction = e.Magnitude
	case DamageOverTime, HealOverTime:
		if e.Magnitude <= 0 {
			return false
		}
		e.Interval = interval
		if math.IsNaN(e.Interval) || e.Interval <= 0 {
			e.Interval = config.DefaultTickInterval
		}
	case Empowered:
		if e.Magnitude <= 1 {
			return false
		}
		// Сильнейший бафф побеждает, множители не перемножаются.
		if prev := t.entries[Empowered]; prev != nil && prev.Magnitude > e.Magnitude {
			e.Magnitude = prev.Magnitude
		}
		t.mods.DamageBuff = e.Magnitude
	}

	t.entries[kind] = e
	if kind == Slowed || kind == Snared {
		t.recomputeMove()
	}
	return true
}

// Tick advances every active entry by dt seconds.
func (t *Table) Tick(dt float64) TickResult {
	var res TickResult
	if math.IsNaN(dt) || dt <= 0 {
		return res
	}
	for k, e := range t.entries {
		if e == nil {
			continue
		}
		kind := Kind(k)

		if kind.Periodic() {
			// Время после истечения эффекта не засчитывается.
			step := math.Min(dt, e.Remaining)
			e.Accumulator += step
			for e.Accumulator+epsilon >= e.Interval {
				res.Pulses = append(res.Pulses, Pulse{Kind: kind, Amount: e.Magnitude})
				e.Accumulator -= e.Interval
			}
			if e.Accumulator < 0 {
				e.Accumulator = 0
			}
		}

		e.Remaining -= dt
		if e.Remaining <= epsilon {
			t.remove(kind)
			res.Expired = append(res.Expired, kind)
		}
	}
	return res
}

// Remove ends kind early, running its revert logic.
func (t *Table) Remove(kind Kind) bool {
	if !t.Has(kind) {
		return false
	}
	t.remove(kind)
	return true
}

// ClearDebuffs removes every harmful effect and returns the kinds removed.
func (t *Table) ClearDebuffs() []Kind {
	var removed []Kind
	for k, e := range t.entries {
		if e != nil && Kind(k).Debuff() {
			t.remove(Kind(k))
			removed = append(removed, Kind(k))
		}
	}
	return removed
}

// Clear drops everything, e.g. when the unit dies.
func (t *Table) Clear() {
	for k := range t.entries {
		t.entries[k] = nil
	}
	t.mods = BaseModifiers()
}

func (t *Table) remove(kind Kind) {
	t.entries[kind] = nil
	switch kind {
	case Stunned:
		t.mods.Stunned = false
	case Slowed, Snared:
		t.recomputeMove()
	case Suppressed:
		t.mods.AttackSpeed = 1
	case Dazed:
		t.mods.Accuracy = 1
	case Greased:
		t.mods.Friction = config.BaseFriction
	case Empowered:
		t.mods.DamageBuff = 1
	}
}

// recomputeMove: snare roots the unit, otherwise the slow factor applies.
func (t *Table) recomputeMove() {
	switch {
	case t.entries[Snared] != nil:
		t.mods.MoveSpeed = 0
	case t.entries[Slowed] != nil:
		t.mods.MoveSpeed = t.entries[Slowed].Magnitude
	default:
		t.mods.MoveSpeed = 1
	}
}
