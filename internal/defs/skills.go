// internal/defs/skills.go
package defs

import "fortress-defense/internal/status"

// SkillTemplate is immutable reference data shared by every unit that lists it.
// Numeric fields left at zero are absent.
type SkillTemplate struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Trigger  Trigger        `json:"trigger"`
	Target   TargetSelector `json:"target,omitempty"`
	Radius   float64        `json:"radius"`
	Cooldown float64        `json:"cooldown"`

	Damage         float64 `json:"damage,omitempty"`
	Heal           float64 `json:"heal,omitempty"`
	BuffMultiplier float64 `json:"buff_multiplier,omitempty"`
	BuffDuration   float64 `json:"buff_duration,omitempty"`

	StatusEffects  []string `json:"status_effects,omitempty"`
	StatusDuration float64  `json:"status_duration,omitempty"`
	StunDuration   float64  `json:"stun_duration,omitempty"`
	SlowDuration   float64  `json:"slow_duration,omitempty"`
	SlowMultiplier float64  `json:"slow_multiplier,omitempty"`
	StatusStrength float64  `json:"status_strength,omitempty"` // magnitude for suppress, daze, grease

	DotDamage   float64 `json:"dot_damage,omitempty"`
	DotTick     float64 `json:"dot_tick,omitempty"`
	DotDuration float64 `json:"dot_duration,omitempty"`
	HotHeal     float64 `json:"hot_heal,omitempty"`
	HotTick     float64 `json:"hot_tick,omitempty"`
	HotDuration float64 `json:"hot_duration,omitempty"`

	Cleanse bool `json:"cleanse,omitempty"`
}

// Beneficial reports whether the skill carries any helpful field.
func (s SkillTemplate) Beneficial() bool {
	if s.Heal > 0 || s.HotHeal > 0 || s.BuffMultiplier > 1 {
		return true
	}
	for _, name := range s.StatusEffects {
		if k, ok := status.ParseKind(name); ok && k == status.HealOverTime {
			return true
		}
	}
	return false
}
