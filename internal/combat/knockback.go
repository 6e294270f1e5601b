package combat

import (
	"math"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/types"
)

// Impulse returns the knockback applied to target by a hit of finalDamage.
// Heavier attackers push lighter targets harder; the mass ratio is capped at 1.
func Impulse(attacker, target *component.Unit, finalDamage int) types.Vec {
	if finalDamage <= 0 {
		return types.Vec{}
	}
	dir := target.Position.Sub(attacker.Position).Unit()
	if dir.IsZero() {
		return types.Vec{}
	}
	ratio := 1.0
	if target.Stats.Mass > 0 {
		ratio = math.Min(1, attacker.Stats.Mass/target.Stats.Mass)
	}
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	return dir.Scale(float64(finalDamage) * config.KnockbackFactor * ratio)
}
