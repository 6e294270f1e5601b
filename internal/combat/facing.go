package combat

import (
	"fortress-defense/internal/config"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

// Facing classifies where a hit lands relative to the target's orientation.
type Facing int

const (
	Side Facing = iota
	Front
	Rear
)

func (f Facing) String() string {
	switch f {
	case Front:
		return "front"
	case Rear:
		return "rear"
	default:
		return "side"
	}
}

// Multiplier is the damage scale for the facing class.
func (f Facing) Multiplier() float64 {
	switch f {
	case Front:
		return config.FrontMultiplier
	case Rear:
		return config.RearMultiplier
	default:
		return config.SideMultiplier
	}
}

// ClassifyAngle maps an absolute angle difference in [0, π] to a facing class.
// Both boundaries (exactly 45° and 135°) count as side hits.
func ClassifyAngle(delta float64) Facing {
	switch {
	case delta < config.FrontArc:
		return Front
	case delta > config.RearArc:
		return Rear
	default:
		return Side
	}
}

// Classify compares the target's facing with the direction from the target
// toward the attacker. An attacker standing where the target looks hits the
// front. Coincident positions are side hits.
func Classify(attackerPos, targetPos types.Vec, targetFacing float64) Facing {
	toAttacker := attackerPos.Sub(targetPos)
	if toAttacker.IsZero() {
		return Side
	}
	return ClassifyAngle(utils.AngleDiff(targetFacing, toAttacker.Angle()))
}
