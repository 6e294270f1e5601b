package combat

import (
	"math"

	"fortress-defense/internal/component"
)

// Portion is the part of a hit one unit absorbs.
type Portion struct {
	Unit   *component.Unit
	Amount int
	Shared bool // absorbed on behalf of a linked ally
}

// Split divides finalDamage between target and the living members of its
// damage-share group. The struck unit keeps at least 1 of a non-zero hit.
// All portions are computed before any health changes,
// so nested links cannot recurse.
func Split(finalDamage int, target *component.Unit, linked []*component.Unit) []Portion {
	var allies []*component.Unit
	if target.Link.Fraction > 0 && target.Link.Group != "" {
		for _, u := range linked {
			if u == nil || u == target || !u.Alive || u.Link.Group != target.Link.Group {
				continue
			}
			allies = append(allies, u)
		}
	}
	if len(allies) == 0 {
		return []Portion{{Unit: target, Amount: finalDamage}}
	}

	fraction := math.Min(1, target.Link.Fraction)
	shared := int(math.Round(float64(finalDamage) * fraction))
	// Тот, по кому попали, всегда получает не меньше минимального урона.
	if finalDamage >= 1 && finalDamage-shared < 1 {
		shared = finalDamage - 1
	}
	out := []Portion{{Unit: target, Amount: finalDamage - shared}}

	each, extra := shared/len(allies), shared%len(allies)
	for i, u := range allies {
		amount := each
		if i < extra {
			amount++
		}
		if amount > 0 {
			out = append(out, Portion{Unit: u, Amount: amount, Shared: true})
		}
	}
	return out
}
