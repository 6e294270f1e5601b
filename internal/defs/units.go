// internal/defs/units.go
package defs

// UnitTemplate holds all the static data for a specific type of unit.
type UnitTemplate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Health         int      `json:"health"`
	Armor          int      `json:"armor"`
	Damage         int      `json:"damage"`
	Range          float64  `json:"range"`
	AttackSpeed    float64  `json:"attack_speed"` // Attacks per second
	CritChance     float64  `json:"crit_chance"`
	CritMultiplier float64  `json:"crit_multiplier"`
	Mass           float64  `json:"mass"`
	MoveSpeed      float64  `json:"move_speed"`
	Lifesteal      float64  `json:"lifesteal,omitempty"`
	ShareGroup     string   `json:"share_group,omitempty"`
	ShareFraction  float64  `json:"share_fraction,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Visuals        Visuals  `json:"visuals"`
}

// DefaultUnit is used when a template id cannot be resolved.
var DefaultUnit = UnitTemplate{
	ID:          "DEFAULT",
	Name:        "Militia",
	Health:      50,
	Damage:      5,
	Range:       40,
	AttackSpeed: 1,
	Mass:        1,
	MoveSpeed:   40,
	Visuals:     Visuals{RadiusFactor: 0.5},
}
