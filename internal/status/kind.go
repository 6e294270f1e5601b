package status

import "strings"

// Kind is a status effect category. At most one entry per kind is active on a unit.
type Kind int

const (
	Stunned Kind = iota
	Slowed
	Snared
	Suppressed
	Dazed
	Greased
	DamageOverTime
	HealOverTime
	Empowered

	kindCount
)

var kindNames = [kindCount]string{
	Stunned:        "stunned",
	Slowed:         "slowed",
	Snared:         "snared",
	Suppressed:     "suppressed",
	Dazed:          "dazed",
	Greased:        "greased",
	DamageOverTime: "dot",
	HealOverTime:   "hot",
	Empowered:      "empowered",
}

// Content files use both the short verb and the participle form.
var kindAliases = map[string]Kind{
	"stun":     Stunned,
	"slow":     Slowed,
	"snare":    Snared,
	"root":     Snared,
	"suppress": Suppressed,
	"daze":     Dazed,
	"grease":   Greased,
	"poison":   DamageOverTime,
	"burn":     DamageOverTime,
	"regen":    HealOverTime,
	"buff":     Empowered,
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a content name such as "stun" or "SLOWED".
func ParseKind(name string) (Kind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), true
		}
	}
	k, ok := kindAliases[n]
	return k, ok
}

// Periodic kinds fire on their own tick interval.
func (k Kind) Periodic() bool {
	return k == DamageOverTime || k == HealOverTime
}

// Debuff reports whether a cleanse removes the kind.
func (k Kind) Debuff() bool {
	return k != HealOverTime && k != Empowered && k >= 0 && k < kindCount
}
