package combat

import (
	"math"
	"testing"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRoll struct {
	value float64
	calls int
}

func (f *fixedRoll) Float64() float64 {
	f.calls++
	return f.value
}

type recorder struct {
	events []DamageEvent
}

func (r *recorder) OnDamage(ev DamageEvent, _, _ *component.Unit) {
	r.events = append(r.events, ev)
}

func newUnit(id types.EntityID, x, y float64) *component.Unit {
	return &component.Unit{
		ID:        id,
		Position:  types.Vec{X: x, Y: y},
		Health:    1000,
		MaxHealth: 1000,
		Stats:     component.Stats{Mass: 1},
		Status:    status.NewTable(),
		Alive:     true,
	}
}

// Target at the origin looking along +X, attacker standing in front of it.
func frontPair() (attacker, target *component.Unit) {
	target = newUnit(2, 0, 0)
	target.Facing = 0
	attacker = newUnit(1, 10, 0)
	attacker.Facing = math.Pi
	return attacker, target
}

func TestClassifyAngle_Boundaries(t *testing.T) {
	assert.Equal(t, Front, ClassifyAngle(0))
	assert.Equal(t, Front, ClassifyAngle(math.Nextafter(config.FrontArc, 0)))
	assert.Equal(t, Side, ClassifyAngle(config.FrontArc), "exactly 45° is a side hit")
	assert.Equal(t, Side, ClassifyAngle(math.Pi/2))
	assert.Equal(t, Side, ClassifyAngle(config.RearArc), "exactly 135° is a side hit")
	assert.Equal(t, Rear, ClassifyAngle(math.Nextafter(config.RearArc, math.Pi)))
	assert.Equal(t, Rear, ClassifyAngle(math.Pi))
}

func TestClassify_ByPosition(t *testing.T) {
	origin := types.Vec{}
	tests := []struct {
		name     string
		attacker types.Vec
		facing   float64
		want     Facing
	}{
		{"in front", types.Vec{X: 10}, 0, Front},
		{"behind", types.Vec{X: -10}, 0, Rear},
		{"flank", types.Vec{Y: 10}, 0, Side},
		{"other flank", types.Vec{Y: -10}, 0, Side},
		{"front after wrap", types.Vec{X: -10}, math.Pi, Front},
		{"rear after wrap", types.Vec{X: 10, Y: 1}, -math.Pi, Rear},
		{"coincident", origin, 0, Side},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.attacker, origin, tt.facing))
		})
	}
}

func TestFacingMultiplier(t *testing.T) {
	assert.Equal(t, 0.7, Front.Multiplier())
	assert.Equal(t, 1.0, Side.Multiplier())
	assert.Equal(t, 1.5, Rear.Multiplier())
}

func TestFinalDamage_NeverBelowOne(t *testing.T) {
	for _, base := range []float64{0.1, 1, 5, 50, 500} {
		for _, armor := range []int{0, 1, 10, 100, 10000} {
			for _, f := range []Facing{Front, Side, Rear} {
				got := FinalDamage(base, f, false, 0, armor)
				assert.GreaterOrEqual(t, got, 1, "base=%v armor=%v facing=%v", base, armor, f)
			}
		}
	}
}

func TestResolve_FrontNoArmor(t *testing.T) {
	attacker, target := frontPair()
	r := NewResolver(&fixedRoll{value: 0.99})

	ev, ok := r.Resolve(attacker, target, 100)
	require.True(t, ok)
	assert.Equal(t, Front, ev.Facing)
	assert.False(t, ev.Crit)
	assert.Equal(t, 70, ev.Final)
}

func TestResolve_ArmorClampsToOne(t *testing.T) {
	attacker, target := frontPair()
	target.Stats.Armor = 69
	r := NewResolver(&fixedRoll{value: 0.99})

	ev, ok := r.Resolve(attacker, target, 100)
	require.True(t, ok)
	assert.Equal(t, 1, ev.Final)
}

func TestResolve_ForcedCrit(t *testing.T) {
	attacker, target := frontPair()
	attacker.Stats.CritChance = 1
	attacker.Stats.CritMultiplier = 3
	r := NewResolver(&fixedRoll{value: 0.999999})

	ev, ok := r.Resolve(attacker, target, 10)
	require.True(t, ok)
	assert.True(t, ev.Crit)
	assert.Equal(t, 21, ev.Final)
}

func TestResolve_CritGate(t *testing.T) {
	attacker, target := frontPair()

	never := &fixedRoll{value: 0}
	attacker.Stats.CritChance = 0
	ev, _ := NewResolver(never).Resolve(attacker, target, 10)
	assert.False(t, ev.Crit, "zero chance never crits")
	assert.Zero(t, never.calls)

	attacker.Stats.CritChance = 0.25
	ev, _ = NewResolver(&fixedRoll{value: 0.25}).Resolve(attacker, target, 10)
	assert.False(t, ev.Crit, "roll equal to chance is not a crit")

	ev, _ = NewResolver(&fixedRoll{value: 0.2499}).Resolve(attacker, target, 10)
	assert.True(t, ev.Crit)
	assert.Equal(t, 14, ev.Final, "default multiplier is x2")
}

func TestResolve_IgnoresInvalidInput(t *testing.T) {
	attacker, target := frontPair()
	r := NewResolver(&fixedRoll{})
	for _, base := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, ok := r.Resolve(attacker, target, base)
		assert.False(t, ok, "base=%v", base)
	}

	target.Alive = false
	_, ok := r.Resolve(attacker, target, 10)
	assert.False(t, ok)
}

func TestStrike_AppliesDamageKnockbackAndNotifies(t *testing.T) {
	attacker, target := frontPair()
	target.Health = 100
	rec := &recorder{}
	r := NewResolver(&fixedRoll{value: 0.5})
	r.Observe(rec)

	ev, ok := r.Strike(attacker, target, 100)
	require.True(t, ok)
	assert.Equal(t, 30, target.Health)
	require.Len(t, rec.events, 1)
	assert.Equal(t, ev, rec.events[0])

	// 70 * 0.05 toward -X, away from the attacker.
	assert.InDelta(t, -3.5, target.Motion.Velocity.X, 1e-9)
	assert.InDelta(t, 0, target.Motion.Velocity.Y, 1e-9)
}

func TestStrike_Lethal(t *testing.T) {
	attacker, target := frontPair()
	target.Health = 10
	r := NewResolver(&fixedRoll{})

	ev, ok := r.Strike(attacker, target, 100)
	require.True(t, ok)
	assert.True(t, ev.Lethal)
	assert.Equal(t, 0, target.Health)

	target.Alive = false
	_, ok = r.Strike(attacker, target, 100)
	assert.False(t, ok, "dead targets are ignored")
}

func TestImpulse_MassRatio(t *testing.T) {
	attacker, target := frontPair()

	attacker.Stats.Mass, target.Stats.Mass = 1, 4
	assert.InDelta(t, -100*0.05*0.25, Impulse(attacker, target, 100).X, 1e-9)

	attacker.Stats.Mass, target.Stats.Mass = 10, 1
	assert.InDelta(t, -100*0.05, Impulse(attacker, target, 100).X, 1e-9, "ratio capped at 1")

	target.Stats.Mass = 0
	assert.InDelta(t, -5, Impulse(attacker, target, 100).X, 1e-9)

	target.Position = attacker.Position
	assert.True(t, Impulse(attacker, target, 100).IsZero())
}

type groupLinker []*component.Unit

func (g groupLinker) Linked(*component.Unit) []*component.Unit { return g }

func TestStrike_DamageShare(t *testing.T) {
	attacker, target := frontPair()
	target.Health = 100
	target.Link = component.DamageLink{Group: "wall", Fraction: 0.5}

	a := newUnit(3, 0, 50)
	a.Health = 100
	a.Link = component.DamageLink{Group: "wall", Fraction: 0.5}
	b := newUnit(4, 0, -50)
	b.Health = 100
	b.Link = component.DamageLink{Group: "wall", Fraction: 0.5}
	stranger := newUnit(5, 0, 80)
	stranger.Health = 100

	rec := &recorder{}
	r := NewResolver(&fixedRoll{value: 0.9})
	r.SetLinker(groupLinker{target, a, b, stranger})
	r.Observe(rec)

	ev, ok := r.Strike(attacker, target, 100) // 70 after facing
	require.True(t, ok)
	assert.Equal(t, 35, ev.Final)
	assert.Equal(t, 65, target.Health)
	assert.Equal(t, 82, a.Health, "35 shared: 18 to the first ally")
	assert.Equal(t, 83, b.Health)
	assert.Equal(t, 100, stranger.Health)
	assert.Len(t, rec.events, 3)
	assert.True(t, rec.events[1].Shared)
	assert.True(t, a.Motion.Velocity.IsZero(), "knockback only hits the struck unit")
}

func TestSplit_StruckUnitKeepsMinimum(t *testing.T) {
	target := newUnit(1, 0, 0)
	target.Link = component.DamageLink{Group: "wall", Fraction: 0.5}
	ally := newUnit(2, 10, 0)
	ally.Link = component.DamageLink{Group: "wall", Fraction: 0.5}

	got := Split(1, target, []*component.Unit{target, ally})
	assert.Equal(t, []Portion{{Unit: target, Amount: 1}}, got)

	target.Link.Fraction = 1
	got = Split(4, target, []*component.Unit{target, ally})
	assert.Equal(t, []Portion{{Unit: target, Amount: 1}, {Unit: ally, Amount: 3, Shared: true}}, got)
}

func TestSplit_NoAllies(t *testing.T) {
	target := newUnit(1, 0, 0)
	target.Link = component.DamageLink{Group: "solo", Fraction: 0.5}
	got := Split(40, target, nil)
	assert.Equal(t, []Portion{{Unit: target, Amount: 40}}, got)
}

func TestDirect(t *testing.T) {
	target := newUnit(1, 0, 0)
	target.Health = 5
	target.Stats.Armor = 100
	rec := &recorder{}
	r := NewResolver(nil)
	r.Observe(rec)

	ev, ok := r.Direct(nil, target, 5)
	require.True(t, ok)
	assert.True(t, ev.Lethal, "periodic damage ignores armor")
	assert.Len(t, rec.events, 1)
}
