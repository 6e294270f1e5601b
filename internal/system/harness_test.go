package system

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/skill"
	"fortress-defense/internal/timer"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

// harness собирает системы так же, как это делает сражение.
type harness struct {
	now      float64
	logs     *bytes.Buffer
	lib      *defs.Library
	reg      *entity.Registry
	events   *event.Dispatcher
	rec      *recorder
	timers   *timer.Scheduler
	triggers *TriggerQueue
	resolver *combat.Resolver
	ctx      *CombatContext
	deaths   *DeathSystem
	skills   *SkillSystem
	factory  *UnitFactory
	waves    *WaveScheduler
}

var (
	grunt = defs.UnitTemplate{ID: "GRUNT", Health: 30, Damage: 4, Range: 30, AttackSpeed: 1, Mass: 1, MoveSpeed: 50}
	guard = defs.UnitTemplate{ID: "GUARD", Health: 100, Damage: 10, Range: 60, AttackSpeed: 1, Mass: 2}
	north = defs.Lane{ID: "north", Spawn: types.Vec{X: 1000, Y: 200}}
)

func newHarness(t *testing.T, capacity int, units []defs.UnitTemplate, skills []defs.SkillTemplate, waves []defs.WaveConfig) *harness {
	t.Helper()
	h := &harness{logs: &bytes.Buffer{}, rec: &recorder{}}
	log := zerolog.New(h.logs)
	clock := func() float64 { return h.now }

	h.lib = defs.NewLibrary(log, units, skills, waves, defs.Battlefield{Lanes: []defs.Lane{north}})
	h.reg = entity.NewRegistry(capacity)
	h.events = event.NewDispatcher()
	h.events.SubscribeAll(h.rec, event.DamageDealt, event.StatusApplied, event.Healed, event.UnitSpawned,
		event.UnitDeath, event.WaveStarted, event.WaveCleared, event.FortressBreached, event.BattleEnded)
	h.timers = timer.NewScheduler()
	h.triggers = NewTriggerQueue()
	rng := utils.NewPRNGService(7)

	h.resolver = combat.NewResolver(rng)
	h.resolver.SetLinker(h.reg)
	h.ctx = NewCombatContext(h.reg, h.resolver, h.events, clock)
	h.deaths = NewDeathSystem(h.reg, h.triggers, h.events, clock)
	h.resolver.Observe(NewDamageFeedback(h.ctx, h.events, clock))
	h.resolver.Observe(h.deaths)

	h.skills = NewSkillSystem(h.reg, h.lib, skill.NewApplier(log), h.ctx, h.triggers, clock, log)
	h.deaths.NotifyCleanup(h.skills)
	h.factory = NewUnitFactory(h.reg, h.lib, h.triggers, h.events)
	h.waves = NewWaveScheduler(h.lib, h.timers, h.factory, rng, h.events, log)
	h.deaths.NotifyRemovals(h.waves)
	return h
}

func (h *harness) advance(to float64) {
	h.now = to
	h.timers.AdvanceTo(to)
}

func (h *harness) spawn(t *testing.T, id string, team types.Team, x float64) *component.Unit {
	t.Helper()
	u, err := h.factory.Spawn(id, team, types.Vec{X: x, Y: 200}, nil, h.now)
	if err != nil {
		t.Fatalf("spawn %s: %v", id, err)
	}
	return u
}
