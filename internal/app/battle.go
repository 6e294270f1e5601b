// internal/app/battle.go
package app

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/logging"
	"fortress-defense/internal/skill"
	"fortress-defense/internal/status"
	"fortress-defense/internal/system"
	"fortress-defense/internal/timer"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

// CommanderID — псевдо-юнит командира; в реестре его нет.
const CommanderID types.EntityID = 0

// Battle holds the battle state and runs the per-frame update.
type Battle struct {
	Library         *defs.Library
	Registry        *entity.Registry
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Timers             *timer.Scheduler
	Resolver           *combat.Resolver
	WaveScheduler      *system.WaveScheduler
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	AuraSystem         *system.AuraSystem
	SkillSystem        *system.SkillSystem
	DeathSystem        *system.DeathSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	log       zerolog.Logger
	factory   *system.UnitFactory
	commander *component.Unit
	gameTime  float64
	started   bool
}

// NewBattle wires every system around one registry and one event dispatcher.
func NewBattle(settings config.Settings, library *defs.Library, log zerolog.Logger) *Battle {
	b := &Battle{
		Library:         library,
		Registry:        entity.NewRegistry(settings.RegistryCapacity),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(settings.Seed),
		Timers:          timer.NewScheduler(),
		log:             log,
	}
	clock := b.Now
	triggers := system.NewTriggerQueue()

	b.Resolver = combat.NewResolver(b.Rng)
	b.Resolver.SetLinker(b.Registry)
	ctx := system.NewCombatContext(b.Registry, b.Resolver, b.EventDispatcher, clock)

	b.DeathSystem = system.NewDeathSystem(b.Registry, triggers, b.EventDispatcher, clock)
	b.Resolver.Observe(system.NewDamageFeedback(ctx, b.EventDispatcher, clock))
	b.Resolver.Observe(b.DeathSystem)

	applier := skill.NewApplier(logging.Component(log, "skill"))
	b.SkillSystem = system.NewSkillSystem(b.Registry, library, applier, ctx, triggers, clock, logging.Component(log, "skill"))
	b.DeathSystem.NotifyCleanup(b.SkillSystem)

	b.factory = system.NewUnitFactory(b.Registry, library, triggers, b.EventDispatcher)
	b.WaveScheduler = system.NewWaveScheduler(library, b.Timers, b.factory, b.Rng, b.EventDispatcher, logging.Component(log, "wave"))
	b.DeathSystem.NotifyRemovals(b.WaveScheduler)

	b.MovementSystem = system.NewMovementSystem(b.Registry)
	b.StatusEffectSystem = system.NewStatusEffectSystem(b.Registry, b.Resolver, ctx)
	b.CombatSystem = system.NewCombatSystem(b.Registry, b.Resolver, triggers, b.Rng)
	b.AuraSystem = system.NewAuraSystem(b.Registry, b.SkillSystem)
	b.StateSystem = system.NewStateSystem(b.Registry, b.WaveScheduler, b.DeathSystem, b.Timers, b.EventDispatcher,
		settings.FortressHealth, settings.Intermission, logging.Component(log, "state"))

	b.VisualEffectSystem = system.NewVisualEffectSystem(b.Registry, b.EventDispatcher)

	b.commander = &component.Unit{
		ID:         CommanderID,
		TemplateID: "COMMANDER",
		Team:       types.TeamFortress,
		Position:   types.Vec{X: config.FortressLineX, Y: config.ScreenHeight / 2},
		Health:     1,
		MaxHealth:  1,
		Stats:      component.Stats{CritMultiplier: config.DefaultCritMultiple, Mass: 1},
		Status:     status.NewTable(),
		Alive:      true,
	}
	return b
}

// Now — игровое время в секундах с начала сражения.
func (b *Battle) Now() float64 {
	return b.gameTime
}

// StartBattle расставляет гарнизон и запускает первую волну.
func (b *Battle) StartBattle() error {
	if b.started {
		return nil
	}
	b.started = true
	for _, p := range b.Library.Battlefield.Placements {
		if _, err := b.factory.Spawn(p.UnitID, types.TeamFortress, p.Position, nil, b.gameTime); err != nil {
			b.log.Warn().Err(err).Str("unit", p.UnitID).Msg("placement rejected")
		}
	}
	err := b.StateSystem.Start(b.gameTime)
	b.SkillSystem.Drain()
	return err
}

// Update advances the battle by deltaTime seconds. Systems run in a fixed
// order; triggers queued by a step are drained right after it.
func (b *Battle) Update(deltaTime float64) {
	if !b.started || b.StateSystem.Current().Ended() {
		return
	}
	if math.IsNaN(deltaTime) || deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	b.gameTime += deltaTime

	b.MovementSystem.Update(deltaTime)
	b.SkillSystem.Drain()

	b.StatusEffectSystem.Update(deltaTime)
	b.SkillSystem.Drain()

	b.CombatSystem.Update(deltaTime)
	b.SkillSystem.Drain()

	b.AuraSystem.Update()
	b.SkillSystem.Drain()

	// Учёт волн: таймеры появления, прорывы, уборка тел.
	b.Timers.AdvanceTo(b.gameTime)
	b.StateSystem.Update(b.gameTime)
	b.SkillSystem.Drain()
	b.DeathSystem.Update(b.gameTime)

	b.VisualEffectSystem.Update(deltaTime)
}

// CastCommander применяет способность командира в точке.
func (b *Battle) CastCommander(skillID string, point types.Vec) bool {
	if !b.started || b.StateSystem.Current().Ended() {
		return false
	}
	ok := b.SkillSystem.Cast(skillID, b.commander, point)
	b.SkillSystem.Drain()
	if ok {
		if tmpl, found := b.Library.Skills[skillID]; found {
			b.VisualEffectSystem.AddRing(point, tmpl.Radius)
		}
		b.log.Debug().Str("skill", skillID).Float64("x", point.X).Float64("y", point.Y).Msg("commander ability cast")
	}
	return ok
}

// CommanderReady сообщает, готова ли способность командира.
func (b *Battle) CommanderReady(skillID string) bool {
	return b.SkillSystem.Ready(skillID, CommanderID)
}

// CommanderCooldown — оставшаяся перезарядка способности командира.
func (b *Battle) CommanderCooldown(skillID string) float64 {
	return b.SkillSystem.Cooldown(skillID, CommanderID)
}

// CommanderSkills — способности командира из контента, по id.
func (b *Battle) CommanderSkills() []defs.SkillTemplate {
	var out []defs.SkillTemplate
	for _, s := range b.Library.Skills {
		if s.Trigger == defs.TriggerCommander {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (b *Battle) Phase() system.BattlePhase { return b.StateSystem.Current() }
func (b *Battle) FortressHealth() int        { return b.StateSystem.FortressHealth() }
func (b *Battle) Wave() int                  { return b.WaveScheduler.Index() }
