package system

import (
	"fortress-defense/internal/combat"
	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/types"
)

var _ combat.Observer = (*DeathSystem)(nil)

// RemovalListener узнаёт о каждом враге, покинувшем бой (смерть или прорыв).
type RemovalListener interface {
	OnEnemyRemoved(id types.EntityID, now float64)
}

// Forgetter сбрасывает состояние, привязанное к удалённому юниту.
type Forgetter interface {
	Forget(id types.EntityID)
}

// DeathSystem обрабатывает гибель юнитов и убирает тела после паузы.
type DeathSystem struct {
	registry        *entity.Registry
	triggers        *TriggerQueue
	eventDispatcher *event.Dispatcher
	clock           Clock
	removals        []RemovalListener
	forgetters      []Forgetter
}

func NewDeathSystem(registry *entity.Registry, triggers *TriggerQueue, eventDispatcher *event.Dispatcher, clock Clock) *DeathSystem {
	return &DeathSystem{
		registry:        registry,
		triggers:        triggers,
		eventDispatcher: eventDispatcher,
		clock:           clock,
	}
}

// NotifyRemovals подписывает l на выбывание врагов.
func (s *DeathSystem) NotifyRemovals(l RemovalListener) {
	s.removals = append(s.removals, l)
}

// NotifyCleanup подписывает f на окончательное удаление юнитов.
func (s *DeathSystem) NotifyCleanup(f Forgetter) {
	s.forgetters = append(s.forgetters, f)
}

func (s *DeathSystem) OnDamage(ev combat.DamageEvent, _, target *component.Unit) {
	if ev.Lethal {
		s.Kill(target, ev.Attacker)
	}
}

// Kill убивает юнита. Повторный вызов ничего не делает, поэтому смерть
// засчитывается ровно один раз даже при вложенных триггерах.
func (s *DeathSystem) Kill(u *component.Unit, killer types.EntityID) bool {
	if u == nil || !u.Alive {
		return false
	}
	now := s.clock()
	s.retire(u, now)

	s.triggers.Push(Trigger{Kind: defs.TriggerOnDeath, Source: u.ID})
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitDeath, Data: event.UnitDeathData{
		ID:         u.ID,
		TemplateID: u.TemplateID,
		Team:       u.Team,
		Killer:     killer,
		Time:       now,
	}})
	s.notifyRemoved(u, now)
	return true
}

// Withdraw выводит юнита из боя без смерти и без on_death навыков.
func (s *DeathSystem) Withdraw(u *component.Unit) bool {
	if u == nil || !u.Alive {
		return false
	}
	now := s.clock()
	s.retire(u, now)
	// Тело не остаётся на поле.
	u.DiedAt = now - config.DeathGracePeriod
	s.notifyRemoved(u, now)
	return true
}

func (s *DeathSystem) retire(u *component.Unit, now float64) {
	u.Alive = false
	u.DiedAt = now
	u.TargetID = 0
	u.Motion.Velocity = types.Vec{}
	u.Status.Clear()
}

func (s *DeathSystem) notifyRemoved(u *component.Unit, now float64) {
	if u.Team != types.TeamInvaders {
		return
	}
	for _, l := range s.removals {
		l.OnEnemyRemoved(u.ID, now)
	}
}

// Update удаляет тела, пролежавшие дольше config.DeathGracePeriod.
func (s *DeathSystem) Update(now float64) {
	for _, u := range s.registry.All() {
		if u.Alive || now-u.DiedAt < config.DeathGracePeriod {
			continue
		}
		s.registry.Remove(u.ID)
		for _, f := range s.forgetters {
			f.Forget(u.ID)
		}
	}
}
