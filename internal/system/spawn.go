package system

import (
	"math"

	"fortress-defense/internal/component"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/types"
)

// UnitFactory создаёт юнитов по шаблонам и ставит их on_spawn навыки в очередь.
type UnitFactory struct {
	registry        *entity.Registry
	library         *defs.Library
	triggers        *TriggerQueue
	eventDispatcher *event.Dispatcher
}

func NewUnitFactory(registry *entity.Registry, library *defs.Library, triggers *TriggerQueue, eventDispatcher *event.Dispatcher) *UnitFactory {
	return &UnitFactory{
		registry:        registry,
		library:         library,
		triggers:        triggers,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn создаёт юнита. Неизвестный шаблон заменяется defs.DefaultUnit.
func (f *UnitFactory) Spawn(templateID string, team types.Team, pos types.Vec, lane *defs.Lane, now float64) (*component.Unit, error) {
	tmpl := f.library.Unit(templateID)
	u, err := f.registry.Spawn(tmpl, team, pos)
	if err != nil {
		return nil, err
	}

	if lane != nil {
		u.Lane = lane.ID
		u.Motion.Heading = LaneHeading(*lane)
	}
	// Защитники смотрят навстречу врагу, нападающие — в сторону крепости.
	u.Facing = 0
	if team == types.TeamInvaders {
		u.Facing = math.Pi
		if !u.Motion.Heading.IsZero() {
			u.Facing = u.Motion.Heading.Angle()
		}
	}

	f.triggers.Push(Trigger{Kind: defs.TriggerOnSpawn, Source: u.ID})
	f.eventDispatcher.Dispatch(event.Event{Type: event.UnitSpawned, Data: event.UnitData{
		ID:         u.ID,
		TemplateID: u.TemplateID,
		Team:       u.Team,
		Lane:       u.Lane,
		Time:       now,
	}})
	return u, nil
}

// LaneHeading — единичный курс линии; по умолчанию прямо к крепости (-X).
func LaneHeading(lane defs.Lane) types.Vec {
	if h := lane.Heading.Unit(); !h.IsZero() {
		return h
	}
	return types.Vec{X: -1}
}
