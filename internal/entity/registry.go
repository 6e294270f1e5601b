package entity

import (
	"errors"
	"fmt"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"
)

// ErrRegistryFull is returned by Spawn when capacity is reached.
var ErrRegistryFull = errors.New("unit registry at capacity")

// ErrInvalidTemplate is returned by Spawn for templates without health.
var ErrInvalidTemplate = errors.New("unit template has no health")

// Registry хранит все боевые сущности. Итерация идёт в порядке создания,
// чтобы симуляция была воспроизводимой.
type Registry struct {
	NextID   types.EntityID
	capacity int
	units    map[types.EntityID]*component.Unit
	order    []types.EntityID
}

func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = config.RegistryCapacity
	}
	return &Registry{
		NextID:   1,
		capacity: capacity,
		units:    make(map[types.EntityID]*component.Unit),
	}
}

// Spawn creates a unit from a template. Dead units still count toward
// capacity until removed.
func (r *Registry) Spawn(tmpl defs.UnitTemplate, team types.Team, pos types.Vec) (*component.Unit, error) {
	if len(r.units) >= r.capacity {
		return nil, fmt.Errorf("spawn %s: %w", tmpl.ID, ErrRegistryFull)
	}
	if tmpl.Health <= 0 {
		return nil, fmt.Errorf("spawn %s: %w", tmpl.ID, ErrInvalidTemplate)
	}

	id := r.NextID
	r.NextID++

	critMult := tmpl.CritMultiplier
	if critMult <= 0 {
		critMult = config.DefaultCritMultiple
	}
	mass := tmpl.Mass
	if mass <= 0 {
		mass = 1
	}
	radius := float32(config.DefaultUnitRadius)
	if tmpl.Visuals.RadiusFactor > 0 {
		radius = float32(2 * config.DefaultUnitRadius * tmpl.Visuals.RadiusFactor)
	}
	col := tmpl.Visuals.Color
	if col.A == 0 {
		col = config.FortressColor
		if team == types.TeamInvaders {
			col = config.InvaderColor
		}
	}

	u := &component.Unit{
		ID:         id,
		TemplateID: tmpl.ID,
		Team:       team,
		Position:   pos,
		Health:     tmpl.Health,
		MaxHealth:  tmpl.Health,
		Stats: component.Stats{
			Armor:          tmpl.Armor,
			Damage:         tmpl.Damage,
			Range:          tmpl.Range,
			AttackSpeed:    tmpl.AttackSpeed,
			CritChance:     tmpl.CritChance,
			CritMultiplier: critMult,
			Mass:           mass,
			MoveSpeed:      tmpl.MoveSpeed,
			Lifesteal:      tmpl.Lifesteal,
		},
		Link:   component.DamageLink{Group: tmpl.ShareGroup, Fraction: tmpl.ShareFraction},
		Skills: append([]string(nil), tmpl.Skills...),
		Status: status.NewTable(),
		Alive:  true,
		Render: component.Renderable{
			Color:     col,
			Radius:    radius,
			HasStroke: tmpl.Visuals.StrokeWidth > 0,
		},
	}
	r.units[id] = u
	r.order = append(r.order, id)
	return u, nil
}

// Get returns the unit with id, alive or dead.
func (r *Registry) Get(id types.EntityID) (*component.Unit, bool) {
	u, ok := r.units[id]
	return u, ok
}

// Remove deletes a unit. Returns false if it was not present.
func (r *Registry) Remove(id types.EntityID) bool {
	if _, ok := r.units[id]; !ok {
		return false
	}
	delete(r.units, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len is the number of stored units, corpses included.
func (r *Registry) Len() int {
	return len(r.units)
}

// Capacity is the spawn limit.
func (r *Registry) Capacity() int {
	return r.capacity
}

// All returns every stored unit in creation order.
func (r *Registry) All() []*component.Unit {
	out := make([]*component.Unit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.units[id])
	}
	return out
}

// AllByTeam returns the living units of team in creation order.
func (r *Registry) AllByTeam(team types.Team) []*component.Unit {
	var out []*component.Unit
	for _, id := range r.order {
		if u := r.units[id]; u.Alive && u.Team == team {
			out = append(out, u)
		}
	}
	return out
}

// InRadius returns living units of team within radius of center.
// A radius <= 0 disables the distance filter.
func (r *Registry) InRadius(center types.Vec, radius float64, team types.Team) []*component.Unit {
	var out []*component.Unit
	for _, u := range r.AllByTeam(team) {
		if radius <= 0 || u.Position.Dist(center) <= radius {
			out = append(out, u)
		}
	}
	return out
}

// Nearest returns the closest living unit of team within maxRange of from.
func (r *Registry) Nearest(from types.Vec, maxRange float64, team types.Team) *component.Unit {
	var best *component.Unit
	bestDist := maxRange
	for _, u := range r.AllByTeam(team) {
		if d := u.Position.Dist(from); d <= bestDist {
			if best == nil || d < bestDist {
				best, bestDist = u, d
			}
		}
	}
	return best
}

// Linked returns the living members of target's damage-share group.
func (r *Registry) Linked(target *component.Unit) []*component.Unit {
	if target.Link.Group == "" {
		return nil
	}
	var out []*component.Unit
	for _, u := range r.AllByTeam(target.Team) {
		if u.Link.Group == target.Link.Group {
			out = append(out, u)
		}
	}
	return out
}
