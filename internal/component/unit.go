package component

import (
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"
)

// Unit — боевая сущность: юнит, постройка или враг.
type Unit struct {
	ID         types.EntityID
	TemplateID string
	Team       types.Team
	Lane       string

	Position types.Vec
	Facing   float64 // Направление взгляда (радианы)
	Motion   Motion

	Health    int
	MaxHealth int
	Stats     Stats
	Link      DamageLink
	Skills    []string

	Status         *status.Table
	AttackCooldown float64
	TargetID       types.EntityID

	Alive  bool
	DiedAt float64

	Render Renderable
}

// Mods возвращает модификаторы, наложенные статус-эффектами.
func (u *Unit) Mods() status.Modifiers {
	if u.Status == nil {
		return status.BaseModifiers()
	}
	return u.Status.Modifiers()
}

// CanAct — может ли юнит двигаться и атаковать.
func (u *Unit) CanAct() bool {
	return u.Alive && !u.Mods().Stunned
}

// Heal восстанавливает здоровье, не превышая максимум. Возвращает фактическое лечение.
func (u *Unit) Heal(amount int) int {
	if !u.Alive || amount <= 0 {
		return 0
	}
	before := u.Health
	u.Health += amount
	if u.Health > u.MaxHealth {
		u.Health = u.MaxHealth
	}
	return u.Health - before
}

// HealthFraction — доля оставшегося здоровья для полосы здоровья.
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return float64(u.Health) / float64(u.MaxHealth)
}
