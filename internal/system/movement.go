// internal/system/movement.go
package system

import (
	"math"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/entity"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

// MovementSystem — физика шага: отбрасывание с трением, марш нападающих
// по линии и поворот к цели.
type MovementSystem struct {
	registry *entity.Registry
}

func NewMovementSystem(registry *entity.Registry) *MovementSystem {
	return &MovementSystem{registry: registry}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, u := range s.registry.All() {
		if !u.Alive {
			continue
		}
		s.integrateKnockback(u, deltaTime)

		if !u.CanAct() {
			continue
		}
		enemy := s.registry.Nearest(u.Position, u.Stats.Range, u.Team.Opponent())
		switch {
		case enemy != nil:
			s.turnTo(u, enemy.Position.Sub(u.Position).Angle(), deltaTime)
		case u.Team == types.TeamInvaders:
			s.march(u, deltaTime)
		}
	}
}

func (s *MovementSystem) integrateKnockback(u *component.Unit, deltaTime float64) {
	vel := u.Motion.Velocity
	if vel.IsZero() {
		return
	}
	u.Position = u.Position.Add(vel.Scale(deltaTime))

	// Экспоненциальное затухание; на смазанной земле (GREASED) трение меньше.
	decay := math.Exp(-u.Mods().Friction * deltaTime)
	vel = vel.Scale(decay)
	if vel.Len() < config.VelocityEpsilon {
		vel = types.Vec{}
	}
	u.Motion.Velocity = vel
}

func (s *MovementSystem) march(u *component.Unit, deltaTime float64) {
	speed := u.Stats.MoveSpeed * u.Mods().MoveSpeed
	heading := u.Motion.Heading
	if speed <= 0 || heading.IsZero() {
		return
	}
	u.Position = u.Position.Add(heading.Scale(speed * deltaTime))
	s.turnTo(u, heading.Angle(), deltaTime)
}

func (s *MovementSystem) turnTo(u *component.Unit, angle, deltaTime float64) {
	t := utils.Clamp(config.FacingTurnRate*deltaTime, 0, 1)
	u.Facing = utils.LerpAngle(u.Facing, angle, t)
}
