// internal/types/types.go
package types

import "math"

// EntityID идентифицирует сущность в реестре. Ноль зарезервирован за командиром.
type EntityID uint64

// Team — сторона конфликта.
type Team int

const (
	TeamFortress Team = iota // Защитники крепости
	TeamInvaders             // Нападающие волны
)

func (t Team) String() string {
	switch t {
	case TeamFortress:
		return "fortress"
	case TeamInvaders:
		return "invaders"
	default:
		return "unknown"
	}
}

// Opponent возвращает противоположную сторону.
func (t Team) Opponent() Team {
	if t == TeamFortress {
		return TeamInvaders
	}
	return TeamFortress
}

// Vec — двумерный вектор в мировых координатах (пиксели).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Unit возвращает единичный вектор того же направления или нулевой вектор.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}
