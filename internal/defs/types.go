// internal/defs/types.go
package defs

import "image/color"

// Trigger defines when a skill fires.
type Trigger string

const (
	TriggerOnAttack    Trigger = "on_attack"
	TriggerOnSpawn     Trigger = "on_spawn"
	TriggerOnDeath     Trigger = "on_death"
	TriggerPassiveTick Trigger = "passive_tick"
	TriggerCommander   Trigger = "commander"
)

// TargetSelector defines who a skill affects.
type TargetSelector string

const (
	TargetUnset TargetSelector = ""
	TargetSelf  TargetSelector = "self"
	TargetAlly  TargetSelector = "ally"
	TargetEnemy TargetSelector = "enemy"
	TargetBoth  TargetSelector = "both"
)

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
