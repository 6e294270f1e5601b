package defs

import "fortress-defense/internal/types"

// SpawnEvent describes a batch of enemies entering a lane.
type SpawnEvent struct {
	UnitID string  `json:"unit_id"`
	Count  int     `json:"count"`
	Offset float64 `json:"offset"` // Seconds from wave start
	Lane   string  `json:"lane"`
}

// WaveConfig описывает одну волну врагов.
type WaveConfig struct {
	Name   string       `json:"name,omitempty"`
	Spawns []SpawnEvent `json:"spawns"`
}

// Lane is a fixed approach path toward the fortress.
type Lane struct {
	ID    string    `json:"id"`
	Spawn types.Vec `json:"spawn"`
	// Heading points from the spawn toward the fortress. Zero means straight toward -X.
	Heading types.Vec `json:"heading"`
}

// Placement is a fortress unit that exists when the battle starts.
type Placement struct {
	UnitID   string    `json:"unit_id"`
	Position types.Vec `json:"position"`
}
