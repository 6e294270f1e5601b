// internal/event/types.go
package event

import (
	"fortress-defense/internal/status"
	"fortress-defense/internal/types"
)

const (
	DamageDealt      EventType = "DamageDealt"      // Data: DamageDealtData
	StatusApplied    EventType = "StatusApplied"    // Data: StatusAppliedData
	Healed           EventType = "Healed"           // Data: HealedData
	UnitSpawned      EventType = "UnitSpawned"      // Data: UnitData
	UnitDeath        EventType = "UnitDeath"        // Data: UnitDeathData
	WaveStarted      EventType = "WaveStarted"      // Data: WaveData
	WaveCleared      EventType = "WaveCleared"      // Data: WaveData
	FortressBreached EventType = "FortressBreached" // Data: BreachData
	BattleEnded      EventType = "BattleEnded"      // Data: BattleEndedData
)

type DamageDealtData struct {
	Attacker types.EntityID
	Target   types.EntityID
	Amount   int
	Crit     bool
	Facing   string
	Shared   bool
	Time     float64
}

type StatusAppliedData struct {
	Target   types.EntityID
	Kind     status.Kind
	Duration float64
	Time     float64
}

type HealedData struct {
	Target types.EntityID
	Amount int
	Time   float64
}

type UnitData struct {
	ID         types.EntityID
	TemplateID string
	Team       types.Team
	Lane       string
	Time       float64
}

type UnitDeathData struct {
	ID         types.EntityID
	TemplateID string
	Team       types.Team
	Killer     types.EntityID
	Time       float64
}

type WaveData struct {
	Index   int
	Spawned int
	Time    float64
}

type BreachData struct {
	ID             types.EntityID
	TemplateID     string
	FortressHealth int
	Time           float64
}

type BattleEndedData struct {
	Victory bool
	Waves   int
	Time    float64
}
