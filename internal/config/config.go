// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Линия крепости: враг, пересёкший её по X, наносит урон крепости.
	FortressLineX     = 140.0
	FortressHealth    = 20
	BreachDamage      = 1
	WaveIntermission  = 5.0 // Пауза между волнами (сек)
	DeathGracePeriod  = 1.5 // Сколько мёртвое тело остаётся в реестре
	SpawnJitter       = 12.0
	RegistryCapacity  = 512
	DefaultUnitRadius = 10.0
)

// Боевые коэффициенты.
const (
	FrontArc            = math.Pi / 4     // < 45° — удар в лоб
	RearArc             = 3 * math.Pi / 4 // > 135° — удар в спину
	FrontMultiplier     = 0.7
	SideMultiplier      = 1.0
	RearMultiplier      = 1.5
	DefaultCritMultiple = 2.0
	KnockbackFactor     = 0.05
	MinDamage           = 1
)

// Параметры физики и статусов по умолчанию.
const (
	BaseFriction        = 8.0 // Затухание скорости отбрасывания (1/сек)
	GreasedFriction     = 1.5
	DefaultSlowFactor   = 0.5
	DefaultSuppress     = 0.5
	DefaultDazeAccuracy = 0.5
	DefaultTickInterval = 1.0
	DefaultBuffDuration = 5.0
	VelocityEpsilon     = 0.01 // Меньшая скорость отбрасывания обнуляется
	FacingTurnRate      = 8.0  // Скорость поворота (доля дуги в секунду)
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	LaneColor         = color.RGBA{70, 100, 120, 220}
	FortressLineColor = color.RGBA{50, 205, 50, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	FortressColor     = color.RGBA{50, 100, 255, 255}
	InvaderColor      = color.RGBA{255, 50, 50, 255}
	CorpseColor       = color.RGBA{90, 90, 90, 160}
	HealthBarBack     = color.RGBA{40, 40, 40, 220}
	HealthBarFront    = color.RGBA{50, 205, 50, 255}
	StunColor         = color.RGBA{255, 215, 0, 255}
	SlowColor         = color.RGBA{0, 200, 255, 255}
	PoisonColor       = color.RGBA{130, 220, 60, 255}
	HealColor         = color.RGBA{120, 255, 140, 255}
	CommanderColor    = color.RGBA{180, 50, 230, 120}
)
