// internal/render/color.go
package render

import (
	"image/color"

	"fortress-defense/internal/config"
	"fortress-defense/internal/status"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Blend mixes c toward tint by t in [0, 1].
func Blend(c, tint color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: mix(c.R, tint.R), G: mix(c.G, tint.G), B: mix(c.B, tint.B), A: c.A}
}

// StatusTint returns the overlay color for the most visible active effect.
func StatusTint(table *status.Table) (color.RGBA, bool) {
	if table == nil {
		return color.RGBA{}, false
	}
	switch {
	case table.Has(status.Stunned):
		return config.StunColor, true
	case table.Has(status.DamageOverTime):
		return config.PoisonColor, true
	case table.Has(status.Snared), table.Has(status.Slowed):
		return config.SlowColor, true
	case table.Has(status.HealOverTime), table.Has(status.Empowered):
		return config.HealColor, true
	}
	return color.RGBA{}, false
}
