// internal/ui/fortress_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"fortress-defense/internal/config"
)

// FortressHealthIndicator — полоса здоровья крепости.
type FortressHealthIndicator struct {
	X, Y          float32
	Width, Height float32
	Font          font.Face
}

func NewFortressHealthIndicator(x, y, width, height float32, face font.Face) *FortressHealthIndicator {
	return &FortressHealthIndicator{X: x, Y: y, Width: width, Height: height, Font: face}
}

func (i *FortressHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	fraction := float32(0)
	if maxHealth > 0 {
		fraction = float32(health) / float32(maxHealth)
	}
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBarBack, false)
	front := config.HealthBarFront
	if fraction < 0.3 {
		front = config.InvaderColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*fraction, i.Height, front, false)

	label := fmt.Sprintf("Fortress %d/%d", health, maxHealth)
	text.Draw(screen, label, i.Font, int(i.X)+4, int(i.Y+i.Height)-3, config.TextLightColor)
}
