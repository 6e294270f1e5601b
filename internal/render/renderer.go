// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"fortress-defense/internal/app"
	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/system"
)

const (
	healthBarWidth  = 24
	healthBarHeight = 4
	strokeWidth     = 2
)

// BattleRenderer рисует поле боя: линии, крепость, юнитов и эффекты.
type BattleRenderer struct {
	battle *app.Battle
	face   font.Face
}

func NewBattleRenderer(battle *app.Battle, face font.Face) *BattleRenderer {
	return &BattleRenderer{battle: battle, face: face}
}

func (r *BattleRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	r.drawField(screen)
	for _, u := range r.battle.Registry.All() {
		r.drawUnit(screen, u)
	}
	r.drawEffects(screen)
}

func (r *BattleRenderer) drawField(screen *ebiten.Image) {
	for _, lane := range r.battle.Library.Battlefield.Lanes {
		heading := system.LaneHeading(lane)
		// Линия идёт от точки появления до линии крепости.
		length := 0.0
		if heading.X < 0 {
			length = (lane.Spawn.X - config.FortressLineX) / -heading.X
		}
		end := lane.Spawn.Add(heading.Scale(length))
		vector.StrokeLine(screen, float32(lane.Spawn.X), float32(lane.Spawn.Y), float32(end.X), float32(end.Y), 18, config.LaneColor, true)
	}
	vector.StrokeLine(screen, config.FortressLineX, 0, config.FortressLineX, config.ScreenHeight, 3, config.FortressLineColor, true)
}

func (r *BattleRenderer) drawUnit(screen *ebiten.Image, u *component.Unit) {
	x, y := float32(u.Position.X), float32(u.Position.Y)
	radius := u.Render.Radius

	if !u.Alive {
		vector.DrawFilledCircle(screen, x, y, radius*0.8, config.CorpseColor, true)
		return
	}

	body := u.Render.Color
	if tint, ok := StatusTint(u.Status); ok {
		body = Blend(body, tint, 0.45)
	}
	if flash, ok := r.battle.VisualEffectSystem.Flashes[u.ID]; ok {
		body = Blend(body, color.RGBA{255, 255, 255, 255}, math.Min(1, flash.Timer*6))
	}
	if u.Render.HasStroke {
		vector.DrawFilledCircle(screen, x, y, radius+strokeWidth, DarkenColor(u.Render.Color), true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)

	// Направление взгляда.
	fx := x + float32(math.Cos(u.Facing))*radius
	fy := y + float32(math.Sin(u.Facing))*radius
	vector.StrokeLine(screen, x, y, fx, fy, 2, config.TextLightColor, true)

	if u.Health < u.MaxHealth {
		bx := x - healthBarWidth/2
		by := y - radius - 8
		vector.DrawFilledRect(screen, bx, by, healthBarWidth, healthBarHeight, config.HealthBarBack, false)
		vector.DrawFilledRect(screen, bx, by, healthBarWidth*float32(u.HealthFraction()), healthBarHeight, config.HealthBarFront, false)
	}
}

func (r *BattleRenderer) drawEffects(screen *ebiten.Image) {
	vfx := r.battle.VisualEffectSystem
	for _, ring := range vfx.Rings {
		vector.StrokeCircle(screen, float32(ring.Center.X), float32(ring.Center.Y), float32(ring.Radius()), 3, config.StunColor, true)
	}
	for _, t := range vfx.Texts {
		clr := config.TextLightColor
		label := fmt.Sprintf("%d", t.Amount)
		switch {
		case t.Heal:
			clr = config.HealColor
			label = "+" + label
		case t.Crit:
			clr = config.StunColor
			label += "!"
		}
		text.Draw(screen, label, r.face, int(t.Position.X)-6, int(t.Position.Y-t.Rise())-14, clr)
	}
}
