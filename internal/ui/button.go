// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
	Selected   bool
	Progress   float64 // Заполнение полосы перезарядки, 0..1
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{60, 60, 80, 230},
		HoverColor: color.RGBA{90, 90, 120, 230},
		Progress:   1,
		Font:       face,
	}
}

// Contains — попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) && !b.Disabled {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	if b.Progress < 1 {
		vector.DrawFilledRect(screen, x, y+h-4, w*float32(b.Progress), 4, color.RGBA{200, 200, 80, 255}, false)
	}
	border := color.RGBA{30, 30, 30, 255}
	if b.Selected {
		border = color.RGBA{255, 215, 0, 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	clr := b.TextColor
	if b.Disabled {
		clr = color.RGBA{140, 140, 140, 255}
	}
	bounds := text.BoundString(b.Font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, clr)
}
