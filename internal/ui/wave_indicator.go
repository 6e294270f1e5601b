// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"fortress-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
	Font         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: color.Black,
		Font:         face,
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор; waveNumber начинается с единицы.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, total int) {
	if waveNumber <= 0 {
		return
	}
	label := "Wave " + ToRoman(waveNumber)
	if total > 0 {
		label += " / " + ToRoman(total)
	}

	// Последняя волна подсвечивается красным.
	clr := i.Color
	if waveNumber == total {
		clr = config.InvaderColor
	}

	x := i.X - text.BoundString(i.Font, label).Dx()/2
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, i.Font, x+d[0], i.Y+d[1], i.OutlineColor)
	}
	text.Draw(screen, label, i.Font, x, i.Y, clr)
}
