// component/movement.go
package component

import "fortress-defense/internal/types"

// Motion — компонент движения: курс по линии и импульс отбрасывания.
type Motion struct {
	Heading  types.Vec // Единичный вектор к крепости; нулевой у стационарных юнитов
	Velocity types.Vec // Импульс отбрасывания, затухает с трением
}
