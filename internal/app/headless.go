// internal/app/headless.go
package app

import "fortress-defense/internal/system"

// Simulate прогоняет сражение без отрисовки фиксированными шагами, пока оно
// не завершится или не истечёт limit игровых секунд.
func (b *Battle) Simulate(step, limit float64) system.BattlePhase {
	if step <= 0 {
		return b.Phase()
	}
	for b.gameTime < limit && !b.Phase().Ended() {
		before := b.gameTime
		b.Update(step)
		if b.gameTime == before {
			break
		}
	}
	return b.Phase()
}
