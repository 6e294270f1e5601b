// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"fortress-defense/internal/types"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактический сид, в том числе выбранный по времени.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter сдвигает точку на случайный вектор с компонентами в [-amp, amp).
func (s *PRNGService) Jitter(p types.Vec, amp float64) types.Vec {
	if amp <= 0 {
		return p
	}
	return types.Vec{
		X: p.X + (s.rng.Float64()*2-1)*amp,
		Y: p.Y + (s.rng.Float64()*2-1)*amp,
	}
}
