package system

import (
	"fortress-defense/internal/defs"
	"fortress-defense/internal/types"
)

// maxTriggerChain ограничивает цепочки вида смерть → урон → смерть.
const maxTriggerChain = 10000

// Trigger — отложенный вызов навыков юнита.
type Trigger struct {
	Kind   defs.Trigger
	Source types.EntityID
	Target types.EntityID // Цель атаки для on_attack
}

// TriggerQueue собирает триггеры во время шага и исполняет их после него
// в порядке поступления.
type TriggerQueue struct {
	items []Trigger
}

func NewTriggerQueue() *TriggerQueue {
	return &TriggerQueue{}
}

func (q *TriggerQueue) Push(t Trigger) {
	q.items = append(q.items, t)
}

func (q *TriggerQueue) Len() int {
	return len(q.items)
}

// Drain вызывает handle для каждого триггера, включая добавленные во время
// обработки. Возвращает число обработанных и false, если цепочка оборвана лимитом.
func (q *TriggerQueue) Drain(handle func(Trigger)) (int, bool) {
	n := 0
	for len(q.items) > 0 {
		if n >= maxTriggerChain {
			q.items = q.items[:0]
			return n, false
		}
		t := q.items[0]
		q.items = q.items[1:]
		handle(t)
		n++
	}
	q.items = nil
	return n, true
}
