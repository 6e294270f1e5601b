// internal/system/visual_effect.go
package system

import (
	"fortress-defense/internal/entity"
	"fortress-defense/internal/event"
	"fortress-defense/internal/types"
)

const (
	damageFlashTime = 0.15
	floatTextTime   = 0.8
	floatTextRise   = 30.0 // пикселей за время жизни
	ringTime        = 0.4
)

// DamageFlash — кратковременная подсветка получившего урон юнита.
type DamageFlash struct {
	Timer float64
	Crit  bool
}

// FloatingText — всплывающее число урона или лечения.
type FloatingText struct {
	Position types.Vec
	Amount   int
	Heal     bool
	Crit     bool
	Age      float64
}

// Rise — смещение вверх к текущему моменту.
func (f FloatingText) Rise() float64 {
	return floatTextRise * f.Age / floatTextTime
}

// AoeRing — расширяющееся кольцо способности по области.
type AoeRing struct {
	Center    types.Vec
	MaxRadius float64
	Timer     float64
}

// Radius — текущий радиус анимации.
func (r AoeRing) Radius() float64 {
	return r.MaxRadius * r.Timer / ringTime
}

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// всплывающие числа, кольца способностей. Только слушает события боя.
type VisualEffectSystem struct {
	registry *entity.Registry
	Flashes  map[types.EntityID]*DamageFlash
	Texts    []FloatingText
	Rings    []AoeRing
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(registry *entity.Registry, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{
		registry: registry,
		Flashes:  make(map[types.EntityID]*DamageFlash),
	}
	eventDispatcher.SubscribeAll(s, event.DamageDealt, event.Healed)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.DamageDealtData:
		s.Flashes[data.Target] = &DamageFlash{Timer: damageFlashTime, Crit: data.Crit}
		s.addText(data.Target, data.Amount, false, data.Crit)
	case event.HealedData:
		s.addText(data.Target, data.Amount, true, false)
	}
}

func (s *VisualEffectSystem) addText(id types.EntityID, amount int, heal, crit bool) {
	u, ok := s.registry.Get(id)
	if !ok {
		return
	}
	s.Texts = append(s.Texts, FloatingText{Position: u.Position, Amount: amount, Heal: heal, Crit: crit})
}

// AddRing запускает кольцо в точке применения способности.
func (s *VisualEffectSystem) AddRing(center types.Vec, radius float64) {
	if radius <= 0 {
		return
	}
	s.Rings = append(s.Rings, AoeRing{Center: center, MaxRadius: radius})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.Flashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.Flashes, id)
		}
	}

	texts := s.Texts[:0]
	for _, t := range s.Texts {
		t.Age += deltaTime
		if t.Age < floatTextTime {
			texts = append(texts, t)
		}
	}
	s.Texts = texts

	rings := s.Rings[:0]
	for _, r := range s.Rings {
		r.Timer += deltaTime
		if r.Timer < ringTime {
			rings = append(rings, r)
		}
	}
	s.Rings = rings
}
