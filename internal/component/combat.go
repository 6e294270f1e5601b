package component

// Stats — боевые характеристики юнита, копируются из шаблона при создании.
type Stats struct {
	Armor          int
	Damage         int
	Range          float64 // Дальность атаки (пиксели)
	AttackSpeed    float64 // Атак в секунду
	CritChance     float64
	CritMultiplier float64
	Mass           float64
	MoveSpeed      float64 // Пикселей в секунду
	Lifesteal      float64 // Доля нанесённого урона, возвращаемая здоровьем
}

// DamageLink связывает союзников, делящих входящий урон.
type DamageLink struct {
	Group    string
	Fraction float64 // Доля урона, перенаправляемая союзникам группы
}
