package game

import "war/meta"

type Territory struct {
	Name    string // Display name of the territory
	Faction string // Color of the army holding it
	Troops  int    // Troops stationed, never negative
}

// CanAttack reports whether the territory can launch an attack and still hold itself.
func (t Territory) CanAttack() bool {
	return t.Troops >= meta.MIN_ATTACK_TROOPS
}

// DefaultTerritories returns the reference map the game starts with.
func DefaultTerritories() []Territory {
	return []Territory{
		{Name: "Territorio A", Faction: "Vermelho", Troops: 10},
		{Name: "Territorio B", Faction: "Azul", Troops: 12},
		{Name: "Territorio C", Faction: "Verde", Troops: 8},
		{Name: "Territorio D", Faction: "Amarelo", Troops: 15},
		{Name: "Territorio E", Faction: "Preto", Troops: 7},
	}
}
