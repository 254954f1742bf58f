package game

import "fmt"

// Outcome describes a single resolved battle.
type Outcome struct {
	AttackerRoll      int
	DefenderRoll      int
	DefenderLost      bool // The defender lost a troop
	TerritoryCaptured bool // The defender changed hands
}

// Resolve rolls one die per side and applies the result to both territories.
// Ties go to the defender. An attacker without enough troops is left untouched.
func Resolve(attacker, defender *Territory, dice Dice) (Outcome, error) {
	if attacker == nil || defender == nil {
		panic("cannot resolve combat without both territories")
	}
	if attacker == defender {
		panic("cannot resolve combat of a territory against itself")
	}
	if !attacker.CanAttack() {
		return Outcome{}, fmt.Errorf("%w: %s has %d troops", ErrInsufficientTroops, attacker.Name, attacker.Troops)
	}

	outcome := Outcome{
		AttackerRoll: dice.Roll(),
		DefenderRoll: dice.Roll(),
	}

	attackerLosses, defenderLosses := determineLosses(outcome.AttackerRoll, outcome.DefenderRoll)
	attacker.Troops -= attackerLosses
	defender.Troops -= defenderLosses
	outcome.DefenderLost = defenderLosses > 0

	if outcome.DefenderLost && defender.Troops == 0 {
		// Capture the territory, one troop moves in
		defender.Faction = attacker.Faction
		defender.Troops = 1
		attacker.Troops--
		outcome.TerritoryCaptured = true
	}

	return outcome, nil
}

func determineLosses(attackerRoll, defenderRoll int) (attackerLosses, defenderLosses int) {
	if attackerRoll > defenderRoll {
		return 0, 1
	}
	return 1, 0
}
