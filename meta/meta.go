// meta/meta.go
package meta

// NUM_TERRITORIES defines the fixed size of the map.
const NUM_TERRITORIES = 5

// DIE_FACES defines the number of faces on each combat die.
const DIE_FACES = 6

// PLAYER_FACTION defines the faction the player controls unless a scenario overrides it.
const PLAYER_FACTION = "Vermelho"

// RIVAL_FACTION defines the army the elimination mission targets.
const RIVAL_FACTION = "Vermelho"

// MIN_ATTACK_TROOPS defines how many troops a territory needs to launch an attack.
const MIN_ATTACK_TROOPS = 2
