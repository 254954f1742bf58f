package gamemaster

import (
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
)

// Session holds everything the game loop needs for one game.
type Session struct {
	Store     *game.Store
	Faction   string // Faction controlled by the player
	MissionID int    // Secret mission assigned to the player
	Dice      game.Dice
}

// GameMaster sets up sessions from a single random source.
type GameMaster struct {
	source game.Source
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(source game.Source) *GameMaster {
	return &GameMaster{
		source: source,
	}
}

// InitializeGame allocates and seeds the map, then assigns the player faction and mission.
// A nil scenario starts the reference game with a randomly drawn mission.
func (gm *GameMaster) InitializeGame(scenario *Scenario) (*Session, error) {
	store, err := game.NewStore(meta.NUM_TERRITORIES)
	if err != nil {
		return nil, err
	}

	faction := meta.PLAYER_FACTION
	missionID := 0
	if scenario == nil {
		err = store.Initialize()
	} else {
		err = store.Seed(scenario.territories())
		if scenario.Faction != "" {
			faction = scenario.Faction
		}
		missionID = scenario.Mission
	}
	if err != nil {
		store.Destroy()
		return nil, err
	}

	if missionID == 0 {
		missionID = game.DrawMission(gm.source)
	}

	log.Info().Msgf("session ready: %d territories, player %s, mission %d", store.Len(), faction, missionID)

	return &Session{
		Store:     store,
		Faction:   faction,
		MissionID: missionID,
		Dice:      game.NewDice(gm.source),
	}, nil
}
