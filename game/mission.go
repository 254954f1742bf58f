package game

import (
	"fmt"

	"war/meta"
	"war/utils"
)

// Mission is a secret win condition assigned to the player for the whole session.
type Mission struct {
	ID          int
	Description string
	achieved    func(s *Store, faction string) bool
}

var missions = []Mission{
	{
		ID:          1,
		Description: "Conquer 3 territories.",
		achieved:    conquer(3),
	},
	{
		ID:          2,
		Description: fmt.Sprintf("Destroy the %s army (occupy all of its territories).", meta.RIVAL_FACTION),
		achieved:    eliminate(meta.RIVAL_FACTION),
	},
	{
		ID:          3,
		Description: "Conquer 5 territories of any army.",
		achieved:    conquer(5),
	},
}

// conquer holds when the player's faction owns at least n territories.
func conquer(n int) func(*Store, string) bool {
	return func(s *Store, faction string) bool {
		return s.countFaction(faction) >= n
	}
}

// eliminate holds when target owns no territory, whoever the player is.
func eliminate(target string) func(*Store, string) bool {
	return func(s *Store, _ string) bool {
		return s.countFaction(target) == 0
	}
}

// Missions returns the mission catalog.
func Missions() []Mission {
	catalog := make([]Mission, len(missions))
	copy(catalog, missions)
	return catalog
}

func LookupMission(id int) (Mission, bool) {
	catalog := Missions()
	i := utils.FindIndex(missionIDs(catalog), id)
	if i < 0 {
		return Mission{}, false
	}
	return catalog[i], true
}

func missionIDs(catalog []Mission) []int {
	ids := make([]int, len(catalog))
	for i, m := range catalog {
		ids[i] = m.ID
	}
	return ids
}

// DrawMission picks a mission id uniformly at random.
func DrawMission(src Source) int {
	catalog := Missions()
	return catalog[src.Intn(len(catalog))].ID
}

// Evaluate reports whether the mission is accomplished for the player's faction.
// It never changes the store. Unknown missions are never accomplished.
func Evaluate(s *Store, missionID int, faction string) bool {
	mission, ok := LookupMission(missionID)
	if !ok || s == nil || s.Released() {
		return false
	}
	return mission.achieved(s, faction)
}
