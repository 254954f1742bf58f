package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, factions ...string) *Store {
	t.Helper()
	s, err := NewStore(len(factions))
	require.NoError(t, err)
	territories := make([]Territory, len(factions))
	for i, faction := range factions {
		territories[i] = Territory{Name: string(rune('A' + i)), Faction: faction, Troops: 3}
	}
	require.NoError(t, s.Seed(territories))
	return s
}

func TestEvaluateConquerThree(t *testing.T) {
	t.Run("fewer than three territories", func(t *testing.T) {
		s := seededStore(t, "Vermelho", "Vermelho", "Verde", "Amarelo", "Preto")

		require.False(t, Evaluate(s, 1, "Vermelho"), "Two territories should not be enough")
	})

	t.Run("exactly three territories", func(t *testing.T) {
		s := seededStore(t, "Vermelho", "Vermelho", "Vermelho", "Amarelo", "Preto")

		require.True(t, Evaluate(s, 1, "Vermelho"), "Three territories should be enough")
	})

	t.Run("reference map", func(t *testing.T) {
		s := newReferenceStore(t)

		require.False(t, Evaluate(s, 1, "Vermelho"), "Vermelho starts with a single territory")
	})
}

func TestEvaluateEliminate(t *testing.T) {
	t.Run("rival still on the map", func(t *testing.T) {
		s := newReferenceStore(t)

		require.False(t, Evaluate(s, 2, "Vermelho"), "Vermelho still holds a territory")
		require.False(t, Evaluate(s, 2, "Azul"), "Result should not depend on the player faction")
	})

	t.Run("rival gone", func(t *testing.T) {
		s := seededStore(t, "Azul", "Azul", "Verde", "Amarelo", "Preto")

		require.True(t, Evaluate(s, 2, "Vermelho"), "No Vermelho territory should fulfil the mission")
		require.True(t, Evaluate(s, 2, "Azul"), "Result should not depend on the player faction")
	})
}

func TestEvaluateConquerFive(t *testing.T) {
	s := seededStore(t, "Vermelho", "Vermelho", "Vermelho", "Vermelho", "Preto")
	require.False(t, Evaluate(s, 3, "Vermelho"), "Four territories should not be enough")

	s = seededStore(t, "Vermelho", "Vermelho", "Vermelho", "Vermelho", "Vermelho")
	require.True(t, Evaluate(s, 3, "Vermelho"), "Five territories should be enough")
}

func TestEvaluate(t *testing.T) {
	t.Run("unknown mission", func(t *testing.T) {
		s := seededStore(t, "Vermelho", "Vermelho", "Vermelho", "Vermelho", "Vermelho")

		require.False(t, Evaluate(s, 0, "Vermelho"), "Unknown mission should never be accomplished")
		require.False(t, Evaluate(s, 4, "Vermelho"), "Unknown mission should never be accomplished")
	})

	t.Run("released store", func(t *testing.T) {
		s := seededStore(t, "Azul", "Azul", "Azul", "Azul", "Azul")
		s.Destroy()

		require.False(t, Evaluate(s, 2, "Azul"), "Released store should accomplish nothing")
		require.False(t, Evaluate(nil, 1, "Azul"), "Missing store should accomplish nothing")
	})

	t.Run("repeated evaluation", func(t *testing.T) {
		s := seededStore(t, "Vermelho", "Vermelho", "Vermelho", "Amarelo", "Preto")
		before := s.Territories()

		for _, m := range Missions() {
			first := Evaluate(s, m.ID, "Vermelho")
			second := Evaluate(s, m.ID, "Vermelho")
			require.Equal(t, first, second, "Evaluation should be idempotent")
		}
		require.Equal(t, before, s.Territories(), "Evaluation should not change the store")
	})
}

func TestMissionCatalog(t *testing.T) {
	t.Run("looking up missions", func(t *testing.T) {
		for _, id := range []int{1, 2, 3} {
			m, ok := LookupMission(id)
			require.True(t, ok, "Mission %d should exist", id)
			require.Equal(t, id, m.ID)
			require.NotEmpty(t, m.Description, "Mission %d should be described", id)
		}

		_, ok := LookupMission(9)
		require.False(t, ok, "Mission 9 should not exist")
	})

	t.Run("catalog copies are independent", func(t *testing.T) {
		catalog := Missions()
		require.Len(t, catalog, 3)
		catalog[0].Description = "changed"
		catalog[0].ID = 42

		m, ok := LookupMission(1)
		require.True(t, ok, "Lookup should not see changes to a returned catalog")
		require.Equal(t, "Conquer 3 territories.", m.Description)
		_, ok = LookupMission(42)
		require.False(t, ok)
	})

	t.Run("drawing missions", func(t *testing.T) {
		src := &scriptedSource{values: []int{0, 1, 2, 3}}

		require.Equal(t, 1, DrawMission(src))
		require.Equal(t, 2, DrawMission(src))
		require.Equal(t, 3, DrawMission(src))
		require.Equal(t, 1, DrawMission(src), "Draws should wrap within the catalog")
	})

	t.Run("drawing from a random source", func(t *testing.T) {
		src := NewSource(99)
		for i := 0; i < 100; i++ {
			_, ok := LookupMission(DrawMission(src))
			require.True(t, ok, "Drawn mission should be in the catalog")
		}
	})
}
