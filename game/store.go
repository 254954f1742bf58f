package game

import (
	"fmt"

	"war/utils"
)

// Store holds the fixed set of territories for a session. Records can only be read as copies;
// Attack is the single way to change them.
type Store struct {
	territories []Territory
	released    bool
}

// NewStore allocates a store for count territories.
func NewStore(count int) (*Store, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: cannot hold %d territories", ErrAllocation, count)
	}
	return &Store{
		territories: make([]Territory, count),
	}, nil
}

// Initialize fills the store with the reference map.
func (s *Store) Initialize() error {
	return s.Seed(DefaultTerritories())
}

// Seed overwrites every record with the given territories.
func (s *Store) Seed(territories []Territory) error {
	if s.released {
		return fmt.Errorf("%w: store was released before seeding", ErrAllocation)
	}
	if len(territories) != len(s.territories) {
		return fmt.Errorf("%w: store holds %d territories, got %d", ErrAllocation, len(s.territories), len(territories))
	}
	for i, t := range territories {
		if t.Troops < 1 {
			return fmt.Errorf("%w: %s must start with at least 1 troop", ErrAllocation, t.Name)
		}
		s.territories[i] = t
	}
	return nil
}

// Destroy releases the records. Calling it again is a no-op.
func (s *Store) Destroy() {
	if s.released {
		return
	}
	s.territories = nil
	s.released = true
}

func (s *Store) Released() bool {
	return s.released
}

func (s *Store) Len() int {
	return len(s.territories)
}

// Territory returns a copy of the record at the 0-based index i.
func (s *Store) Territory(i int) (Territory, error) {
	if i < 0 || i >= len(s.territories) {
		return Territory{}, fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, i+1, len(s.territories))
	}
	return s.territories[i], nil
}

// Territories returns a copy of all records in map order.
func (s *Store) Territories() []Territory {
	territories := make([]Territory, len(s.territories))
	copy(territories, s.territories)
	return territories
}

// Attack resolves one battle from the territory at index from against the one at index to.
func (s *Store) Attack(from, to int, dice Dice) (Outcome, error) {
	if _, err := s.Territory(from); err != nil {
		return Outcome{}, err
	}
	if _, err := s.Territory(to); err != nil {
		return Outcome{}, err
	}
	if from == to {
		return Outcome{}, ErrSelfAttack
	}
	return Resolve(&s.territories[from], &s.territories[to], dice)
}

func (s *Store) countFaction(faction string) int {
	return utils.CountFunc(s.territories, func(t Territory) bool {
		return t.Faction == faction
	})
}
