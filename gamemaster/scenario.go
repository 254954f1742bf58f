package gamemaster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"war/game"
	"war/meta"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario overrides the starting map. The map size is fixed, so it must list every territory.
type Scenario struct {
	Faction     string              `yaml:"faction"`
	Mission     int                 `yaml:"mission"` // 0 draws a random mission
	Territories []TerritoryScenario `yaml:"territories"`
}

type TerritoryScenario struct {
	Name    string `yaml:"name"`
	Faction string `yaml:"faction"`
	Troops  int    `yaml:"troops"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var scenario Scenario
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty scenario", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Territories) != meta.NUM_TERRITORIES {
		return fmt.Errorf("%w: need %d territories, got %d", ErrInvalidScenario, meta.NUM_TERRITORIES, len(s.Territories))
	}
	for i, t := range s.Territories {
		if t.Name == "" || t.Faction == "" {
			return fmt.Errorf("%w: territory %d needs a name and a faction", ErrInvalidScenario, i+1)
		}
		if t.Troops < 1 {
			return fmt.Errorf("%w: %s needs at least 1 troop", ErrInvalidScenario, t.Name)
		}
	}
	if s.Mission != 0 {
		if _, ok := game.LookupMission(s.Mission); !ok {
			return fmt.Errorf("%w: unknown mission %d", ErrInvalidScenario, s.Mission)
		}
	}
	return nil
}

func (s *Scenario) territories() []game.Territory {
	territories := make([]game.Territory, len(s.Territories))
	for i, t := range s.Territories {
		territories[i] = game.Territory{Name: t.Name, Faction: t.Faction, Troops: t.Troops}
	}
	return territories
}
