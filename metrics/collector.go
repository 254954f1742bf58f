package metrics

import (
	"sync/atomic"
	"time"

	"war/game"
)

type BattleRecord struct {
	Step            int
	Attacker        string
	AttackerFaction string
	Defender        string
	DefenderFaction string // Faction before the battle
	game.Outcome
}

type SessionMetric struct {
	MissionID     int
	Faction       string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Attacks       int
	AttackerWins  int
	DefenderWins  int
	Captures      int
	Rejected      int // Invalid selections reported to the player
	MissionChecks int
	Victory       bool
}

type Collector interface {
	Start(missionID int, faction string)
	AddBattle(attacker, defender game.Territory, outcome game.Outcome)
	AddRejected()
	AddMissionCheck()
	Battles() []BattleRecord
	Complete(victory bool) SessionMetric
}

type collector struct {
	missionID     int
	faction       string
	startTime     time.Time
	battles       []BattleRecord
	attackerWins  atomic.Int32
	captures      atomic.Int32
	rejected      atomic.Int32
	missionChecks atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(missionID int, faction string) {
	m.startTime = time.Now()
	m.missionID = missionID
	m.faction = faction
}

// AddBattle records a resolved battle; attacker and defender are the records before it.
func (m *collector) AddBattle(attacker, defender game.Territory, outcome game.Outcome) {
	m.battles = append(m.battles, BattleRecord{
		Step:            len(m.battles) + 1,
		Attacker:        attacker.Name,
		AttackerFaction: attacker.Faction,
		Defender:        defender.Name,
		DefenderFaction: defender.Faction,
		Outcome:         outcome,
	})
	if outcome.DefenderLost {
		m.attackerWins.Add(1)
	}
	if outcome.TerritoryCaptured {
		m.captures.Add(1)
	}
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) AddMissionCheck() {
	m.missionChecks.Add(1)
}

func (m *collector) Battles() []BattleRecord {
	battles := make([]BattleRecord, len(m.battles))
	copy(battles, m.battles)
	return battles
}

func (m *collector) Complete(victory bool) SessionMetric {
	end := time.Now()
	attackerWins := int(m.attackerWins.Load())
	return SessionMetric{
		MissionID:     m.missionID,
		Faction:       m.faction,
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		Attacks:       len(m.battles),
		AttackerWins:  attackerWins,
		DefenderWins:  len(m.battles) - attackerWins,
		Captures:      int(m.captures.Load()),
		Rejected:      int(m.rejected.Load()),
		MissionChecks: int(m.missionChecks.Load()),
		Victory:       victory,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(missionID int, faction string)                         {}
func (m *dummyCollector) AddBattle(attacker, defender game.Territory, o game.Outcome) {}
func (m *dummyCollector) AddRejected()                                                {}
func (m *dummyCollector) AddMissionCheck()                                            {}
func (m *dummyCollector) Battles() []BattleRecord                                     { return nil }
func (m *dummyCollector) Complete(victory bool) SessionMetric                         { return SessionMetric{} }
