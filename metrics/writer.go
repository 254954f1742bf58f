package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a report folder named by the current timestamp under dir.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	header := []string{"step", "attacker", "attacker_faction", "defender", "defender_faction",
		"attacker_roll", "defender_roll", "defender_lost", "captured"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Step),
			record.Attacker,
			record.AttackerFaction,
			record.Defender,
			record.DefenderFaction,
			strconv.Itoa(record.AttackerRoll),
			strconv.Itoa(record.DefenderRoll),
			strconv.FormatBool(record.DefenderLost),
			strconv.FormatBool(record.TerritoryCaptured),
		})
	}
	return w.write("battles.csv", header, rows)
}

func (w *Writer) WriteSessionMetric(metric SessionMetric) error {
	header := []string{"mission", "faction", "start_time", "end_time", "duration", "attacks",
		"attacker_wins", "defender_wins", "captures", "rejected", "mission_checks", "victory"}
	row := []string{
		strconv.Itoa(metric.MissionID),
		metric.Faction,
		metric.StartTime.Format(time.RFC3339),
		metric.EndTime.Format(time.RFC3339),
		metric.Duration.String(),
		strconv.Itoa(metric.Attacks),
		strconv.Itoa(metric.AttackerWins),
		strconv.Itoa(metric.DefenderWins),
		strconv.Itoa(metric.Captures),
		strconv.Itoa(metric.Rejected),
		strconv.Itoa(metric.MissionChecks),
		strconv.FormatBool(metric.Victory),
	}
	return w.write("session.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
