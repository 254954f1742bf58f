package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"war/game"
)

var (
	cell   = lipgloss.NewStyle().Padding(0, 1)
	header = cell.Bold(true)
	border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderMap(w io.Writer, territories []game.Territory) {
	rows := make([][]string, 0, len(territories))
	for i, t := range territories {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Name, t.Faction, strconv.Itoa(t.Troops)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers("#", "Territory", "Faction", "Troops").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	fmt.Fprintf(w, "\n--- Territory Map ---\n%s\n", t.Render())
}

func renderMission(w io.Writer, missionID int) {
	fmt.Fprintln(w, "\n--- Your Mission ---")
	mission, ok := game.LookupMission(missionID)
	if !ok {
		fmt.Fprintf(w, "Unknown mission (ID: %d).\n", missionID)
		return
	}
	fmt.Fprintf(w, "Mission %d: %s\n", mission.ID, mission.Description)
}

func renderMenu(w io.Writer) {
	fmt.Fprintln(w, "\n--- Main Menu ---")
	fmt.Fprintf(w, "%d. Attack\n", AttackOption)
	fmt.Fprintf(w, "%d. Check Mission\n", MissionOption)
	fmt.Fprintf(w, "%d. Exit Game\n", ExitOption)
	fmt.Fprint(w, "Choose an option: ")
}

func renderInsufficientTroops(w io.Writer, attacker game.Territory) {
	fmt.Fprintf(w, "\n%s does not have enough troops to attack (minimum 2 troops).\n", attacker.Name)
}

// renderBattle narrates a battle from the records before and after it.
func renderBattle(w io.Writer, attacker, defender game.Territory, outcome game.Outcome, attackerAfter, defenderAfter game.Territory) {
	fmt.Fprintln(w, "\n--- Attack Simulation ---")
	fmt.Fprintf(w, "%s (%s, %d troops) attacks %s (%s, %d troops).\n",
		attacker.Name, attacker.Faction, attacker.Troops,
		defender.Name, defender.Faction, defender.Troops)
	fmt.Fprintf(w, "Attacker die: %d\n", outcome.AttackerRoll)
	fmt.Fprintf(w, "Defender die: %d\n", outcome.DefenderRoll)

	if outcome.DefenderLost {
		fmt.Fprintln(w, "The attacker won the battle!")
		if outcome.TerritoryCaptured {
			fmt.Fprintf(w, "%s was conquered by %s!\n", defender.Name, attacker.Faction)
		}
	} else {
		fmt.Fprintln(w, "The defender won the battle!")
	}

	fmt.Fprintf(w, "Troops remaining in %s: %d\n", attackerAfter.Name, attackerAfter.Troops)
	fmt.Fprintf(w, "Troops remaining in %s: %d\n", defenderAfter.Name, defenderAfter.Troops)
}
