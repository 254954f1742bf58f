package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"war/game"
	"war/gamemaster"
	"war/metrics"

	"github.com/rs/zerolog/log"
)

type Phase int

const (
	Running Phase = iota
	AwaitingInput
	Exiting
)

// Menu options
const (
	ExitOption    = 0
	AttackOption  = 1
	MissionOption = 2
)

type Option func(e *Engine)

// WithPause waits for ENTER after every turn that does not end the game.
func WithPause(pause bool) Option {
	return func(e *Engine) {
		e.pause = pause
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

type Engine struct {
	Store     *game.Store
	Faction   string
	MissionID int
	Phase     Phase
	dice      game.Dice
	console   *console
	pause     bool
	metrics   metrics.Collector
	victory   bool
}

func LocalEngine(session *gamemaster.Session, in io.Reader, out io.Writer, options ...Option) *Engine {
	if session == nil || session.Store == nil {
		panic("cannot run a game without a session")
	}
	e := &Engine{
		Store:     session.Store,
		Faction:   session.Faction,
		MissionID: session.MissionID,
		Phase:     Running,
		dice:      session.Dice,
		console:   newConsole(in, out),
		pause:     true,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the player quits or accomplishes the mission.
// It releases the store on the way out and reports whether the player won.
func (e *Engine) Run() bool {
	e.metrics.Start(e.MissionID, e.Faction)
	log.Debug().Msgf("player %s starting with mission %d", e.Faction, e.MissionID)

	for e.Phase != Exiting {
		e.Phase = Running
		out := e.console.out
		renderMap(out, e.Store.Territories())
		renderMission(out, e.MissionID)
		renderMenu(out)

		e.Phase = AwaitingInput
		e.step()

		if e.Phase != Exiting && e.pause {
			e.console.pause()
		}
	}

	e.Store.Destroy()
	log.Debug().Msgf("game over, victory: %t", e.victory)
	return e.victory
}

func (e *Engine) step() {
	option, err := e.console.readInt()
	if inputClosed(err) {
		e.quit()
		return
	}
	if err != nil {
		e.reject(game.ErrUnknownOption)
		return
	}

	switch option {
	case AttackOption:
		e.attackPhase()
	case MissionOption:
		e.checkMission()
	case ExitOption:
		e.quit()
	default:
		e.reject(game.ErrUnknownOption)
	}
}

// inputClosed reports whether the console can no longer be read. Only a line that is not a
// number counts as a bad answer; EOF and scanner failures end the game.
func inputClosed(err error) bool {
	if err == nil || errors.As(err, new(*strconv.NumError)) {
		return false
	}
	if !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("cannot read player input")
	}
	return true
}

func (e *Engine) attackPhase() {
	out := e.console.out
	n := e.Store.Len()
	fmt.Fprintln(out, "\n--- Attack Phase ---")

	from, err := e.console.promptInt(fmt.Sprintf("Choose the ORIGIN territory (1 to %d): ", n))
	if inputClosed(err) {
		e.quit()
		return
	}
	to, err2 := e.console.promptInt(fmt.Sprintf("Choose the DESTINATION territory (1 to %d): ", n))
	if inputClosed(err2) {
		e.quit()
		return
	}
	if err != nil || err2 != nil {
		e.reject(game.ErrOutOfRange)
		return
	}

	// Indices are 1-based on screen
	if err := e.attack(from-1, to-1); err != nil {
		e.reject(err)
		return
	}
	e.Phase = Running
}

func (e *Engine) attack(from, to int) error {
	attacker, err := e.Store.Territory(from)
	if err != nil {
		return err
	}
	defender, err := e.Store.Territory(to)
	if err != nil {
		return err
	}
	if attacker.Faction == defender.Faction {
		return fmt.Errorf("%w: %s and %s both belong to %s", game.ErrSameFaction, attacker.Name, defender.Name, attacker.Faction)
	}

	outcome, err := e.Store.Attack(from, to, e.dice)
	if errors.Is(err, game.ErrInsufficientTroops) {
		renderInsufficientTroops(e.console.out, attacker)
		e.metrics.AddRejected()
		e.Phase = Running
		return nil
	}
	if err != nil {
		return err
	}

	e.metrics.AddBattle(attacker, defender, outcome)
	attackerAfter, _ := e.Store.Territory(from)
	defenderAfter, _ := e.Store.Territory(to)
	renderBattle(e.console.out, attacker, defender, outcome, attackerAfter, defenderAfter)

	log.Debug().Msgf("%s attacked %s: rolls %d vs %d, captured %t",
		attacker.Name, defender.Name, outcome.AttackerRoll, outcome.DefenderRoll, outcome.TerritoryCaptured)
	return nil
}

func (e *Engine) checkMission() {
	e.metrics.AddMissionCheck()
	if game.Evaluate(e.Store, e.MissionID, e.Faction) {
		fmt.Fprintln(e.console.out, "\nCONGRATULATIONS! You accomplished your mission and won the game!")
		log.Info().Msgf("mission %d accomplished by %s", e.MissionID, e.Faction)
		e.victory = true
		e.Phase = Exiting
		return
	}
	fmt.Fprintln(e.console.out, "\nYour mission is not accomplished yet. Keep fighting!")
	e.Phase = Running
}

func (e *Engine) quit() {
	fmt.Fprintln(e.console.out, "\nExiting the game. See you next time!")
	e.Phase = Exiting
}

// reject reports an invalid selection and hands control back to the loop.
func (e *Engine) reject(err error) {
	e.metrics.AddRejected()
	log.Debug().Err(err).Msg("selection rejected")

	out := e.console.out
	switch {
	case errors.Is(err, game.ErrSameFaction):
		fmt.Fprintln(out, "You cannot attack your own territory.")
	case errors.Is(err, game.ErrOutOfRange), errors.Is(err, game.ErrSelfAttack):
		fmt.Fprintln(out, "Invalid territory selection.")
	default:
		fmt.Fprintln(out, "\nInvalid option. Try again.")
	}
	e.Phase = Running
}
