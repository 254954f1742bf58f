package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"war/engine"
	"war/game"
	"war/gamemaster"
	"war/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	seed     uint64
	scenario string
	report   string
	logLevel string
	noPause  bool
}

func main() {
	var cfg config
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for dice and mission draws (0 uses the clock)")
	flag.StringVar(&cfg.scenario, "scenario", "", "YAML scenario overriding the starting map")
	flag.StringVar(&cfg.report, "report", "", "Directory to write a CSV battle report into")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.noPause, "no-pause", false, "Do not wait for ENTER between turns")
	flag.Parse()

	setupLogger(cfg.logLevel)
	os.Exit(run(cfg))
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// run plays one game and returns the process exit code
func run(cfg config) int {
	var scenario *gamemaster.Scenario
	if cfg.scenario != "" {
		s, err := gamemaster.LoadScenario(cfg.scenario)
		if err != nil {
			log.Error().Err(err).Msgf("failed to load scenario %s", cfg.scenario)
			return 1
		}
		scenario = s
	}

	gm := gamemaster.NewGameMaster(game.NewSource(cfg.seed))
	session, err := gm.InitializeGame(scenario)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate the map")
		fmt.Fprintln(os.Stderr, "Error allocating memory for the map")
		return 1
	}

	collector := metrics.NewDummyCollector()
	if cfg.report != "" {
		collector = metrics.NewCollector()
	}

	e := engine.LocalEngine(session, os.Stdin, os.Stdout,
		engine.WithPause(!cfg.noPause),
		engine.WithMetrics(collector),
	)
	victory := e.Run()

	if cfg.report != "" {
		writeReport(cfg.report, collector, victory)
	}
	return 0
}

// writeReport stores the session report. Failures are logged and do not change the exit code.
func writeReport(dir string, collector metrics.Collector, victory bool) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("failed to create report writer")
		return
	}

	err = writer.WriteBattleRecords(collector.Battles())
	if err != nil {
		log.Error().Err(err).Msg("failed to write battle records")
		return
	}

	err = writer.WriteSessionMetric(collector.Complete(victory))
	if err != nil {
		log.Error().Err(err).Msg("failed to write session summary")
		return
	}
	log.Info().Msgf("stored report in %s", writer.Dir())
}
