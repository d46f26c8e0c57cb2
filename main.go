package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"checkers/agent"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/gamemaster"
	"checkers/trainer"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Trainer YAML config, defaults are used when empty")
	brainPath := flag.String("brain", "", "Brain to start from, a random brain is used when missing")
	outPath := flag.String("out", "champion.brain", "Where to save the champion after training")
	recordsDir := flag.String("records", "", "Directory for CSV generation records, disabled when empty")
	play := flag.Bool("play", false, "Play against the brain instead of training")
	watch := flag.Bool("watch", false, "Watch the brain play against itself instead of training")
	match := flag.Int("match", 0, "Play this many games against a random brain instead of training")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	brain := agent.LoadOrRandom(*brainPath)

	var err error
	switch {
	case *play:
		err = playHuman(gamemaster.NewHumanSession(brain), os.Stdin, os.Stdout)
	case *watch:
		err = watchAI(gamemaster.NewAISession(brain, brain.Clone()), os.Stdout)
	case *match > 0:
		err = runMatch(brain, *match, *recordsDir)
	default:
		err = train(brain, *configPath, *outPath, *recordsDir)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("checkers failed")
	}
}

func train(brain *agent.Brain, configPath, outPath, recordsDir string) error {
	cfg := trainer.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = trainer.LoadConfig(configPath)
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
	}

	options := []trainer.Option{
		trainer.WithConfig(cfg),
		trainer.WithObserver(func(stats metrics.Stats) {
			log.Debug().Msgf("%s", stats)
		}),
		trainer.WithOnFinished(func(stats metrics.Stats) {
			log.Info().Msgf("final report: %d generations, %d games, %d plies in %s, streak %d, record %d",
				stats.Generations, stats.GamesPlayed, stats.Plies, stats.Elapsed, stats.Streak, stats.Record)
		}),
	}
	if recordsDir != "" {
		writer, err := metrics.NewTimestampedWriter(recordsDir)
		if err != nil {
			return errors.Wrap(err, "failed to create generation records")
		}
		defer writer.Close()
		log.Info().Msgf("recording generations to %s", writer.Path())
		options = append(options, trainer.WithRecorder(writer))
	}

	t, err := trainer.NewTrainer(brain, options...)
	if err != nil {
		return errors.Wrap(err, "failed to create trainer")
	}

	now, cancelNow := context.WithCancel(context.Background())
	afterGeneration, cancelAfterGeneration := context.WithCancel(context.Background())
	defer cancelNow()
	defer cancelAfterGeneration()
	go stopOnInterrupt(cancelAfterGeneration, cancelNow)

	champion, _, err := t.Train(now, afterGeneration)
	if err != nil {
		return errors.Wrap(err, "training failed")
	}

	if err := agent.SaveFile(outPath, champion.Evaluator.(*agent.Brain)); err != nil {
		return errors.Wrap(err, "failed to save champion")
	}
	log.Info().Msgf("saved champion %s to %s", champion.ShortID(), outPath)
	return nil
}

// stopOnInterrupt stops after the current generation on the first interrupt
// and as soon as possible on the second.
func stopOnInterrupt(afterGeneration, now context.CancelFunc) {
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	<-signals
	log.Info().Msg("stopping after the current generation, interrupt again to stop now")
	afterGeneration()

	<-signals
	log.Info().Msg("stopping now")
	now()
}

func runMatch(brain *agent.Brain, games int, recordsDir string) error {
	result := experiments.RunMatch(
		experiments.Contestant{Name: "champion", Evaluator: brain},
		experiments.Contestant{Name: "random", Evaluator: agent.NewBrain()},
		games,
	)
	log.Info().Msgf("champion won %d of %d games (%d draws)", result.Wins, result.Games(), result.Draws)

	if recordsDir == "" {
		return nil
	}
	path := filepath.Join(recordsDir, "match.csv")
	if err := metrics.WriteGameRecords(path, result.Records); err != nil {
		return errors.Wrap(err, "failed to write match records")
	}
	log.Info().Msgf("stored game records in %s", path)
	return nil
}
