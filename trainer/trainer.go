package trainer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrAlreadyTrained = errors.New("trainer has already run")

type Option func(t *Trainer)

func WithConfig(cfg Config) Option {
	return func(t *Trainer) {
		t.cfg = cfg
	}
}

// WithObserver registers a function receiving every published snapshot. Calls
// never overlap: the reporting goroutine exits before the final snapshot is
// published, and no call follows the completion callback. It must not block.
func WithObserver(observer func(metrics.Stats)) Option {
	return func(t *Trainer) {
		if observer != nil {
			t.observer = observer
		}
	}
}

// WithOnFinished registers a function called once with the final statistics.
func WithOnFinished(onFinished func(metrics.Stats)) Option {
	return func(t *Trainer) {
		if onFinished != nil {
			t.onFinished = onFinished
		}
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(t *Trainer) {
		if recorder != nil {
			t.recorder = recorder
		}
	}
}

// Trainer evolves a champion evaluator over generations of parallel bracket
// tournaments. A Trainer runs once.
type Trainer struct {
	cfg        Config
	champion   *player.Player
	metrics    metrics.Collector
	stats      atomic.Pointer[metrics.Stats]
	observer   func(metrics.Stats)
	onFinished func(metrics.Stats)
	recorder   metrics.Recorder
	started    atomic.Bool
	done       chan struct{}
	finishOnce sync.Once
}

func NewTrainer(champion agent.Evaluator, options ...Option) (*Trainer, error) {
	if champion == nil {
		return nil, errors.New("champion evaluator is required")
	}
	t := &Trainer{ // Default values
		cfg:        DefaultConfig(),
		champion:   player.NewPlayer(champion),
		metrics:    metrics.NewCollector(),
		observer:   func(metrics.Stats) {},
		onFinished: func(metrics.Stats) {},
		done:       make(chan struct{}),
	}
	for _, option := range options {
		option(t)
	}
	if err := t.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid trainer config")
	}
	t.stats.Store(&metrics.Stats{})
	return t, nil
}

// Champion returns the current champion. It must not be used while Train runs.
func (t *Trainer) Champion() *player.Player {
	return t.champion
}

func (t *Trainer) Config() Config {
	return t.cfg
}

// Snapshot returns the latest published statistics.
func (t *Trainer) Snapshot() metrics.Stats {
	return *t.stats.Load()
}

// GamesPlayed is the live number of games completed across all tasks.
func (t *Trainer) GamesPlayed() int64 {
	return t.metrics.GamesPlayed()
}

// Done is closed when training has finished.
func (t *Trainer) Done() <-chan struct{} {
	return t.done
}

// Train runs generations until one of the contexts is cancelled and returns
// the final champion and statistics. Cancelling afterGeneration lets the
// running generation complete. Cancelling now also cuts short the evolution
// tasks of the running generation. Either way at least one generation runs.
func (t *Trainer) Train(now, afterGeneration context.Context) (*player.Player, metrics.Stats, error) {
	if !t.started.CompareAndSwap(false, true) {
		return t.champion, t.Snapshot(), ErrAlreadyTrained
	}

	t.metrics.Start()
	t.publish()
	stopping := func() { t.metrics.Transition(metrics.Training, metrics.Stopping) }
	stopNow := context.AfterFunc(now, stopping)
	stopAfter := context.AfterFunc(afterGeneration, stopping)
	defer stopNow()
	defer stopAfter()

	finished := make(chan struct{})
	reported := make(chan struct{})
	go t.report(finished, reported)

	log.Info().Msgf("starting training with %+v", t.cfg)
	for {
		t.generation(now)
		if now.Err() != nil || afterGeneration.Err() != nil {
			break
		}
	}

	t.metrics.SetStatus(metrics.Finished)
	close(finished)
	<-reported
	final := t.publish()
	log.Info().Msgf("training finished: %s", final)

	t.finishOnce.Do(func() {
		close(t.done)
		t.onFinished(final)
	})
	return t.champion, final, nil
}

// report publishes snapshots until training has finished, then closes
// reported.
func (t *Trainer) report(finished <-chan struct{}, reported chan<- struct{}) {
	defer close(reported)
	ticker := time.NewTicker(t.cfg.ReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-finished:
			return
		case <-ticker.C:
			t.publish()
		}
	}
}

func (t *Trainer) publish() metrics.Stats {
	stats := t.metrics.Snapshot()
	t.stats.Store(&stats)
	t.observer(stats)
	return stats
}

// generation evolves one population from the champion, then lets the best
// result challenge it.
func (t *Trainer) generation(ctx context.Context) {
	start := time.Now()
	seeds := t.seed()
	results := make([]*player.Player, len(seeds))

	task := make(chan int, len(seeds))
	for i := range seeds {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < t.cfg.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				results[i] = t.EvolveFromSeed(ctx, seeds[i])
				log.Debug().Msgf("task %d finished with %s", i, results[i])
			}
		}()
	}

	wg.Wait()

	challenger := t.tournament(results)
	champion := t.champion
	winner := t.GetWinnerOfGame(champion, challenger)
	retained := winner == champion
	if !retained {
		t.champion = challenger
	}
	t.metrics.CompleteGeneration(retained)

	stats := t.metrics.Snapshot()
	log.Info().Msgf("generation %d: champion %s, challenger %s, retained: %t, streak %d, record %d",
		stats.Generations, champion.ShortID(), challenger.ShortID(), retained, stats.Streak, stats.Record)

	if t.recorder == nil {
		return
	}
	err := t.recorder.Record(metrics.GenerationRecord{
		Generation:       stats.Generations,
		Champion:         champion.ID.String(),
		Challenger:       challenger.ID.String(),
		ChallengerWinPct: challenger.WinPercentage(),
		ChampionRetained: retained,
		Streak:           stats.Streak,
		GamesPlayed:      stats.GamesPlayed,
		Duration:         time.Since(start),
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to record generation")
	}
}

// seed creates every task's starting player before any task runs, so no task
// ever touches the champion.
func (t *Trainer) seed() []*player.Player {
	seeds := make([]*player.Player, t.cfg.Instances)
	seeds[0] = t.champion.Reproduce(0)
	seeds[0].ResetCounters()
	for i := 1; i < len(seeds); i++ {
		seeds[i] = t.champion.Reproduce(i + 1)
	}
	return seeds
}

// EvolveFromSeed runs the bracket rounds of a single task and returns the
// best player of the last completed round. Cancelling ctx stops before the
// next round.
func (t *Trainer) EvolveFromSeed(ctx context.Context, seed *player.Player) *player.Player {
	bracket := make([]*player.Player, 0, t.cfg.BracketSize)
	bracket = append(bracket, seed)
	for len(bracket) < t.cfg.BracketSize {
		bracket = append(bracket, seed.Reproduce(t.cfg.MutationRate))
	}

	first := seed
	for i := 0; i < t.cfg.Iterations; i++ {
		if ctx.Err() != nil {
			log.Debug().Msgf("evolution of %s stopped after %d iterations", seed.ShortID(), i)
			return first
		}

		t.RunBracket(bracket)
		var second, third *player.Player
		first, second, third = Top3(bracket)
		bracket = GenerateBracket(first, second, third, t.cfg.BracketSize, t.cfg.MutationRate)
	}
	return first
}

// tournament plays a round robin between the task results on a clean record
// and returns the highest win percentage, the first one on ties.
func (t *Trainer) tournament(results []*player.Player) *player.Player {
	for _, p := range results {
		p.ResetCounters()
	}
	t.RunBracket(results)

	best := results[0]
	for _, p := range results[1:] {
		if p.WinPercentage() > best.WinPercentage() {
			best = p
		}
	}
	return best
}
