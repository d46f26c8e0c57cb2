package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

type Status int32

const (
	Idle Status = iota
	Training
	Stopping // Finishing the current generation before stopping
	Finished
)

func (s Status) String() string {
	switch s {
	case Training:
		return "training"
	case Stopping:
		return "stopping"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Stats is an immutable snapshot of training progress.
type Stats struct {
	Generations int
	GamesPlayed int64
	Plies       int64
	Streak      int // Generations the current champion has been retained
	Record      int // Longest streak observed
	Status      Status
	Elapsed     time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: generation %d, %d games, streak %d, record %d",
		s.Status, s.Generations, s.GamesPlayed, s.Streak, s.Record)
}

// Collector accumulates training counters. Game counters are incremented by
// concurrent tasks, generation counters by the training loop only, and
// Snapshot may be called from any goroutine.
type Collector interface {
	Start()
	AddGame(plies int)
	CompleteGeneration(championRetained bool)
	SetStatus(status Status)
	Transition(from, to Status) bool
	Status() Status
	GamesPlayed() int64
	Snapshot() Stats
}

type collector struct {
	startTime   atomic.Int64 // Unix nanoseconds
	gamesPlayed atomic.Int64
	plies       atomic.Int64
	generations atomic.Int32
	streak      atomic.Int32
	record      atomic.Int32
	status      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime.Store(time.Now().UnixNano())
	m.status.Store(int32(Training))
}

func (m *collector) AddGame(plies int) {
	m.gamesPlayed.Add(1)
	m.plies.Add(int64(plies))
}

// CompleteGeneration advances the generation count and updates the streak:
// incremented when the champion is retained, reset otherwise.
func (m *collector) CompleteGeneration(championRetained bool) {
	m.generations.Add(1)
	if !championRetained {
		m.streak.Store(0)
		return
	}
	streak := m.streak.Add(1)
	if streak > m.record.Load() {
		m.record.Store(streak)
	}
}

func (m *collector) SetStatus(status Status) {
	m.status.Store(int32(status))
}

// Transition sets the status to `to` only if it is currently `from`.
func (m *collector) Transition(from, to Status) bool {
	return m.status.CompareAndSwap(int32(from), int32(to))
}

func (m *collector) Status() Status {
	return Status(m.status.Load())
}

func (m *collector) GamesPlayed() int64 {
	return m.gamesPlayed.Load()
}

func (m *collector) Snapshot() Stats {
	var elapsed time.Duration
	if start := m.startTime.Load(); start != 0 {
		elapsed = time.Since(time.Unix(0, start))
	}
	return Stats{
		Generations: int(m.generations.Load()),
		GamesPlayed: m.gamesPlayed.Load(),
		Plies:       m.plies.Load(),
		Streak:      int(m.streak.Load()),
		Record:      int(m.record.Load()),
		Status:      m.Status(),
		Elapsed:     elapsed,
	}
}
