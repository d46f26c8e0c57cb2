package player

import (
	"fmt"

	"checkers/agent"
	"checkers/game"

	"github.com/google/uuid"
)

// Player is a bracket participant. It exclusively owns its evaluator and is
// only ever touched by the task that owns its bracket.
type Player struct {
	ID          uuid.UUID
	Evaluator   agent.Evaluator
	Wins        int
	Losses      int
	GamesPlayed int
	Side        game.Side // Only valid during a game
}

// NewPlayer creates a new Player with fresh counters.
func NewPlayer(ev agent.Evaluator) *Player {
	return &Player{
		ID:        uuid.New(),
		Evaluator: ev,
	}
}

// Reproduce returns a child with a cloned evaluator. A positive rate mutates
// the clone and starts the child with zeroed counters. A zero rate yields an
// exact copy that keeps the parent's record.
func (p *Player) Reproduce(rate int) *Player {
	child := NewPlayer(p.Evaluator.Clone())
	if rate > 0 {
		child.Evaluator.Mutate(rate)
		return child
	}
	child.Wins = p.Wins
	child.Losses = p.Losses
	child.GamesPlayed = p.GamesPlayed
	return child
}

// WinPercentage is 100 * wins / games played, or 0 before the first game.
func (p *Player) WinPercentage() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return 100 * float64(p.Wins) / float64(p.GamesPlayed)
}

func (p *Player) IncrementWins() {
	p.Wins++
}

func (p *Player) IncrementLosses() {
	p.Losses++
}

func (p *Player) IncrementGamesPlayed() {
	p.GamesPlayed++
}

// ResetCounters zeroes the record, keeping the evaluator and identity.
func (p *Player) ResetCounters() {
	p.Wins, p.Losses, p.GamesPlayed = 0, 0, 0
}

// ShortID is the first block of the uuid, used in logs.
func (p *Player) ShortID() string {
	return p.ID.String()[:8]
}

func (p *Player) String() string {
	return fmt.Sprintf("player %s (%d/%d/%d, %.1f%%)", p.ShortID(), p.Wins, p.Losses, p.GamesPlayed, p.WinPercentage())
}
