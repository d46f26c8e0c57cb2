package engine

import (
	"time"

	"checkers/game"
)

// Result is the outcome of a simulated game.
type Result struct {
	Winner   game.Winner
	Plies    int
	Duration time.Duration
}

// Draw reports whether the game reached the ply cap without a winner.
func (r Result) Draw() bool {
	return r.Winner == game.NoWinner
}
