package engine

import (
	"math"
	"time"

	"checkers/agent"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

// PlayGame runs a game from the starting layout until one side has no pieces
// left or meta.MAX_PLIES plies have been played. Black moves first.
func PlayGame(black, red agent.Evaluator) Result {
	start := time.Now()
	board := game.NewBoard()
	evaluators := [2]agent.Evaluator{black, red}

	side := game.BlackSide
	plies := 0
	winner := game.NoWinner
	for winner == game.NoWinner && plies < meta.MAX_PLIES {
		board = NextMove(board, evaluators[side], side)
		winner = board.Winner()
		side = 1 - side
		plies++
	}

	log.Debug().Msgf("game over after %d plies, winner: %s", plies, winner)

	return Result{
		Winner:   winner,
		Plies:    plies,
		Duration: time.Since(start),
	}
}

// NextMove returns the board after side has moved. Red decides on the inverted
// board, and the chosen board is inverted back. A side without legal moves
// leaves the board unchanged.
func NextMove(board game.Board, ev agent.Evaluator, side game.Side) game.Board {
	if side == game.RedSide {
		board = game.Invert(board)
	}

	moves := game.LegalMoves(board)
	if len(moves) > 0 {
		board = Decide(moves, ev)
	}

	if side == game.RedSide {
		board = game.Invert(board)
	}
	return board
}

// Decide returns the candidate with the strictly highest evaluation, so the
// first of several equally scored boards is chosen.
func Decide(moves []game.Board, ev agent.Evaluator) game.Board {
	if len(moves) == 1 {
		return moves[0]
	}

	best := moves[0]
	bestScore := math.Inf(-1)
	for _, m := range moves {
		score := ev.Evaluate(ev.Encode(m))
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}
