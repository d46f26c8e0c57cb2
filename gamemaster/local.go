package gamemaster

import (
	"checkers/engine"
	"checkers/game"
	"checkers/meta"
	"checkers/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// AIMove lets the evaluator of the side to move play one ply.
func (s *Session) AIMove() (game.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.over() {
		return s.board, ErrGameOver
	}
	ai := s.ai[s.turn]
	if ai == nil {
		return s.board, errors.Wrapf(ErrNotYourTurn, "%s is played by the human", s.turn)
	}

	s.advance(engine.NextMove(s.board, ai, s.turn))
	return s.board, nil
}

// HumanMove plays next for the human. next must be one of the boards legal
// from the current position. When no move is legal, the unchanged board
// passes the turn.
func (s *Session) HumanMove(next game.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.human {
		return ErrHumanInAIGame
	}
	if s.over() {
		return ErrGameOver
	}
	if s.turn != game.BlackSide {
		return errors.Wrap(ErrNotYourTurn, "waiting for the AI to move")
	}

	moves := game.LegalMoves(s.board)
	if len(moves) == 0 && next == s.board {
		s.advance(next)
		return nil
	}
	if !utils.Contains(moves, next) {
		return errors.Wrapf(ErrIllegalMove, "board is not one of %d legal moves", len(moves))
	}

	s.advance(next)
	return nil
}

// Options lists the boards the human may choose from.
func (s *Session) Options() ([]game.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.human {
		return nil, ErrHumanInAIGame
	}
	if s.turn != game.BlackSide {
		return nil, ErrNotYourTurn
	}
	return game.LegalMoves(s.board), nil
}

func (s *Session) advance(next game.Board) {
	s.board = next
	s.plies++
	log.Debug().Msgf("%s played ply %d", s.turn, s.plies)
	s.turn = 1 - s.turn
}

func (s *Session) over() bool {
	return s.board.Winner() != game.NoWinner || s.plies >= meta.MAX_PLIES
}
