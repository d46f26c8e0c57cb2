package gamemaster

import (
	"sync"

	"checkers/agent"
	"checkers/game"

	"github.com/pkg/errors"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameOver      = errors.New("game is over")
	ErrIllegalMove   = errors.New("illegal move")
	ErrHumanInAIGame = errors.New("no human player in an AI game")
)

// Session is an interactive game, either between two evaluators or between a
// human playing Black and an evaluator playing Red. It is safe for concurrent
// use.
type Session struct {
	mu    sync.Mutex
	board game.Board
	turn  game.Side
	plies int
	human bool
	ai    [2]agent.Evaluator // Indexed by side, nil for the human
}

func NewAISession(black, red agent.Evaluator) *Session {
	return &Session{
		board: game.NewBoard(),
		ai:    [2]agent.Evaluator{black, red},
	}
}

// NewHumanSession starts a game in which the human plays Black and moves first.
func NewHumanSession(ai agent.Evaluator) *Session {
	return &Session{
		board: game.NewBoard(),
		human: true,
		ai:    [2]agent.Evaluator{nil, ai},
	}
}

func (s *Session) Board() game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

func (s *Session) Turn() game.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) Plies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plies
}

func (s *Session) Winner() game.Winner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Winner()
}

// Over reports whether a side has won or the ply cap has been reached.
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over()
}
