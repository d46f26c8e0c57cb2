package engine

import (
	"testing"

	"checkers/agent"
	"checkers/game"
	"checkers/meta"

	"github.com/stretchr/testify/require"
)

// stubEvaluator scores a board by the material balance of its encoding.
// With constant set, every board scores the same.
type stubEvaluator struct {
	constant bool
	calls    int
}

func (s *stubEvaluator) Encode(b game.Board) []float64 { return agent.Encode(b) }

func (s *stubEvaluator) Evaluate(input []float64) float64 {
	s.calls++
	if s.constant {
		return 0
	}
	sum := 0.0
	for _, v := range input {
		sum += v
	}
	return sum
}

func (s *stubEvaluator) Mutate(rate int) {}

func (s *stubEvaluator) Clone() agent.Evaluator { return &stubEvaluator{constant: s.constant} }

func TestDecide(t *testing.T) {
	weak := game.Board{}
	weak[0][0] = game.Black
	strong := game.Board{}
	strong[0][0] = game.BlackKing
	stronger := game.Board{}
	stronger[0][0] = game.BlackKing
	stronger[2][2] = game.Black

	t.Run("picks the highest score", func(t *testing.T) {
		ev := &stubEvaluator{}

		got := Decide([]game.Board{weak, stronger, strong}, ev)

		require.Equal(t, stronger, got)
		require.Equal(t, 3, ev.calls, "Every candidate should be scored")
	})

	t.Run("keeps the first of equal scores", func(t *testing.T) {
		ev := &stubEvaluator{constant: true}

		got := Decide([]game.Board{strong, weak, stronger}, ev)

		require.Equal(t, strong, got)
	})

	t.Run("single candidate is not scored", func(t *testing.T) {
		ev := &stubEvaluator{}

		got := Decide([]game.Board{weak}, ev)

		require.Equal(t, weak, got)
		require.Zero(t, ev.calls, "A forced move should not be evaluated")
	})
}

func TestDecideWithBrains(t *testing.T) {
	moves := game.LegalMoves(game.NewBoard())

	firstPicks := 0
	for i := 0; i < 50; i++ {
		if Decide(moves, agent.NewBrain()) == moves[0] {
			firstPicks++
		}
	}

	require.Less(t, firstPicks, 50, "Random brains should not all fall back to the first move")
}

func TestNextMove(t *testing.T) {
	t.Run("black moves on the board as is", func(t *testing.T) {
		next := NextMove(game.NewBoard(), &stubEvaluator{constant: true}, game.BlackSide)

		require.Equal(t, game.Empty, next[0][2])
		require.Equal(t, game.Black, next[1][3], "First generated move should be played")
	})

	t.Run("red decides on the inverted board", func(t *testing.T) {
		next := NextMove(game.NewBoard(), &stubEvaluator{constant: true}, game.RedSide)

		require.Equal(t, game.Empty, next[7][5], "Red should vacate its origin cell")
		require.Equal(t, game.Red, next[6][4], "Red should move towards decreasing y")
		black, red := next.Count()
		require.Equal(t, 12, black)
		require.Equal(t, 12, red)
	})

	t.Run("stuck side leaves the board unchanged", func(t *testing.T) {
		b := game.Board{}
		b[0][6] = game.Black
		b[1][7] = game.Red

		require.Equal(t, b, NextMove(b, &stubEvaluator{}, game.BlackSide))
	})
}

func TestPlayGame(t *testing.T) {
	t.Run("game ends within the ply cap", func(t *testing.T) {
		result := PlayGame(&stubEvaluator{constant: true}, &stubEvaluator{constant: true})

		require.Greater(t, result.Plies, 0)
		require.LessOrEqual(t, result.Plies, meta.MAX_PLIES, "Game should stop at the ply cap")
		if result.Draw() {
			require.Equal(t, meta.MAX_PLIES, result.Plies, "A draw should only happen at the cap")
		}
	})

	t.Run("same evaluators replay the same game", func(t *testing.T) {
		first := PlayGame(&stubEvaluator{}, &stubEvaluator{constant: true})
		second := PlayGame(&stubEvaluator{}, &stubEvaluator{constant: true})

		require.Equal(t, first.Winner, second.Winner)
		require.Equal(t, first.Plies, second.Plies)
	})

	t.Run("brains play a full game", func(t *testing.T) {
		result := PlayGame(agent.NewBrain(4), agent.NewBrain(4))

		require.LessOrEqual(t, result.Plies, meta.MAX_PLIES)
		require.True(t, result.Duration > 0, "Duration should be measured")
	})
}
