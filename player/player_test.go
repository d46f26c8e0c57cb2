package player

import (
	"testing"

	"checkers/agent"
	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestReproduce(t *testing.T) {
	input := agent.Encode(game.NewBoard())

	t.Run("zero rate copies evaluator and record", func(t *testing.T) {
		parent := NewPlayer(agent.NewBrain(4))
		parent.Wins, parent.Losses, parent.GamesPlayed = 3, 1, 5

		child := parent.Reproduce(0)

		require.NotEqual(t, parent.ID, child.ID, "Every player should get its own identity")
		require.NotSame(t, parent.Evaluator, child.Evaluator, "Child should own a separate evaluator")
		require.Equal(t, parent.Evaluator.Evaluate(input), child.Evaluator.Evaluate(input))
		require.Equal(t, 3, child.Wins)
		require.Equal(t, 1, child.Losses)
		require.Equal(t, 5, child.GamesPlayed)
	})

	t.Run("positive rate mutates and resets the record", func(t *testing.T) {
		parent := NewPlayer(agent.NewBrain(4))
		parent.Wins, parent.Losses, parent.GamesPlayed = 3, 1, 5
		before := parent.Evaluator.(*agent.Brain).Weights()

		child := parent.Reproduce(1000)

		require.Zero(t, child.Wins)
		require.Zero(t, child.Losses)
		require.Zero(t, child.GamesPlayed)
		require.NotEqual(t, before, child.Evaluator.(*agent.Brain).Weights(), "Child should be mutated")
		require.Equal(t, before, parent.Evaluator.(*agent.Brain).Weights(), "Parent should not be mutated")
	})
}

func TestWinPercentage(t *testing.T) {
	p := NewPlayer(agent.NewBrain(4))
	require.Zero(t, p.WinPercentage(), "No games should mean zero percent")

	p.IncrementWins()
	p.IncrementGamesPlayed()
	p.IncrementLosses()
	p.IncrementGamesPlayed()
	p.IncrementGamesPlayed()

	require.InDelta(t, 100.0/3, p.WinPercentage(), 1e-9)

	p.ResetCounters()
	require.Zero(t, p.GamesPlayed)
	require.Zero(t, p.WinPercentage())
}
