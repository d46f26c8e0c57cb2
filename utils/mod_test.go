package utils

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "First match should be returned")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestContainsBoards(t *testing.T) {
	moves := game.LegalMoves(game.NewBoard())

	require.True(t, Contains(moves, moves[len(moves)-1]))
	require.False(t, Contains(moves, game.NewBoard()), "Start position is not its own successor")
}
