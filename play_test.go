package main

import (
	"bytes"
	"strings"
	"testing"

	"checkers/agent"
	"checkers/game"
	"checkers/gamemaster"

	"github.com/stretchr/testify/require"
)

func TestDescribeMove(t *testing.T) {
	before := game.Board{}
	before[0][0] = game.Black
	before[1][1] = game.Red
	before[3][3] = game.Red
	after := game.Board{}
	after[4][4] = game.Black

	require.Equal(t, "(0,0) -> (4,4) capturing 2", describeMove(before, after))
}

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer

	renderBoard(&out, game.NewBoard())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, game.Size+1, "One line per row plus the column labels")
	require.True(t, strings.HasPrefix(lines[0], "7 "), "Row 7 should be on top")
	require.Contains(t, lines[0], "r")
	require.Contains(t, lines[7], "b")
}

func TestPlayHuman(t *testing.T) {
	t.Run("stops when input ends", func(t *testing.T) {
		s := gamemaster.NewHumanSession(agent.NewBrain(4))
		var out bytes.Buffer

		err := playHuman(s, strings.NewReader("9\n0\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "enter a number between 0 and 6")
		require.Equal(t, 2, s.Plies(), "Human and AI should each have played once")
	})

	t.Run("watching plays to the end", func(t *testing.T) {
		s := gamemaster.NewAISession(agent.NewBrain(4), agent.NewBrain(4))
		var out bytes.Buffer

		require.NoError(t, watchAI(s, &out))

		require.True(t, s.Over())
		require.Contains(t, out.String(), "game over after")
	})
}
