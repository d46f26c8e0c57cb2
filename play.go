package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"checkers/game"
	"checkers/gamemaster"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// renderBoard draws the board with row 7 on top, coloured when out is a
// terminal.
func renderBoard(out io.Writer, b game.Board) {
	output := termenv.NewOutput(out)
	dark := output.Color("236")
	light := output.Color("250")
	black := output.Color("15")
	red := output.Color("196")

	var sb strings.Builder
	for y := game.Size - 1; y >= 0; y-- {
		sb.WriteString(strconv.Itoa(y) + " ")
		for x := 0; x < game.Size; x++ {
			p := b[x][y]
			cell := output.String(" " + string(p.Rune()) + " ")
			if game.IsDark(x, y) {
				cell = cell.Background(dark)
			} else {
				cell = cell.Background(light)
			}
			switch {
			case p.IsBlack():
				cell = cell.Foreground(black)
			case p.IsRed():
				cell = cell.Foreground(red)
			}
			if p.IsKing() {
				cell = cell.Bold()
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for x := 0; x < game.Size; x++ {
		sb.WriteString("  " + strconv.Itoa(x))
	}
	sb.WriteByte('\n')
	fmt.Fprint(out, sb.String())
}

// describeMove names a move by the cells of the moving piece.
func describeMove(before, after game.Board) string {
	var from, to []string
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			if before[x][y].IsBlack() && after[x][y] == game.Empty {
				from = append(from, fmt.Sprintf("(%d,%d)", x, y))
			}
			if after[x][y].IsBlack() && before[x][y] == game.Empty {
				to = append(to, fmt.Sprintf("(%d,%d)", x, y))
			}
		}
	}
	_, redBefore := before.Count()
	_, redAfter := after.Count()
	move := strings.Join(from, ",") + " -> " + strings.Join(to, ",")
	if captured := redBefore - redAfter; captured > 0 {
		move += fmt.Sprintf(" capturing %d", captured)
	}
	return move
}

func playHuman(s *gamemaster.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for !s.Over() {
		board := s.Board()
		renderBoard(out, board)

		options, err := s.Options()
		if err != nil {
			return errors.Wrap(err, "failed to list moves")
		}
		next := board
		if len(options) == 0 {
			fmt.Fprintln(out, "no legal moves, passing")
		} else {
			for i, option := range options {
				fmt.Fprintf(out, "%d: %s\n", i, describeMove(board, option))
			}
			choice := readChoice(scanner, out, len(options))
			if choice < 0 {
				return scanner.Err()
			}
			next = options[choice]
		}

		if err := s.HumanMove(next); err != nil {
			log.Error().Err(err).Msg("move rejected")
			continue
		}
		if s.Over() {
			break
		}
		if _, err := s.AIMove(); err != nil {
			return errors.Wrap(err, "AI failed to move")
		}
	}

	renderBoard(out, s.Board())
	fmt.Fprintf(out, "game over after %d plies, winner: %s\n", s.Plies(), s.Winner())
	return nil
}

// readChoice returns the chosen option, or -1 when input ends.
func readChoice(scanner *bufio.Scanner, out io.Writer, n int) int {
	for {
		fmt.Fprint(out, "your move: ")
		if !scanner.Scan() {
			return -1
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && choice >= 0 && choice < n {
			return choice
		}
		fmt.Fprintf(out, "enter a number between 0 and %d\n", n-1)
	}
}

func watchAI(s *gamemaster.Session, out io.Writer) error {
	for !s.Over() {
		board, err := s.AIMove()
		if err != nil {
			return errors.Wrap(err, "AI failed to move")
		}
		fmt.Fprintf(out, "ply %d\n", s.Plies())
		renderBoard(out, board)
	}
	fmt.Fprintf(out, "game over after %d plies, winner: %s\n", s.Plies(), s.Winner())
	return nil
}
