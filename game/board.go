package game

import (
	"strings"
)

// Piece is the content of a single cell. The magnitude encodes the rank and the
// sign encodes ownership, so negating a piece swaps its colour.
type Piece int8

const (
	BlackKing Piece = 15
	Black     Piece = 10
	Empty     Piece = 0
	Red       Piece = -10
	RedKing   Piece = -15
)

const Size = 8

// PromotionRow is the row on which a Black man becomes a king.
const PromotionRow = Size - 1

// Board is an 8x8 grid indexed [x][y]. It is always expressed from the point of
// view of the side to move, which plays Black and moves towards increasing y.
// Boards are values: every move returns a new Board.
type Board [Size][Size]Piece

type Winner int

const (
	NoWinner Winner = iota
	BlackWins
	RedWins
)

func (w Winner) String() string {
	switch w {
	case BlackWins:
		return "black"
	case RedWins:
		return "red"
	default:
		return "none"
	}
}

// Side identifies which colour an agent is playing in a game.
type Side int

const (
	BlackSide Side = iota
	RedSide
)

func (s Side) String() string {
	if s == RedSide {
		return "red"
	}
	return "black"
}

func (p Piece) IsBlack() bool { return p == Black || p == BlackKing }

func (p Piece) IsRed() bool { return p == Red || p == RedKing }

func (p Piece) IsKing() bool { return p == BlackKing || p == RedKing }

// NewBoard returns the standard starting layout: Black on the dark cells of
// rows 0-2, Red on the dark cells of rows 5-7.
func NewBoard() Board {
	var b Board
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if !IsDark(x, y) {
				continue
			}
			switch {
			case y < 3:
				b[x][y] = Black
			case y > 4:
				b[x][y] = Red
			}
		}
	}
	return b
}

// IsDark reports whether (x, y) is a playable cell.
func IsDark(x, y int) bool {
	return (x+y)%2 == 0
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

func (b Board) At(x, y int) Piece {
	return b[x][y]
}

// Invert rotates the board by 180 degrees and swaps the colour of every piece.
// A single evaluator that always plays Black can decide for Red by inverting in,
// deciding, and inverting the chosen board back out.
func Invert(b Board) Board {
	var inverted Board
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			inverted[x][y] = -b[Size-1-x][Size-1-y]
		}
	}
	return inverted
}

// Winner scans the board. The side that is the only one left with pieces wins.
func (b Board) Winner() Winner {
	blackFound, redFound := false, false
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			switch {
			case b[x][y].IsBlack():
				blackFound = true
			case b[x][y].IsRed():
				redFound = true
			}
		}
	}

	if blackFound && !redFound {
		return BlackWins
	}
	if redFound && !blackFound {
		return RedWins
	}
	return NoWinner
}

// Count returns the number of Black and Red pieces on the board.
func (b Board) Count() (black, red int) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y].IsBlack() {
				black++
			} else if b[x][y].IsRed() {
				red++
			}
		}
	}
	return black, red
}

func (p Piece) Rune() rune {
	switch p {
	case Black:
		return 'b'
	case BlackKing:
		return 'B'
	case Red:
		return 'r'
	case RedKing:
		return 'R'
	default:
		return '.'
	}
}

// String renders the board with row 7 on top.
func (b Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			sb.WriteRune(b[x][y].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
