package game

import (
	"github.com/pkg/errors"
)

var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Diagonal directions in generation order: up/right, up/left, down/left, down/right.
var directions = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// LegalMoves returns every board Black can reach in one turn. Captures are
// mandatory: if any capture exists anywhere on the board, only capture results
// are returned.
func LegalMoves(b Board) []Board {
	var moves []Board
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y].IsBlack() {
				moves = append(moves, capturesFrom(b, x, y)...)
			}
		}
	}
	if len(moves) > 0 {
		return moves
	}

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y].IsBlack() {
				moves = append(moves, movesFrom(b, x, y)...)
			}
		}
	}
	return moves
}

// CapturesForPiece returns the boards resulting from every complete capture
// chain the piece at (x, y) can make.
func CapturesForPiece(b Board, x, y int) ([]Board, error) {
	if !InBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "captures for piece at (%d, %d)", x, y)
	}
	return capturesFrom(b, x, y), nil
}

// MovesForPiece returns the boards resulting from every quiet move of the
// piece at (x, y).
func MovesForPiece(b Board, x, y int) ([]Board, error) {
	if !InBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "moves for piece at (%d, %d)", x, y)
	}
	return movesFrom(b, x, y), nil
}

// CaptureIsPossible reports whether the piece at (xFrom, yFrom) can jump to
// (xTo, yTo). A landing square off the board is simply not a capture.
func CaptureIsPossible(b Board, xFrom, yFrom, xTo, yTo int) (bool, error) {
	if !InBounds(xFrom, yFrom) {
		return false, errors.Wrapf(ErrOutOfBounds, "capture from (%d, %d)", xFrom, yFrom)
	}
	return canCapture(b, xFrom, yFrom, xTo, yTo), nil
}

// MoveIsPossible reports whether the piece at (xFrom, yFrom) can step to (xTo, yTo).
func MoveIsPossible(b Board, xFrom, yFrom, xTo, yTo int) (bool, error) {
	if !InBounds(xFrom, yFrom) {
		return false, errors.Wrapf(ErrOutOfBounds, "move from (%d, %d)", xFrom, yFrom)
	}
	return canStep(b, xFrom, yFrom, xTo, yTo), nil
}

// ExecuteMove moves the piece at (xFrom, yFrom) to (xTo, yTo), removing the
// jumped piece when the move spans two rows. No promotion is applied.
func ExecuteMove(b Board, xFrom, yFrom, xTo, yTo int) (Board, error) {
	if !InBounds(xFrom, yFrom) || !InBounds(xTo, yTo) {
		return b, errors.Wrapf(ErrOutOfBounds, "execute move (%d, %d) -> (%d, %d)", xFrom, yFrom, xTo, yTo)
	}
	return execute(b, xFrom, yFrom, xTo, yTo), nil
}

func canCapture(b Board, xFrom, yFrom, xTo, yTo int) bool {
	if !InBounds(xTo, yTo) {
		return false
	}
	if b[xTo][yTo] != Empty {
		return false
	}
	// Men only jump forward
	if yTo < yFrom && b[xFrom][yFrom] != BlackKing {
		return false
	}
	return b[(xFrom+xTo)/2][(yFrom+yTo)/2].IsRed()
}

func canStep(b Board, xFrom, yFrom, xTo, yTo int) bool {
	if !InBounds(xTo, yTo) {
		return false
	}
	if b[xTo][yTo] != Empty {
		return false
	}
	return yTo > yFrom || b[xFrom][yFrom] == BlackKing
}

func execute(b Board, xFrom, yFrom, xTo, yTo int) Board {
	b[xTo][yTo] = b[xFrom][yFrom]
	b[xFrom][yFrom] = Empty
	if abs(xFrom-xTo) == 2 || abs(yFrom-yTo) == 2 {
		b[(xFrom+xTo)/2][(yFrom+yTo)/2] = Empty
	}
	return b
}

// capturesFrom is a depth-first search over jump chains. A jump that can be
// continued is never returned on its own, and a man is crowned only where the
// chain ends.
func capturesFrom(b Board, x, y int) []Board {
	var found []Board
	for _, d := range directions {
		xTo, yTo := x+2*d[0], y+2*d[1]
		if !canCapture(b, x, y, xTo, yTo) {
			continue
		}
		next := execute(b, x, y, xTo, yTo)
		continuations := capturesFrom(next, xTo, yTo)
		if len(continuations) > 0 {
			found = append(found, continuations...)
			continue
		}
		if yTo == PromotionRow && next[xTo][yTo] == Black {
			next[xTo][yTo] = BlackKing
		}
		found = append(found, next)
	}
	return found
}

func movesFrom(b Board, x, y int) []Board {
	var found []Board
	for _, d := range directions {
		xTo, yTo := x+d[0], y+d[1]
		if !canStep(b, x, y, xTo, yTo) {
			continue
		}
		next := execute(b, x, y, xTo, yTo)
		if yTo == PromotionRow {
			next[xTo][yTo] = BlackKing
		}
		found = append(found, next)
	}
	return found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
