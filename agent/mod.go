package agent

import (
	"checkers/game"
)

// Evaluator scores boards for the side to move. Every Evaluator assumes it is
// playing Black; callers invert the board to let it decide for Red.
type Evaluator interface {
	// Encode converts a board into the input vector expected by Evaluate
	Encode(b game.Board) []float64
	// Evaluate returns the fitness of an encoded board, higher is better
	Evaluate(input []float64) float64
	// Mutate perturbs the parameters in place; rate is in parts per thousand
	Mutate(rate int)
	// Clone returns an independent Evaluator with identical parameters
	Clone() Evaluator
}

// Inputs is the length of an encoded board: one value per playable cell.
const Inputs = game.Size * game.Size / 2

// Encode lists the playable cells column by column. Each value is the signed
// piece code: 0 for empty, ±10 for men and ±15 for kings.
func Encode(b game.Board) []float64 {
	input := make([]float64, 0, Inputs)
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			if game.IsDark(x, y) {
				input = append(input, float64(b[x][y]))
			}
		}
	}
	return input
}
