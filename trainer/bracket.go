package trainer

import (
	"cmp"
	"slices"

	"checkers/engine"
	"checkers/game"
	"checkers/player"
)

// Quota splits n bracket slots 50/30/20 between the top three players. The
// truncation remainder goes to the first.
func Quota(n int) (first, second, third int) {
	second = n * 3 / 10
	third = n * 2 / 10
	first = n - second - third
	return first, second, third
}

// GenerateBracket builds the next bracket from the top three. Slot 0 is an
// exact copy of first and slot 1 an exact copy of second, the rest are mutated
// children filling each parent's quota.
func GenerateBracket(first, second, third *player.Player, size, rate int) []*player.Player {
	f, s, t := Quota(size)

	bracket := make([]*player.Player, 0, size)
	bracket = append(bracket, first.Reproduce(0), second.Reproduce(0))
	for i := 1; i < f; i++ {
		bracket = append(bracket, first.Reproduce(rate))
	}
	for i := 1; i < s; i++ {
		bracket = append(bracket, second.Reproduce(rate))
	}
	for i := 0; i < t; i++ {
		bracket = append(bracket, third.Reproduce(rate))
	}
	return bracket
}

// Top3 ranks players by win percentage. Equal percentages keep bracket order.
func Top3(bracket []*player.Player) (first, second, third *player.Player) {
	ranked := slices.Clone(bracket)
	slices.SortStableFunc(ranked, func(a, b *player.Player) int {
		return cmp.Compare(b.WinPercentage(), a.WinPercentage())
	})
	return ranked[0], ranked[1], ranked[2]
}

// RunBracket plays every pair once. The lower index plays Red.
func (t *Trainer) RunBracket(bracket []*player.Player) {
	for i := 0; i < len(bracket); i++ {
		for j := i + 1; j < len(bracket); j++ {
			t.GetWinnerOfGame(bracket[i], bracket[j])
		}
	}
}

// GetWinnerOfGame plays one game and updates both players' counters. A draw
// returns black without changing any win or loss counter.
func (t *Trainer) GetWinnerOfGame(red, black *player.Player) *player.Player {
	red.Side = game.RedSide
	black.Side = game.BlackSide

	result := engine.PlayGame(black.Evaluator, red.Evaluator)
	t.metrics.AddGame(result.Plies)
	red.IncrementGamesPlayed()
	black.IncrementGamesPlayed()

	switch result.Winner {
	case game.RedWins:
		red.IncrementWins()
		black.IncrementLosses()
		return red
	case game.BlackWins:
		black.IncrementWins()
		red.IncrementLosses()
		return black
	default:
		return black
	}
}
