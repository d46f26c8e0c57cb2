package experiments

import (
	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

const NumGames = 20 // Per match

// Contestant is a named evaluator taking part in a match.
type Contestant struct {
	Name      string
	Evaluator agent.Evaluator
}

// MatchResult counts outcomes from the point of view of the first contestant.
type MatchResult struct {
	Wins    int
	Losses  int
	Draws   int
	Records []metrics.GameRecord
}

func (r MatchResult) Games() int {
	return r.Wins + r.Losses + r.Draws
}

// RunMatch plays games between two contestants, alternating colours so that
// each plays Black in half of the games.
func RunMatch(first, second Contestant, games int) MatchResult {
	result := MatchResult{}

	log.Info().Msgf("starting match %s vs %s over %d games...", first.Name, second.Name, games)

	for i := 0; i < games; i++ {
		black, red := first, second
		firstSide := game.BlackSide
		if i%2 == 1 {
			black, red = second, first
			firstSide = game.RedSide
		}

		outcome := engine.PlayGame(black.Evaluator, red.Evaluator)
		winner := outcome.Winner.String()
		switch {
		case outcome.Draw():
			result.Draws++
		case (outcome.Winner == game.BlackWins) == (firstSide == game.BlackSide):
			result.Wins++
			winner = first.Name
		default:
			result.Losses++
			winner = second.Name
		}

		result.Records = append(result.Records, metrics.GameRecord{
			ID:       i + 1,
			Black:    black.Name,
			Red:      red.Name,
			Winner:   winner,
			Plies:    outcome.Plies,
			Duration: outcome.Duration,
		})

		log.Debug().Msgf("completed game %d of %d with winner: %s", i+1, games, winner)
	}

	log.Info().Msgf("completed match %s vs %s: %d wins, %d losses, %d draws",
		first.Name, second.Name, result.Wins, result.Losses, result.Draws)

	return result
}
