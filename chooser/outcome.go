package chooser

import (
	"github.com/rs/zerolog/log"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// evaluateOutcome returns the immediate reward of committing move in the
// sampled state: the trick value of a played card, the marriage's point
// value, and nothing for a trump exchange (its value shows up through risk
// severity instead).
func (c *Chooser) evaluateOutcome(move game.Move, state game.State) float64 {
	switch m := move.(type) {
	case game.RegularPlay:
		return float64(c.scorer.RankPoints(m.Card.Rank))
	case game.Marriage:
		return float64(c.scorer.MarriagePoints(m, state))
	case game.TrumpExchange:
		return 0
	default:
		// Unreachable for moves produced by the rules engine; score
		// conservatively instead of failing the turn.
		log.Warn().Msgf("unrecognized move kind %T scored with zero reward", move)
		return 0
	}
}
