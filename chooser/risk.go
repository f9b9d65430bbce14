package chooser

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// RiskProfile is the agent's appetite for risk. Tolerance stays within
// [0, 1] after every adjustment regardless of adjustment history.
type RiskProfile struct {
	Tolerance float64
	// WinDelta is added to Tolerance after a won game, LossDelta is
	// subtracted after a lost one.
	WinDelta  float64
	LossDelta float64
}

func NewRiskProfile(tolerance, winDelta, lossDelta float64) *RiskProfile {
	return &RiskProfile{
		Tolerance: tolerance,
		WinDelta:  winDelta,
		LossDelta: lossDelta,
	}
}

// AdjustForOutcome nudges the tolerance after a game: up on a win so the
// next game is played with slightly more risk, down on a loss.
func (p *RiskProfile) AdjustForOutcome(won bool) {
	if won {
		p.Tolerance += p.WinDelta
	} else {
		p.Tolerance -= p.LossDelta
	}
	p.Tolerance = math.Max(0, math.Min(p.Tolerance, 1))
}

// estimateRisk scores the downside of a move as severity times probability
// of an adverse outcome, scaled by the current risk tolerance. The
// tolerance is read live from the profile at call time.
func (c *Chooser) estimateRisk(move game.Move, state game.State) float64 {
	probability := c.probabilityOfConsequence(move, state)
	severity := c.consequenceSeverity(move, state)
	return severity * probability * c.profile.Tolerance
}

// probabilityOfConsequence estimates how likely the move is to backfire,
// measured against the opponent's hand in the sampled state.
func (c *Chooser) probabilityOfConsequence(move game.Move, state game.State) float64 {
	hand := state.OpponentHand()

	switch m := move.(type) {
	case game.RegularPlay:
		if len(hand) == 0 {
			return 0
		}
		higher := 0
		for _, card := range hand {
			if card.Rank > m.Card.Rank {
				higher++
			}
		}
		return float64(higher) / float64(len(hand))

	case game.Marriage:
		if len(hand) == 0 {
			return 0
		}
		// Threats are cards of the married suit above Queen plus any trump
		// card. The two sets are not deduplicated: a trump King of the
		// married suit counts in both. That overlap is part of the tuned
		// heuristic.
		threats := 0
		for _, card := range hand {
			if card.Suit == m.Suit && card.Rank > game.Queen {
				threats++
			}
			if card.Suit == state.TrumpSuit() {
				threats++
			}
		}
		return float64(threats) / float64(len(hand))

	case game.TrumpExchange:
		return 0.3

	default:
		log.Warn().Msgf("unrecognized move kind %T given default consequence probability", move)
		return 0.5
	}
}

// consequenceSeverity estimates how much is lost if the adverse outcome
// occurs.
func (c *Chooser) consequenceSeverity(move game.Move, state game.State) float64 {
	switch m := move.(type) {
	case game.RegularPlay:
		return float64(c.scorer.RankPoints(m.Card.Rank))
	case game.Marriage:
		return float64(c.scorer.MarriagePoints(m, state))
	case game.TrumpExchange:
		return 1
	default:
		log.Warn().Msgf("unrecognized move kind %T given zero consequence severity", move)
		return 0
	}
}
