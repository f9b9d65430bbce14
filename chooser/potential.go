package chooser

import (
	"github.com/tbugraerdogan/schnapsen-bots/game"
	"github.com/tbugraerdogan/schnapsen-bots/utils"
)

// estimatePotential estimates the opponent's expected total future score
// from the visible partial state: points already banked in their won pile,
// an estimate for the unknown part of their hand, and a proxy for marriages
// they might still complete. The last two parts are gated to the late phase
// when the chooser is configured phase-gated.
func (c *Chooser) estimatePotential(view game.View) float64 {
	estimate := 0.0
	for _, card := range view.OpponentWonCards() {
		estimate += float64(c.scorer.RankPoints(card.Rank))
	}

	if c.phaseGated && view.Phase() != game.PhaseLate {
		return estimate
	}

	unknown := view.OpponentHandSize() - len(view.KnownOpponentCards())
	estimate += float64(unknown) * c.averageUnseenCardValue(view)

	estimate += c.estimateMarriagePotential(view)

	return estimate
}

// averageUnseenCardValue returns the mean trick value of the cards not yet
// seen, 0 when every card has been seen.
func (c *Chooser) averageUnseenCardValue(view game.View) float64 {
	unseen := utils.Difference(view.InitialDeck(), view.SeenCards())
	if len(unseen) == 0 {
		return 0
	}
	total := 0
	for _, card := range unseen {
		total += c.scorer.RankPoints(card.Rank)
	}
	return float64(total) / float64(len(unseen))
}

// estimateMarriagePotential adds half the marriage value for every suit
// where the opponent's won pile shows a King or Queen. Observing either
// rank of a pair marks the suit, so this is a one-sided proxy rather than a
// probability and can overcount across suits.
func (c *Chooser) estimateMarriagePotential(view game.View) float64 {
	possible := make(map[game.Suit]bool, len(game.Suits))
	for _, card := range view.OpponentWonCards() {
		if card.Rank == game.King || card.Rank == game.Queen {
			possible[card.Suit] = true
		}
	}
	if len(possible) == 0 {
		return 0
	}

	late := view.LatePhaseState()
	estimate := 0.0
	for _, suit := range game.Suits {
		if possible[suit] {
			estimate += 0.5 * float64(c.scorer.MarriagePoints(game.MarriageFor(suit), late))
		}
	}
	return estimate
}
