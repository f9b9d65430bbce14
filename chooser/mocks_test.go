package chooser

import (
	"math/rand"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// mockScorer implements the standard Schnapsen scoring table.
type mockScorer struct{}

func (mockScorer) RankPoints(rank game.Rank) int {
	switch rank {
	case game.Ace:
		return 11
	case game.Ten:
		return 10
	case game.King:
		return 4
	case game.Queen:
		return 3
	case game.Jack:
		return 2
	default:
		return 0
	}
}

func (mockScorer) MarriagePoints(m game.Marriage, s game.State) int {
	if s != nil && m.Suit == s.TrumpSuit() {
		return 40
	}
	return 20
}

type mockState struct {
	trump game.Suit
	hand  []game.Card
}

func (s mockState) TrumpSuit() game.Suit      { return s.trump }
func (s mockState) OpponentHand() []game.Card { return s.hand }

type mockView struct {
	moves            []game.Move
	trump            game.Suit
	phase            game.Phase
	opponentWon      []game.Card
	opponentHandSize int
	knownOpponent    []game.Card
	seen             []game.Card
	deck             []game.Card
	state            game.State
	late             game.State

	completions  int
	wonPileCalls int
}

func (v *mockView) ValidMoves() []game.Move { return v.moves }
func (v *mockView) TrumpSuit() game.Suit    { return v.trump }
func (v *mockView) Phase() game.Phase       { return v.phase }

func (v *mockView) OpponentWonCards() []game.Card {
	v.wonPileCalls++
	return v.opponentWon
}

func (v *mockView) OpponentHandSize() int           { return v.opponentHandSize }
func (v *mockView) KnownOpponentCards() []game.Card { return v.knownOpponent }
func (v *mockView) SeenCards() []game.Card          { return v.seen }
func (v *mockView) InitialDeck() []game.Card        { return v.deck }

func (v *mockView) CompleteState(leader game.Move, rng *rand.Rand) game.State {
	v.completions++
	return v.state
}

func (v *mockView) LatePhaseState() game.State { return v.late }

func card(rank game.Rank, suit game.Suit) game.Card {
	return game.Card{Rank: rank, Suit: suit}
}
