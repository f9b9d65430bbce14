package game

import "math/rand"

// Phase is the stage of a game. The late phase exposes more information
// about the remaining cards.
type Phase int

const (
	PhaseEarly Phase = iota
	PhaseLate
)

// State is one complete hypothetical game state, produced by the rules
// engine's world-completion routine. A sampled state is used for scoring a
// single trial and then discarded.
type State interface {
	TrumpSuit() Suit
	// OpponentHand returns the opponent's (hypothesized) hand.
	OpponentHand() []Card
}

// View is a player's partial knowledge of the full game state. All queries
// delegate to the rules engine; the bot never derives game rules itself.
type View interface {
	// ValidMoves enumerates the legal moves for the current turn.
	ValidMoves() []Move
	TrumpSuit() Suit
	Phase() Phase
	// OpponentWonCards returns the visible part of the opponent's won pile.
	OpponentWonCards() []Card
	// OpponentHandSize returns the opponent's hand size as known in the
	// late phase.
	OpponentHandSize() int
	// KnownOpponentCards returns the cards inferable in the opponent's hand.
	KnownOpponentCards() []Card
	// SeenCards returns every card this player has seen so far.
	SeenCards() []Card
	// InitialDeck returns the full deck enumeration the game started from.
	InitialDeck() []Card
	// CompleteState draws one full game state consistent with this view,
	// optionally fixing the opponent's committed leading move (nil when
	// leading). Each call is an independent draw from rng.
	CompleteState(leader Move, rng *rand.Rand) State
	// LatePhaseState returns a late-phase snapshot used for scoring
	// hypothetical marriages.
	LatePhaseState() State
}

// TrickScorer is the rules engine's scoring oracle.
type TrickScorer interface {
	// RankPoints returns the trick value of a rank.
	RankPoints(rank Rank) int
	// MarriagePoints returns the point value of a declared marriage in the
	// given state: 40 for the trump suit, 20 otherwise.
	MarriagePoints(m Marriage, s State) int
}

// Referee sequences a single game between two seats (0 and 1). It is
// implemented by the rules engine; the match harness only consumes it.
type Referee interface {
	// Next reports whose turn it is, the move already committed by the
	// trick's leader when seat is following (nil when seat leads), and
	// whether the game is over.
	Next() (seat int, leader Move, done bool)
	// ViewFor returns seat's current perspective.
	ViewFor(seat int) View
	// Play commits seat's move and resolves any completed trick.
	Play(seat int, move Move) error
	// Winner returns the winning seat once the game is over.
	Winner() int
}
