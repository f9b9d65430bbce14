package chooser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

func newTestChooser(tolerance float64, options ...Option) *Chooser {
	profile := NewRiskProfile(tolerance, 0.05, 0.05)
	return New(mockScorer{}, profile, rand.New(rand.NewSource(1)), options...)
}

func TestNew(t *testing.T) {
	t.Run("panics with less than one sample", func(t *testing.T) {
		require.Panics(t, func() {
			newTestChooser(0.5, WithSamples(0))
		}, "Should reject a sample count below 1")
	})

	t.Run("panics with a depth below one", func(t *testing.T) {
		require.Panics(t, func() {
			newTestChooser(0.5, WithDepth(0))
		}, "Should reject a depth below 1")
	})

	t.Run("panics without a scorer", func(t *testing.T) {
		require.Panics(t, func() {
			New(nil, NewRiskProfile(0.5, 0.05, 0.05), rand.New(rand.NewSource(1)))
		}, "Should reject a nil scorer")
	})

	t.Run("panics without a risk profile", func(t *testing.T) {
		require.Panics(t, func() {
			New(mockScorer{}, nil, rand.New(rand.NewSource(1)))
		}, "Should reject a nil profile")
	})

	t.Run("panics without a random source", func(t *testing.T) {
		require.Panics(t, func() {
			New(mockScorer{}, NewRiskProfile(0.5, 0.05, 0.05), nil)
		}, "Should reject a nil random source")
	})
}

func TestSelect(t *testing.T) {
	t.Run("panics with no candidates", func(t *testing.T) {
		c := newTestChooser(0.5)
		view := &mockView{state: mockState{}}

		require.Panics(t, func() {
			c.Select(nil, view, nil)
		}, "Should reject an empty candidate list")
	})

	t.Run("returns the only candidate", func(t *testing.T) {
		c := newTestChooser(0.5)
		view := &mockView{state: mockState{}}
		move := game.RegularPlay{Card: card(game.Jack, game.Clubs)}

		got := c.Select([]game.Move{move}, view, nil)

		require.Equal(t, move, got, "Should return the single legal move")
	})

	t.Run("selects the candidate with the highest net gain", func(t *testing.T) {
		// Opponent holds a Queen and a Jack: an Ace cannot be beaten
		// (probability 0, reward 11) while a Jack is beaten half the time
		// (reward 2, severity 2). With tolerance 0.8 the Ace must win.
		state := mockState{
			trump: game.Diamonds,
			hand:  []game.Card{card(game.Queen, game.Clubs), card(game.Jack, game.Clubs)},
		}
		view := &mockView{state: state}
		ace := game.RegularPlay{Card: card(game.Ace, game.Spades)}
		jack := game.RegularPlay{Card: card(game.Jack, game.Spades)}
		c := newTestChooser(0.8, WithSamples(5))

		got := c.Select([]game.Move{jack, ace}, view, nil)

		require.Equal(t, ace, got, "Should pick the move with the strictly higher aggregate net gain")
	})

	t.Run("breaks ties by seeded shuffle order", func(t *testing.T) {
		// Two aces score identically against an empty opponent hand. The
		// first one in the shuffled order must win; replay the shuffle with
		// the same seed to know which that is.
		candidates := []game.Move{
			game.RegularPlay{Card: card(game.Ace, game.Hearts)},
			game.RegularPlay{Card: card(game.Ace, game.Spades)},
		}
		shuffled := append([]game.Move(nil), candidates...)
		rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		expected := shuffled[0]

		view := &mockView{state: mockState{}}
		c := New(mockScorer{}, NewRiskProfile(0.5, 0.05, 0.05), rand.New(rand.NewSource(7)),
			WithSamples(3))

		got := c.Select(candidates, view, nil)

		require.Equal(t, expected, got, "Equal scores should resolve to the first candidate in shuffle order")
	})

	t.Run("samples each candidate the configured number of times", func(t *testing.T) {
		view := &mockView{state: mockState{}}
		candidates := []game.Move{
			game.RegularPlay{Card: card(game.Ace, game.Hearts)},
			game.RegularPlay{Card: card(game.Ten, game.Hearts)},
			game.RegularPlay{Card: card(game.King, game.Hearts)},
		}
		c := newTestChooser(0.5, WithSamples(4), WithMetrics())

		c.Select(candidates, view, nil)

		require.Equal(t, 12, view.completions, "Should draw samples times candidates states")
		require.Equal(t, 3, c.Metric().Candidates, "Metric should count candidates")
		require.Equal(t, 12, c.Metric().Samples, "Metric should count every sample")
	})

	t.Run("computes per-turn potential once", func(t *testing.T) {
		view := &mockView{state: mockState{}}
		candidates := []game.Move{
			game.RegularPlay{Card: card(game.Ace, game.Hearts)},
			game.RegularPlay{Card: card(game.Ten, game.Hearts)},
		}
		c := newTestChooser(0.5, WithSamples(4), WithPotential(PotentialPerTurn))

		c.Select(candidates, view, nil)

		// One estimate reads the won pile twice: banked points and the
		// marriage proxy.
		require.Equal(t, 2, view.wonPileCalls, "Per-turn potential should be estimated once")
	})

	t.Run("computes per-trial potential on every sample", func(t *testing.T) {
		view := &mockView{state: mockState{}}
		candidates := []game.Move{
			game.RegularPlay{Card: card(game.Ace, game.Hearts)},
			game.RegularPlay{Card: card(game.Ten, game.Hearts)},
		}
		c := newTestChooser(0.5, WithSamples(4), WithPotential(PotentialPerTrial))

		c.Select(candidates, view, nil)

		// 2 candidates x 4 samples, each estimate reading the pile twice.
		require.Equal(t, 16, view.wonPileCalls, "Per-trial potential should be estimated on every sample")
	})

	t.Run("passes the leader move through to sampling", func(t *testing.T) {
		// The chooser itself treats the leader move as opaque; it must not
		// alter scoring beyond what the sampled states encode.
		view := &mockView{state: mockState{}}
		leader := game.RegularPlay{Card: card(game.Ten, game.Clubs)}
		move := game.RegularPlay{Card: card(game.Ace, game.Clubs)}
		c := newTestChooser(0.5)

		got := c.Select([]game.Move{move}, view, leader)

		require.Equal(t, move, got, "Following should still return the best candidate")
		require.Equal(t, 1, view.completions, "Should sample through the view")
	})

	t.Run("total aggregation picks the same winner as mean", func(t *testing.T) {
		state := mockState{
			trump: game.Diamonds,
			hand:  []game.Card{card(game.Queen, game.Clubs), card(game.Jack, game.Clubs)},
		}
		view := &mockView{state: state}
		ace := game.RegularPlay{Card: card(game.Ace, game.Spades)}
		jack := game.RegularPlay{Card: card(game.Jack, game.Spades)}
		c := newTestChooser(0.8, WithSamples(5), WithAggregation(Total))

		got := c.Select([]game.Move{jack, ace}, view, nil)

		require.Equal(t, ace, got, "Summing instead of averaging should not change the ranking")
	})
}
