package chooser

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// Aggregation folds a candidate's per-sample net gains into one score.
type Aggregation int

const (
	// Mean averages net gain over the samples.
	Mean Aggregation = iota
	// Total sums net gain over the samples without dividing.
	Total
)

// PotentialMode controls when the opponent-potential estimate is charged
// against a candidate's net gain.
type PotentialMode int

const (
	// PotentialOff skips the estimate entirely.
	PotentialOff PotentialMode = iota
	// PotentialPerTurn computes the estimate once per turn and reuses it
	// for every candidate and sample.
	PotentialPerTurn
	// PotentialPerTrial recomputes the estimate on every sample.
	PotentialPerTrial
)

type Option func(c *Chooser)

// Chooser picks one legal move by sampling complete game states consistent
// with the current view and scoring each candidate's reward net of risk and
// opponent potential.
type Chooser struct {
	rng         *rand.Rand
	scorer      game.TrickScorer
	profile     *RiskProfile
	samples     int
	depth       int // Validated but not consumed by scoring (reserved rollout depth)
	aggregation Aggregation
	potential   PotentialMode
	phaseGated  bool
	metrics     Collector
}

func WithSamples(samples int) Option {
	return func(c *Chooser) {
		c.samples = samples
	}
}

func WithDepth(depth int) Option {
	return func(c *Chooser) {
		c.depth = depth
	}
}

func WithAggregation(aggregation Aggregation) Option {
	return func(c *Chooser) {
		c.aggregation = aggregation
	}
}

func WithPotential(mode PotentialMode) Option {
	return func(c *Chooser) {
		c.potential = mode
	}
}

// WithPhaseGatedPotential restricts the unseen-hand and marriage parts of
// the opponent-potential estimate to the late phase.
func WithPhaseGatedPotential() Option {
	return func(c *Chooser) {
		c.phaseGated = true
	}
}

func WithMetrics() Option {
	return func(c *Chooser) {
		c.metrics = NewCollector()
	}
}

func New(scorer game.TrickScorer, profile *RiskProfile, rng *rand.Rand, options ...Option) *Chooser {
	c := &Chooser{ // Default values
		rng:     rng,
		scorer:  scorer,
		profile: profile,
		samples: 1,
		depth:   1,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	if c.scorer == nil {
		panic("Must supply a trick scorer")
	}
	if c.profile == nil {
		panic("Must supply a risk profile")
	}
	if c.rng == nil {
		panic("Must supply a random source")
	}
	if c.samples < 1 {
		panic(fmt.Sprintf("cannot work with less than one sample, got %d", c.samples))
	}
	if c.depth < 1 {
		panic(fmt.Sprintf("it does not make sense to use a depth < 1, got %d", c.depth))
	}
	return c
}

// Select returns the candidate with the highest aggregate net gain over
// sampled states. candidates must be non-empty (the rules engine guarantees
// at least one legal move on a valid turn). leader is the opponent's
// committed move when following, nil when leading.
//
// Candidates are shuffled first with the shared random source; the running
// best is tracked with a strict comparison, so the shuffle decides ties.
func (c *Chooser) Select(candidates []game.Move, view game.View, leader game.Move) game.Move {
	if len(candidates) == 0 {
		panic("no candidate moves to select from")
	}
	c.metrics.Start(len(candidates), c.samples)

	moves := slices.Clone(candidates)
	c.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	var turnPotential float64
	if c.potential == PotentialPerTurn {
		turnPotential = c.estimatePotential(view)
	}

	var best game.Move
	bestScore := math.Inf(-1)
	for _, move := range moves {
		total := 0.0
		for i := 0; i < c.samples; i++ {
			state := c.sample(view, leader)
			reward := c.evaluateOutcome(move, state)
			risk := c.estimateRisk(move, state)
			net := reward - risk
			switch c.potential {
			case PotentialPerTurn:
				net -= turnPotential
			case PotentialPerTrial:
				net -= c.estimatePotential(view)
			}
			total += net
			c.metrics.AddSample()
		}

		score := total
		if c.aggregation == Mean {
			score = total / float64(c.samples)
		}
		if score > bestScore {
			bestScore = score
			best = move
		}
	}

	metric := c.metrics.Complete()
	log.Debug().
		Int("candidates", metric.Candidates).
		Int("samples", metric.Samples).
		Dur("took", metric.Duration).
		Float64("score", bestScore).
		Msg("move selected")
	return best
}

// Metric returns the metrics of the last completed selection. Zero value
// unless the chooser was built with WithMetrics.
func (c *Chooser) Metric() DecisionMetric {
	return c.metrics.Last()
}
