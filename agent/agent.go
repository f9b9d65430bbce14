package agent

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/tbugraerdogan/schnapsen-bots/chooser"
	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// Config parameterizes one agent variant. The three historical bots differ
// only in these values, so a variant is data, not a type.
type Config struct {
	Name    string
	Samples int
	// Depth is validated at construction but not consumed by the scoring
	// logic (reserved rollout depth).
	Depth     int
	Tolerance float64
	WinDelta  float64
	LossDelta float64

	Aggregation         chooser.Aggregation
	Potential           chooser.PotentialMode
	PhaseGatedPotential bool
}

// Agent plays one game at a time: it picks a move per turn through its
// chooser and adapts its risk tolerance on game end. Not safe for use
// across concurrent games; the rules engine enforces one game per agent.
type Agent struct {
	name    string
	chooser *chooser.Chooser
	profile *chooser.RiskProfile

	// Past-move buffers for future opponent modeling; appended during play,
	// cleared at game end, read by nothing yet.
	myPastMoves       []game.Move
	opponentPastMoves []game.Move
}

// New builds an agent from a config. The scorer comes from the rules
// engine; rng is the single seedable source shared by candidate shuffling
// and world completion. Panics on an invalid config, matching the chooser's
// construction contract.
func New(cfg Config, scorer game.TrickScorer, rng *rand.Rand, options ...chooser.Option) *Agent {
	profile := chooser.NewRiskProfile(cfg.Tolerance, cfg.WinDelta, cfg.LossDelta)

	opts := []chooser.Option{
		chooser.WithSamples(cfg.Samples),
		chooser.WithDepth(cfg.Depth),
		chooser.WithAggregation(cfg.Aggregation),
		chooser.WithPotential(cfg.Potential),
	}
	if cfg.PhaseGatedPotential {
		opts = append(opts, chooser.WithPhaseGatedPotential())
	}
	opts = append(opts, options...)

	return &Agent{
		name:    cfg.Name,
		chooser: chooser.New(scorer, profile, rng, opts...),
		profile: profile,
	}
}

func (a *Agent) Name() string {
	return a.name
}

// ChooseMove returns one legal move for the current turn. leader is the
// opponent's committed move when this agent follows, nil when it leads.
func (a *Agent) ChooseMove(view game.View, leader game.Move) game.Move {
	candidates := view.ValidMoves()
	move := a.chooser.Select(candidates, view, leader)
	a.myPastMoves = append(a.myPastMoves, move)
	return move
}

// NotifyTrumpExchange records the opponent's trump exchange. It has no
// decision-time effect.
func (a *Agent) NotifyTrumpExchange(move game.TrumpExchange) {
	a.opponentPastMoves = append(a.opponentPastMoves, move)
}

// NotifyGameEnd adjusts the risk tolerance for the next game and clears the
// per-game buffers.
func (a *Agent) NotifyGameEnd(won bool, view game.View) {
	a.profile.AdjustForOutcome(won)
	a.myPastMoves = nil
	a.opponentPastMoves = nil

	log.Debug().
		Str("agent", a.name).
		Bool("won", won).
		Float64("tolerance", a.profile.Tolerance).
		Msg("game over, risk tolerance adjusted")
}

// Tolerance returns the current risk tolerance.
func (a *Agent) Tolerance() float64 {
	return a.profile.Tolerance
}

// Metric returns the metrics of the last move selection. Zero value unless
// the agent was built with chooser.WithMetrics.
func (a *Agent) Metric() chooser.DecisionMetric {
	return a.chooser.Metric()
}
