package experiments

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tbugraerdogan/schnapsen-bots/agent"
	"github.com/tbugraerdogan/schnapsen-bots/chooser"
	"github.com/tbugraerdogan/schnapsen-bots/engine"
	"github.com/tbugraerdogan/schnapsen-bots/experiments/metrics"
	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// Match repeatedly plays two agent profiles against each other and records
// per-game and per-move metrics, including each agent's risk-tolerance
// trajectory across games.
type Match struct {
	// NewReferee returns a fresh referee per game, supplied by the rules
	// engine.
	NewReferee func(rng *rand.Rand) game.Referee
	Scorer     game.TrickScorer
	First      agent.Config
	Second     agent.Config
	Games      int
	Seed       int64
}

// Run plays the match and writes results through w when w is non-nil.
func (m Match) Run(w *metrics.Writer) ([]metrics.GameRecord, error) {
	if m.Games < 1 {
		return nil, fmt.Errorf("need at least one game, got %d", m.Games)
	}

	rng := rand.New(rand.NewSource(m.Seed))
	agents := []*agent.Agent{
		agent.New(m.First, m.Scorer, rng, chooser.WithMetrics()),
		agent.New(m.Second, m.Scorer, rng, chooser.WithMetrics()),
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i := 0; i < m.Games; i++ {
		recorders := []*recorder{
			{agent: agents[0], game: i + 1, moves: &moveRecords},
			{agent: agents[1], game: i + 1, moves: &moveRecords},
		}

		start := time.Now()
		e := engine.LocalEngine(m.NewReferee(rng), recorders[0], recorders[1])
		winner, turns, err := e.Run()
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			Game:            i + 1,
			Winner:          agents[winner].Name(),
			Turns:           turns,
			Duration:        time.Since(start),
			FirstAgent:      agents[0].Name(),
			SecondAgent:     agents[1].Name(),
			FirstTolerance:  agents[0].Tolerance(),
			SecondTolerance: agents[1].Tolerance(),
		})
		log.Info().
			Int("game", i+1).
			Str("winner", agents[winner].Name()).
			Msg("match progress")
	}

	if w != nil {
		if err := w.WriteGameRecords(gameRecords); err != nil {
			return nil, err
		}
		if err := w.WriteMoveRecords(moveRecords); err != nil {
			return nil, err
		}
	}
	return gameRecords, nil
}

// recorder wraps an agent to capture a move record after every selection.
type recorder struct {
	agent *agent.Agent
	game  int
	turn  int
	moves *[]metrics.MoveRecord
}

func (r *recorder) Name() string {
	return r.agent.Name()
}

func (r *recorder) ChooseMove(view game.View, leader game.Move) game.Move {
	move := r.agent.ChooseMove(view, leader)
	r.turn++
	*r.moves = append(*r.moves, metrics.MoveRecord{
		Game:           r.game,
		Turn:           r.turn,
		Agent:          r.agent.Name(),
		DecisionMetric: r.agent.Metric(),
	})
	return move
}

func (r *recorder) NotifyTrumpExchange(move game.TrumpExchange) {
	r.agent.NotifyTrumpExchange(move)
}

func (r *recorder) NotifyGameEnd(won bool, view game.View) {
	r.agent.NotifyGameEnd(won, view)
}
