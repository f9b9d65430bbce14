package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tbugraerdogan/schnapsen-bots/game"
)

// Agent is one seated player. Implemented by agent.Agent; mocked in tests.
type Agent interface {
	Name() string
	ChooseMove(view game.View, leader game.Move) game.Move
	NotifyTrumpExchange(move game.TrumpExchange)
	NotifyGameEnd(won bool, view game.View)
}

// MaxTurns guards against a referee that never terminates.
const MaxTurns = 100

// Engine drives a single game between two agents through a referee. It is
// pure glue: turn order, legality, and scoring all live in the referee.
type Engine struct {
	referee game.Referee
	agents  [2]Agent
}

func LocalEngine(referee game.Referee, first, second Agent) *Engine {
	if referee == nil {
		panic("need a referee")
	}
	if first == nil || second == nil {
		panic("need two agents")
	}
	return &Engine{
		referee: referee,
		agents:  [2]Agent{first, second},
	}
}

// Run executes the game loop until the referee declares the game over and
// returns the winning seat and the number of turns played. Both agents are
// notified of the outcome before returning.
func (e *Engine) Run() (winner int, turns int, err error) {
	log.Info().
		Str("first", e.agents[0].Name()).
		Str("second", e.agents[1].Name()).
		Msg("game started")

	for turns < MaxTurns {
		seat, leader, done := e.referee.Next()
		if done {
			break
		}

		view := e.referee.ViewFor(seat)
		move := e.agents[seat].ChooseMove(view, leader)

		// The opponent gets to see a trump exchange as it happens.
		if exchange, ok := move.(game.TrumpExchange); ok {
			e.agents[1-seat].NotifyTrumpExchange(exchange)
		}

		if err := e.referee.Play(seat, move); err != nil {
			return 0, turns, fmt.Errorf("seat %d played an unacceptable move %v: %w", seat, move, err)
		}
		turns++
	}

	if turns >= MaxTurns {
		return 0, turns, fmt.Errorf("game did not finish within %d turns", MaxTurns)
	}

	winner = e.referee.Winner()
	for seat, agent := range e.agents {
		agent.NotifyGameEnd(seat == winner, e.referee.ViewFor(seat))
	}

	log.Info().
		Str("winner", e.agents[winner].Name()).
		Int("turns", turns).
		Msg("game over")
	return winner, turns, nil
}
