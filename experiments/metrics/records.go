package metrics

import (
	"time"

	"github.com/tbugraerdogan/schnapsen-bots/chooser"
)

// GameRecord describes one finished game of a match.
type GameRecord struct {
	Game     int
	Winner   string
	Turns    int
	Duration time.Duration
	// Tolerances after the end-of-game adjustment, by seat.
	FirstAgent      string
	SecondAgent     string
	FirstTolerance  float64
	SecondTolerance float64
}

// MoveRecord describes one move selection within a game.
type MoveRecord struct {
	Game  int
	Turn  int
	Agent string
	chooser.DecisionMetric
}
