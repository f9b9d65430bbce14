package agent

import "github.com/tbugraerdogan/schnapsen-bots/chooser"

// Default sampling parameters shared by the stock profiles.
const (
	DefaultSamples = 10
	DefaultDepth   = 2
)

// LowRisk is a cautious profile: low starting tolerance that recovers
// quickly on wins, summed (not averaged) net gain, and an opponent
// potential computed once per turn and only in the late phase.
func LowRisk() Config {
	return Config{
		Name:                "low-risk",
		Samples:             DefaultSamples,
		Depth:               DefaultDepth,
		Tolerance:           0.3,
		WinDelta:            0.1,
		LossDelta:           0.05,
		Aggregation:         chooser.Total,
		Potential:           chooser.PotentialPerTurn,
		PhaseGatedPotential: true,
	}
}

// MidRisk is a balanced profile: symmetric tolerance adjustment, averaged
// net gain, no opponent-potential estimate.
func MidRisk() Config {
	return Config{
		Name:        "mid-risk",
		Samples:     DefaultSamples,
		Depth:       DefaultDepth,
		Tolerance:   0.55,
		WinDelta:    0.05,
		LossDelta:   0.05,
		Aggregation: chooser.Mean,
		Potential:   chooser.PotentialOff,
	}
}

// HighRisk is an aggressive profile: high starting tolerance, averaged net
// gain, and an opponent potential recomputed on every sample regardless of
// phase.
func HighRisk() Config {
	return Config{
		Name:        "high-risk",
		Samples:     DefaultSamples,
		Depth:       DefaultDepth,
		Tolerance:   0.8,
		WinDelta:    0.05,
		LossDelta:   0.05,
		Aggregation: chooser.Mean,
		Potential:   chooser.PotentialPerTrial,
	}
}
