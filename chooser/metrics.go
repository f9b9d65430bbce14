package chooser

import "time"

// DecisionMetric describes one completed move selection.
type DecisionMetric struct {
	Candidates int
	Samples    int
	StartTime  time.Time
	Duration   time.Duration
}

// Collector gathers metrics during a selection. Selection is synchronous
// and single-threaded, so no synchronization is needed.
type Collector interface {
	Start(candidates, samplesPerCandidate int)
	AddSample()
	Complete() DecisionMetric
	// Last returns the most recently completed metric.
	Last() DecisionMetric
}

type collector struct {
	candidates int
	samples    int
	startTime  time.Time
	last       DecisionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(candidates, samplesPerCandidate int) {
	c.candidates = candidates
	c.samples = 0
	c.startTime = time.Now()
}

func (c *collector) AddSample() {
	c.samples++
}

func (c *collector) Complete() DecisionMetric {
	c.last = DecisionMetric{
		Candidates: c.candidates,
		Samples:    c.samples,
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
	}
	return c.last
}

func (c *collector) Last() DecisionMetric {
	return c.last
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that measures nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(candidates, samplesPerCandidate int) {}
func (dummyCollector) AddSample()                                {}
func (dummyCollector) Complete() DecisionMetric                  { return DecisionMetric{} }
func (dummyCollector) Last() DecisionMetric                      { return DecisionMetric{} }
