package searcher

import "time"

// MoveMetrics describes one searched decision.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	RolloutMoves int
}

// MetricsCollector observes a search. The search calls Start once per
// decision and the Add methods during it; the collector's owner reads the
// window off with Complete.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddRolloutMoves(count int)
	Complete() MoveMetrics
}

// The search is sequential, so the collector needs no synchronization.
type metricsCollector struct {
	startTime    time.Time
	iterations   int
	rolloutMoves int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start begins a new collection window.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.rolloutMoves = 0
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddRolloutMoves(count int) {
	m.rolloutMoves += count
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		RolloutMoves: m.rolloutMoves,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddIteration()             {}
func (m *noMetricsCollector) AddRolloutMoves(count int) {}
func (m *noMetricsCollector) Complete() MoveMetrics     { return MoveMetrics{} }
