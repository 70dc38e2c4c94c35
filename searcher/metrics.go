package searcher

import (
	"sync/atomic"
	"time"
)

// MoveMetrics summarizes one strategy invocation.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	LeafEvals int64
	Cutoffs   int64
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeafEval()
	AddCutoff()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	leafEvals atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leafEvals.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeafEval() {
	m.leafEvals.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		LeafEvals: m.leafEvals.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddLeafEval()          {}
func (m *noMetricsCollector) AddCutoff()            {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
