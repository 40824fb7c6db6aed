// Package metricsexport adapts pkg/dbvh.MetricsSink to Prometheus gauges
// and counters, supplementing spec.md's H component (metrics & validation)
// with an observability surface pkg/dbvh itself is free of. Gauge/counter
// registration style (namespace/subsystem constants, a passed-in
// prometheus.Registerer rather than the global default) is grounded on
// AleutianLocal's cmd/aleutian/internal/diagnostics/metrics.go.
package metricsexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/flier/dbvh/pkg/dbvh"
)

const (
	namespace = "dbvh"
	subsystem = "tree"
)

// Sink is a dbvh.MetricsSink backed by Prometheus gauges. Rotation counts
// are exported as a counter vector labelled by rotation kind (bf, bg, cd,
// ce), matching spec §3's four diagnostic counters.
type Sink struct {
	proxyCount    prometheus.Gauge
	nodeCount     prometheus.Gauge
	nodeCapacity  prometheus.Gauge
	height        prometheus.Gauge
	areaRatio     prometheus.Gauge
	rotationTotal *prometheus.CounterVec
	rotationLast  map[string]int64
}

var _ dbvh.MetricsSink = (*Sink)(nil)

// New creates a Sink and registers its collectors with reg.
func New(reg prometheus.Registerer) *Sink {
	s := &Sink{
		proxyCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "proxy_count",
			Help: "Number of live leaf proxies in the tree.",
		}),
		nodeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "node_count",
			Help: "Number of in-use nodes (leaves plus internals).",
		}),
		nodeCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "node_capacity",
			Help: "Current capacity of the node pool.",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "height",
			Help: "Cached height of the tree's root.",
		}),
		areaRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "area_ratio",
			Help: "Sum of internal node areas (excluding root) divided by root area.",
		}),
		rotationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "rotation_total",
			Help: "Cumulative count of applied rotations by kind.",
		}, []string{"kind"}),
		rotationLast: make(map[string]int64, 4),
	}

	reg.MustRegister(s.proxyCount, s.nodeCount, s.nodeCapacity, s.height, s.areaRatio, s.rotationTotal)

	return s
}

func (s *Sink) SetProxyCount(v int32)   { s.proxyCount.Set(float64(v)) }
func (s *Sink) SetNodeCount(v int32)    { s.nodeCount.Set(float64(v)) }
func (s *Sink) SetNodeCapacity(v int32) { s.nodeCapacity.Set(float64(v)) }
func (s *Sink) SetHeight(v int32)       { s.height.Set(float64(v)) }
func (s *Sink) SetAreaRatio(v float64)  { s.areaRatio.Set(v) }

// SetRotationCounts publishes cumulative rotation counters. Since the
// counters are monotonic in the Tree and Prometheus counters only
// support Add, this adds to each label's counter the delta since the
// last observed value, so the counter tracks the Tree's running total.
func (s *Sink) SetRotationCounts(bf, bg, cd, ce int64) {
	s.setCounter("bf", bf)
	s.setCounter("bg", bg)
	s.setCounter("cd", cd)
	s.setCounter("ce", ce)
}

func (s *Sink) setCounter(kind string, total int64) {
	prev := s.rotationLast[kind]
	if delta := total - prev; delta > 0 {
		s.rotationTotal.WithLabelValues(kind).Add(float64(delta))
	}
	s.rotationLast[kind] = total
}
