package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - Prometheus collectors describing hash table activity. A nil *Metrics is valid and records nothing,
// so a table without metrics does not need to check before calling.
type Metrics struct {
	Inserts      *prometheus.CounterVec
	Deletes      *prometheus.CounterVec
	Searches     *prometheus.CounterVec
	Expansions   prometheus.Counter
	Capacity     prometheus.Gauge
	LiveRecords  prometheus.Gauge
	Tombstones   prometheus.Gauge
	ProbeLengths prometheus.Histogram
}

// NewMetrics - Returns a pointer to a new Metrics instance with all collectors registered to reg.
// Registering the same names twice on one registry fails, use one registry per table.
func NewMetrics(reg prometheus.Registerer) (m *Metrics, err error) {
	m = &Metrics{
		Inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "memhashmap_inserts_total",
			Help: "Total number of insert calls by result",
		}, []string{"result"}),
		Deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "memhashmap_deletes_total",
			Help: "Total number of delete calls by result",
		}, []string{"result"}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "memhashmap_searches_total",
			Help: "Total number of search calls by result",
		}, []string{"result"}),
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "memhashmap_expansions_total",
			Help: "Total number of times the slot array was doubled",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "memhashmap_capacity_slots",
			Help: "Current length of the slot array",
		}),
		LiveRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "memhashmap_live_records",
			Help: "Number of live records in the table",
		}),
		Tombstones: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "memhashmap_tombstones",
			Help: "Number of tombstoned slots in the table",
		}),
		ProbeLengths: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "memhashmap_probe_length_slots",
			Help:    "Number of slots visited per probe",
			Buckets: prometheus.ExponentialBuckets(1, 2.0, 12),
		}),
	}

	collectors := []prometheus.Collector{
		m.Inserts, m.Deletes, m.Searches, m.Expansions, m.Capacity, m.LiveRecords, m.Tombstones, m.ProbeLengths,
	}
	for _, c := range collectors {
		if err = reg.Register(c); err != nil {
			m = nil
			return
		}
	}

	return
}

// IncInsert - Counts an insert with result "ok", "duplicate" or "error"
func (M *Metrics) IncInsert(result string) {
	if M == nil {
		return
	}
	M.Inserts.WithLabelValues(result).Inc()
}

// IncDelete - Counts a delete with result "ok" or "missing"
func (M *Metrics) IncDelete(result string) {
	if M == nil {
		return
	}
	M.Deletes.WithLabelValues(result).Inc()
}

// IncSearch - Counts a search with result "hit" or "miss"
func (M *Metrics) IncSearch(result string) {
	if M == nil {
		return
	}
	M.Searches.WithLabelValues(result).Inc()
}

// IncExpansion - Counts one doubling of the slot array
func (M *Metrics) IncExpansion() {
	if M == nil {
		return
	}
	M.Expansions.Inc()
}

// ObserveProbe - Records the number of slots visited by one probe
func (M *Metrics) ObserveProbe(probes int64) {
	if M == nil {
		return
	}
	M.ProbeLengths.Observe(float64(probes))
}

// SetUtilization - Sets the capacity, live and tombstone gauges
func (M *Metrics) SetUtilization(capacity, live, tombstones int64) {
	if M == nil {
		return
	}
	M.Capacity.Set(float64(capacity))
	M.LiveRecords.Set(float64(live))
	M.Tombstones.Set(float64(tombstones))
}
