package monitoring

import (
	"github.com/davidvella/keyq/metrics"
)

const (
	MetricEnqueued = "queue_enqueued_total"
	MetricUpdated  = "queue_updated_total"
	MetricDequeued = "queue_dequeued_total"
	MetricRemoved  = "queue_removed_total"
	MetricGrown    = "queue_grown_total"
	MetricRehashed = "queue_rehashed_total"
	MetricEntries  = "queue_entries"
	MetricBytes    = "queue_bytes"
)

// Stats records queue activity
type Stats interface {
	RecordEnqueue(labels map[string]string)
	RecordUpdate(labels map[string]string)
	RecordDequeue(labels map[string]string)
	RecordRemove(labels map[string]string)
	RecordGrow(labels map[string]string)
	RecordRehash(labels map[string]string)
	SetSize(entries, bytes int, labels map[string]string)
}

type stats struct {
	registry *metrics.Registry
}

// NewStats registers the queue metrics in registry. A nil registry yields a
// Stats that records nothing.
func NewStats(registry *metrics.Registry) Stats {
	if registry == nil {
		return nopStats{}
	}

	for _, m := range []metrics.Metric{
		{Name: MetricEnqueued, Type: metrics.Counter, Description: "Total number of new keys inserted"},
		{Name: MetricUpdated, Type: metrics.Counter, Description: "Total number of in-place value updates"},
		{Name: MetricDequeued, Type: metrics.Counter, Description: "Total number of minimum entries removed"},
		{Name: MetricRemoved, Type: metrics.Counter, Description: "Total number of entries removed by key"},
		{Name: MetricGrown, Type: metrics.Counter, Description: "Total number of heap capacity doublings"},
		{Name: MetricRehashed, Type: metrics.Counter, Description: "Total number of key index rebuilds"},
		{Name: MetricEntries, Type: metrics.Gauge, Description: "Number of live entries"},
		{Name: MetricBytes, Type: metrics.Gauge, Description: "Bytes held in live values"},
	} {
		registry.Register(m)
	}

	return &stats{registry: registry}
}

func (s *stats) RecordEnqueue(labels map[string]string) {
	s.registry.Add(MetricEnqueued, 1, labels)
}

func (s *stats) RecordUpdate(labels map[string]string) {
	s.registry.Add(MetricUpdated, 1, labels)
}

func (s *stats) RecordDequeue(labels map[string]string) {
	s.registry.Add(MetricDequeued, 1, labels)
}

func (s *stats) RecordRemove(labels map[string]string) {
	s.registry.Add(MetricRemoved, 1, labels)
}

func (s *stats) RecordGrow(labels map[string]string) {
	s.registry.Add(MetricGrown, 1, labels)
}

func (s *stats) RecordRehash(labels map[string]string) {
	s.registry.Add(MetricRehashed, 1, labels)
}

func (s *stats) SetSize(entries, bytes int, labels map[string]string) {
	s.registry.Set(MetricEntries, float64(entries), labels)
	s.registry.Set(MetricBytes, float64(bytes), labels)
}

type nopStats struct{}

func (nopStats) RecordEnqueue(map[string]string)     {}
func (nopStats) RecordUpdate(map[string]string)      {}
func (nopStats) RecordDequeue(map[string]string)     {}
func (nopStats) RecordRemove(map[string]string)      {}
func (nopStats) RecordGrow(map[string]string)        {}
func (nopStats) RecordRehash(map[string]string)      {}
func (nopStats) SetSize(int, int, map[string]string) {}
