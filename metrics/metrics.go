package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric describes a registered metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue is the current value of a metric for one label set
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]MetricValue),
	}
}

// Register declares a metric. Registering a name twice keeps the first
// definition.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[metric.Name]; ok {
		return
	}
	r.metrics[metric.Name] = metric
	r.values[metric.Name] = make(map[string]MetricValue)
}

// Add increments a counter. Unknown names and non-counters are ignored.
func (r *Registry) Add(name string, delta float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		id := labelID(labels)
		v := r.values[name][id]
		r.values[name][id] = MetricValue{
			Value:     v.Value + delta,
			Timestamp: time.Now(),
			Labels:    labels,
		}
	}
}

// Set records the current value of a gauge. Unknown names and non-gauges are
// ignored.
func (r *Registry) Set(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.values[name][labelID(labels)] = MetricValue{
			Value:     value,
			Timestamp: time.Now(),
			Labels:    labels,
		}
	}
}

// Value returns the value recorded for name and labels.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name][labelID(labels)]
	return v.Value, ok
}

// GetMetrics returns a copy of every recorded value grouped by metric name.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, byLabels := range r.values {
		if len(byLabels) == 0 {
			continue
		}
		ids := make([]string, 0, len(byLabels))
		for id := range byLabels {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			result[name] = append(result[name], byLabels[id])
		}
	}
	return result
}

// labelID renders labels as a canonical, order-independent string.
func labelID(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	return b.String()
}
