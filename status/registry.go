// Package status holds lock-free runtime metrics shared between the event loop and readers.
package status

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry groups metrics by value type
// Writers cache the pointer returned by Get and update it directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is a formatted point-in-time value
type Metric struct {
	Name  string
	Value string
}

// Snapshot formats every metric, sorted by name
func (r *Registry) Snapshot() []Metric {
	if r == nil {
		return nil
	}
	out := make([]Metric, 0, r.TotalCount())
	r.Bools.Range(func(n string, p *atomic.Bool) {
		out = append(out, Metric{n, strconv.FormatBool(p.Load())})
	})
	r.Ints.Range(func(n string, p *atomic.Int64) {
		out = append(out, Metric{n, strconv.FormatInt(p.Load(), 10)})
	})
	r.Floats.Range(func(n string, p *AtomicFloat) {
		out = append(out, Metric{n, strconv.FormatFloat(p.Get(), 'f', 2, 64)})
	})
	r.Strings.Range(func(n string, p *AtomicString) {
		out = append(out, Metric{n, p.Load()})
	})
	slices.SortFunc(out, func(a, b Metric) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
