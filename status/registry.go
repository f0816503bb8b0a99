// Package status holds process-wide counters written by background workers
// and read by the editor's info view.
package status

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Well-known metric keys
const (
	SaveQueued    = "save.queued"
	SaveOK        = "save.ok"
	SaveFailed    = "save.failed"
	SaveDropped   = "save.dropped"
	SaveLastMs    = "save.last_ms"
	SaveLastError = "save.last_error"
	SaveLastFile  = "save.last_file"
	LoadOK        = "load.ok"
	LoadFailed    = "load.failed"
)

// Registry groups metric cells by value type
// Safe for concurrent use
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Inc adds one to an integer counter; nil registries are ignored
func (r *Registry) Inc(key string) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(1)
}

// Int reads an integer counter
func (r *Registry) Int(key string) int64 {
	if r == nil {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// SetFloat stores a gauge; nil registries are ignored
func (r *Registry) SetFloat(key string, v float64) {
	if r == nil {
		return
	}
	r.Floats.Get(key).Set(v)
}

// SetText stores a text cell; nil registries are ignored
func (r *Registry) SetText(key, v string) {
	if r == nil {
		return
	}
	r.Strings.Get(key).Store(v)
}

// Text reads a text cell
func (r *Registry) Text(key string) string {
	if r == nil {
		return ""
	}
	return r.Strings.Get(key).Load()
}

// Snapshot renders every metric as a "key: value" line, sorted by key
func (r *Registry) Snapshot() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		if s := v.Load(); s != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", k, s))
		}
	})
	slices.Sort(lines)
	return lines
}
