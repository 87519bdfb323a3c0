package channel

import (
	"context"
	"sync"
)

// StaticRegistry is an in-memory Registry seeded from configuration. Replace
// swaps the whole record set, matching the read-mostly usage of the real
// registry.
type StaticRegistry struct {
	mu      sync.RWMutex
	records []Record
}

// NewStaticRegistry creates a registry over the given records.
func NewStaticRegistry(records []Record) *StaticRegistry {
	r := &StaticRegistry{}
	r.Replace(records)
	return r
}

func (r *StaticRegistry) List(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Replace swaps the record set.
func (r *StaticRegistry) Replace(records []Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]Record(nil), records...)
}
