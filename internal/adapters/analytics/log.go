// Package analytics keeps a capped in-memory log of query events with
// read-side aggregations. Process-local telemetry only; nothing persists.
package analytics

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// DefaultCapacity bounds the retained query history.
const DefaultCapacity = 1000

// Log implements ports.QueryLog. Entries are kept newest-first; append and
// trim happen under one lock since both touch the shared buffer.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []entities.QueryLogEntry
	now      func() time.Time
}

// NewLog creates a log retaining at most capacity entries. A non-positive
// capacity selects the default.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		now:      time.Now,
	}
}

// Record assigns an id and timestamp, prepends the entry, and evicts the
// oldest entries past capacity.
func (l *Log) Record(entry entities.QueryLogEntry) {
	entry.ID = uuid.NewString()
	entry.Timestamp = l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]entities.QueryLogEntry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Stats recomputes aggregates over the retained buffer. O(n) per call,
// bounded by capacity.
func (l *Log) Stats() entities.QueryStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := entities.QueryStats{
		TotalQueries: len(l.entries),
		Categories:   make(map[entities.Category]int),
	}

	var totalMs int64
	var totalConfidence float64
	for _, e := range l.entries {
		totalMs += e.ProcessingTimeMs
		totalConfidence += e.Confidence
		stats.Categories[e.Category]++
	}
	if len(l.entries) > 0 {
		stats.AvgProcessingMs = float64(totalMs) / float64(len(l.entries))
		stats.AvgConfidence = totalConfidence / float64(len(l.entries))
	}

	recent := len(l.entries)
	if recent > 10 {
		recent = 10
	}
	stats.RecentEntries = make([]entities.QueryLogEntry, recent)
	copy(stats.RecentEntries, l.entries[:recent])

	return stats
}

// StatsForRole aggregates over the entries recorded for one role.
func (l *Log) StatsForRole(role entities.Role) entities.RoleStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := entities.RoleStats{Role: role}
	counts := make(map[entities.Category]int)

	var totalConfidence float64
	for _, e := range l.entries {
		if e.Role != role {
			continue
		}
		stats.Count++
		totalConfidence += e.Confidence
		counts[e.Category]++
	}
	if stats.Count > 0 {
		stats.AvgConfidence = totalConfidence / float64(stats.Count)
	}

	best := 0
	for category, n := range counts {
		if n > best || (n == best && category < stats.TopCategory) {
			best = n
			stats.TopCategory = category
		}
	}
	return stats
}
