package searchlog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/aislenav/gridgraph"
)

// Record describes one successful single-pair search.
type Record struct {
	ID     uuid.UUID        // unique per record
	Start  gridgraph.Cell   // queried start
	Goal   gridgraph.Cell   // reached goal
	Route  []gridgraph.Cell // start..goal inclusive
	Length int              // number of cells in Route
	At     time.Time        // when the record was appended
}

// Steps returns the number of moves along the route (Length-1).
func (r Record) Steps() int {
	if r.Length == 0 {
		return 0
	}

	return r.Length - 1
}

// Log is an append-only sequence of Records guarded by a mutex.
type Log struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// New returns an empty Log.
func New() *Log {
	return &Log{now: time.Now}
}

// Append stores a copy of route under a fresh Record.
func (l *Log) Append(start, goal gridgraph.Cell, route []gridgraph.Cell) {
	rec := Record{
		ID:     uuid.New(),
		Start:  start,
		Goal:   goal,
		Route:  append([]gridgraph.Cell(nil), route...),
		Length: len(route),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.now == nil {
		l.now = time.Now
	}
	rec.At = l.now()
	l.records = append(l.records, rec)
}

// Last returns the most recent record; ok is false when the log is empty.
func (l *Log) Last() (rec Record, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.records) == 0 {
		return Record{}, false
	}
	rec = l.records[len(l.records)-1]
	rec.Route = append([]gridgraph.Cell(nil), rec.Route...)

	return rec, true
}

// Records returns a snapshot of all records in insertion order.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	for i, rec := range l.records {
		rec.Route = append([]gridgraph.Cell(nil), rec.Route...)
		out[i] = rec
	}

	return out
}

// Len returns the number of stored records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// Clear drops every record.
func (l *Log) Clear() {
	l.mu.Lock()
	l.records = nil
	l.mu.Unlock()
}
