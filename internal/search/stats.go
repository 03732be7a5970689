package search

import (
	"slices"
	"strings"
	"sync"
	"time"
)

type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Stats counts normalized search queries.
type Stats struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewStats() *Stats {
	return &Stats{counts: make(map[string]int)}
}

// Record counts text once. Blank queries are ignored.
func (s *Stats) Record(text string) {
	q := normalize(text)
	if q == "" {
		return
	}
	s.mu.Lock()
	s.counts[q]++
	s.mu.Unlock()
}

// Top returns the n most frequent queries, ties broken alphabetically.
// n <= 0 returns all of them.
func (s *Stats) Top(n int) []QueryCount {
	s.mu.RLock()
	out := make([]QueryCount, 0, len(s.counts))
	for q, c := range s.counts {
		out = append(out, QueryCount{Query: q, Count: c})
	}
	s.mu.RUnlock()
	slices.SortFunc(out, func(a, b QueryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Query, b.Query)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Recorder feeds quick-search keystrokes into Stats, counting only the query
// a session settles on after the debounce delay. A session's debouncer is
// dropped once its value has been recorded.
type Recorder struct {
	mu        sync.Mutex
	stats     *Stats
	delay     time.Duration
	debounced map[string]*Debouncer[string]
}

func NewRecorder(stats *Stats, delay time.Duration) *Recorder {
	return &Recorder{stats: stats, delay: delay, debounced: make(map[string]*Debouncer[string])}
}

func (r *Recorder) Observe(sessionID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.debounced[sessionID]
	if !ok {
		d = NewDebouncer(r.delay, func(q string) { r.settle(sessionID, q) })
		r.debounced[sessionID] = d
	}
	d.Push(text)
}

func (r *Recorder) settle(sessionID, text string) {
	r.stats.Record(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	// a push after the timer fired keeps the debouncer alive
	if d, ok := r.debounced[sessionID]; ok && !d.Pending() {
		delete(r.debounced, sessionID)
	}
}

// Len reports how many sessions have a query waiting to settle.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.debounced)
}
