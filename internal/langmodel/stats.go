package langmodel

import (
	"math"
	"sort"
	"sync"
	"time"
)

// StatsSnapshot is a point-in-time aggregate of provider call latencies.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// CallStats keeps provider call latencies inside a rolling window. Samples
// live in parallel arrival/duration slices; arrivals are monotonic, so
// expiry only ever trims a prefix.
type CallStats struct {
	mu     sync.Mutex
	window time.Duration
	at     []time.Time
	ms     []int64
}

func NewCallStats(window time.Duration) *CallStats {
	if window <= 0 {
		window = time.Hour
	}
	return &CallStats{window: window}
}

// Record adds one call duration in milliseconds. Negative durations count
// as zero.
func (s *CallStats) Record(durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evict(now)
	s.at = append(s.at, now)
	s.ms = append(s.ms, durationMs)
}

// Snapshot aggregates the samples still inside the window.
func (s *CallStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	s.evict(time.Now())
	durs := append([]int64(nil), s.ms...)
	s.mu.Unlock()

	n := len(durs)
	if n == 0 {
		return StatsSnapshot{}
	}

	sort.Slice(durs, func(i, j int) bool { return durs[i] < durs[j] })
	var sum int64
	for _, d := range durs {
		sum += d
	}

	return StatsSnapshot{
		Count: n,
		MinMs: durs[0],
		MaxMs: durs[n-1],
		AvgMs: float64(sum) / float64(n),
		P50Ms: quantile(durs, 0.50),
		P95Ms: quantile(durs, 0.95),
		P99Ms: quantile(durs, 0.99),
	}
}

func (s *CallStats) evict(now time.Time) {
	cutoff := now.Add(-s.window)
	first := sort.Search(len(s.at), func(i int) bool { return !s.at[i].Before(cutoff) })
	if first > 0 {
		s.at = append(s.at[:0], s.at[first:]...)
		s.ms = append(s.ms[:0], s.ms[first:]...)
	}
}

// quantile interpolates linearly between the two nearest order statistics
// of an ascending sample. q is a fraction in [0,1].
func quantile(sorted []int64, q float64) float64 {
	n := len(sorted)
	pos := q * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return float64(sorted[n-1])
	}
	frac := pos - float64(i)
	return float64(sorted[i])*(1-frac) + float64(sorted[i+1])*frac
}
