// Package stats keeps rolling-window latency percentiles for render and
// parse phases.
package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	at    time.Time
	phase string
	us    int64
}

// Snapshot aggregates the samples of one phase, in microseconds.
type Snapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// Latency records phase durations and forgets samples older than the window.
type Latency struct {
	mu      sync.Mutex
	samples []sample
	window  time.Duration
}

func NewLatency(window time.Duration) *Latency {
	if window <= 0 {
		window = time.Hour
	}
	return &Latency{
		samples: make([]sample, 0, 256),
		window:  window,
	}
}

// Record adds a duration for phase. Negative durations count as zero.
func (l *Latency) Record(phase string, d time.Duration) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked(now)
	l.samples = append(l.samples, sample{at: now, phase: phase, us: us})
}

// Snapshot returns the aggregate for every phase seen in the window.
func (l *Latency) Snapshot() map[string]Snapshot {
	now := time.Now()

	l.mu.Lock()
	l.pruneLocked(now)
	byPhase := make(map[string][]int64)
	for _, s := range l.samples {
		byPhase[s.phase] = append(byPhase[s.phase], s.us)
	}
	l.mu.Unlock()

	out := make(map[string]Snapshot, len(byPhase))
	for phase, values := range byPhase {
		out[phase] = aggregate(values)
	}
	return out
}

// Phase returns the aggregate for a single phase.
func (l *Latency) Phase(phase string) Snapshot {
	return l.Snapshot()[phase]
}

func aggregate(values []int64) Snapshot {
	if len(values) == 0 {
		return Snapshot{}
	}
	slices.Sort(values)
	var sum int64
	for _, v := range values {
		sum += v
	}
	return Snapshot{
		Count: len(values),
		MinUs: values[0],
		MaxUs: values[len(values)-1],
		AvgUs: float64(sum) / float64(len(values)),
		P50Us: percentile(values, 50),
		P95Us: percentile(values, 95),
		P99Us: percentile(values, 99),
	}
}

func (l *Latency) pruneLocked(now time.Time) {
	cutoff := now.Add(-l.window)
	l.samples = slices.DeleteFunc(l.samples, func(s sample) bool {
		return s.at.Before(cutoff)
	})
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}
	rank := float64(len(sorted)-1) * pct / 100
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*(rank-float64(lower))
}
