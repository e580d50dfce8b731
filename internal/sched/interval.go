// Package sched derives the delay between game ticks from the current score
// and difficulty level. It is a pure function of those two numbers; the
// platform layer owns the actual timer lifecycle (arming, invalidating and
// replacing pending ticks).
package sched

import (
	"math"
	"time"
)

// Output bounds. The level selector is deliberately permissive (any integer
// parses), so the computed interval is bounded here: a zero or negative
// level degrades to a crawl instead of a non-finite duration, and an absurd
// level cannot produce a sub-millisecond busy loop.
const (
	MinInterval = time.Millisecond
	MaxInterval = time.Hour
)

// NextInterval returns the delay before the next tick:
//
//	1000ms / ((score+1)^0.25 * level)
//
// Non-increasing in score for a fixed level and decreasing in level, so the
// game speeds up as the score rises. score+1 keeps the quartic-root term
// positive at score 0.
func NextInterval(score, level int) time.Duration {
	ms := 1000.0 / (math.Pow(float64(score+1), 0.25) * float64(level))
	if math.IsNaN(ms) || ms <= 0 {
		return MaxInterval
	}

	d := time.Duration(ms * float64(time.Millisecond))
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
