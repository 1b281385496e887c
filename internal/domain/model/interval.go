package model

import "time"

// Interval is a half-open time range [From, To): From is included, To is not.
// Two intervals touching at an endpoint are adjacent, not overlapping.
type Interval struct {
	From time.Time
	To   time.Time
}

// NewInterval builds an interval from its endpoints.
func NewInterval(from, to time.Time) Interval {
	return Interval{From: from, To: to}
}

// Valid reports whether the interval has positive length.
func (i Interval) Valid() bool {
	return i.From.Before(i.To)
}

// Overlaps reports whether two half-open intervals share any instant.
// The predicate f1 < t2 && f2 < t1 is symmetric and covers containment
// in both directions.
func (i Interval) Overlaps(other Interval) bool {
	return i.From.Before(other.To) && other.From.Before(i.To)
}
