// Package cadence defines how often an allocation definition pays out and the
// UTC period windows used to make each payout happen at most once.
package cadence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Cadence is the recurrence class of an allocation definition.
type Cadence string

const (
	Daily   Cadence = "DAILY"
	Monthly Cadence = "MONTHLY"
)

// ErrUnknownCadence is returned when a cadence key is not recognised.
var ErrUnknownCadence = errors.New("unknown cadence")

// Parse converts a cadence key such as "monthly" or "DAILY" to a Cadence.
func Parse(s string) (Cadence, error) {
	c := Cadence(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCadence, s)
	}
	return c, nil
}

// Valid reports whether c is a known cadence.
func (c Cadence) Valid() bool {
	return c == Daily || c == Monthly
}

// ScheduleExpression returns the EventBridge schedule expression that fires once
// at the start of every period, in UTC.
func (c Cadence) ScheduleExpression() string {
	switch c {
	case Daily:
		return "cron(0 0 * * ? *)"
	case Monthly:
		return "cron(0 0 1 * ? *)"
	default:
		return ""
	}
}

// PeriodFor returns the period of this cadence that contains t.
// Windows are computed in UTC so that the same instant always maps to the same period.
func (c Cadence) PeriodFor(t time.Time) Period {
	t = t.UTC()
	switch c {
	case Monthly:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Period{Cadence: c, Start: start, End: start.AddDate(0, 1, 0)}
	default:
		start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return Period{Cadence: Daily, Start: start, End: start.AddDate(0, 0, 1)}
	}
}

// Period is the half-open window [Start, End) identifying one occurrence of a cadence.
type Period struct {
	Cadence Cadence
	Start   time.Time
	End     time.Time
}

// Contains reports whether t falls inside [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Key is the stable identifier of the period, e.g. "2026-10" or "2026-10-17".
func (p Period) Key() string {
	if p.Cadence == Monthly {
		return p.Start.Format("2006-01")
	}
	return p.Start.Format("2006-01-02")
}

// Next returns the period that immediately follows p.
func (p Period) Next() Period {
	return p.Cadence.PeriodFor(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.Format(time.RFC3339) + ", " + p.End.Format(time.RFC3339) + ")"
}
