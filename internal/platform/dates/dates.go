package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	Layout      = "2006-01-02"
	MonthLayout = "2006-01"
)

type State int

const (
	Empty State = iota
	Valid
	Invalid
)

// Result distingue "sin dato" (Empty) de "dato malo" (Invalid).
type Result struct {
	Day    time.Time
	State  State
	Reason string
}

func (r Result) OK() bool { return r.State == Valid }

// Parse interpreta una fecha calendario YYYY-MM-DD en UTC.
func Parse(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{State: Empty}
	}
	t, err := time.Parse(Layout, raw)
	if err != nil {
		return Result{State: Invalid, Reason: fmt.Sprintf("%q is not YYYY-MM-DD", raw)}
	}
	return Result{Day: t, State: Valid}
}

// Day trunca un instante a su fecha calendario (UTC).
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string { return t.UTC().Format(Layout) }

func MonthLabel(t time.Time) string { return t.UTC().Format(MonthLayout) }

// DaysBetween devuelve días enteros de from a to (negativo si to < from).
// Se calcula sobre segundos Unix: Duration satura a ~292 años.
func DaysBetween(from, to time.Time) int {
	return int((Day(to).Unix() - Day(from).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// MonthSpan devuelve cada mes YYYY-MM de start a end inclusive.
func MonthSpan(start, end time.Time) []string {
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]string, 0)
	for !cur.After(last) {
		out = append(out, MonthLabel(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}
