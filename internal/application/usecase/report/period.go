// Package report contains the balance reporting use cases.
package report

import (
	"fmt"
	"time"
)

// Period selects a named, right-bounded-at-now aggregation window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

const (
	dayLabelLayout   = "02.01.2006"
	rangeLabelLayout = "02.01"
)

// Window is a resolved reporting window with its display label.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// ResolveWindow maps a period token to a concrete window anchored at now.
// The month window is a fixed 30-day offset, calendar-month-agnostic.
// Unrecognized tokens fall back to the widest (365-day) window rather than
// failing; an empty token means day.
func ResolveWindow(now time.Time, period Period) Window {
	switch period {
	case PeriodDay, "":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return Window{
			Start: start,
			End:   now,
			Label: now.Format(dayLabelLayout),
		}
	case PeriodWeek:
		return rangeWindow(now, 7, rangeLabelLayout)
	case PeriodMonth:
		return rangeWindow(now, 30, rangeLabelLayout)
	default:
		// year and anything unrecognized
		return rangeWindow(now, 365, dayLabelLayout)
	}
}

func rangeWindow(now time.Time, days int, layout string) Window {
	start := now.AddDate(0, 0, -days)
	return Window{
		Start: start,
		End:   now,
		Label: fmt.Sprintf("%s — %s", start.Format(layout), now.Format(layout)),
	}
}
