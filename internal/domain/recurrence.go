package domain

import (
	"fmt"
	"time"
)

type RecurrenceKind string

const (
	RecurrenceYearly   RecurrenceKind = "YEARLY"
	RecurrenceMonthly  RecurrenceKind = "MONTHLY"
	RecurrenceBiWeekly RecurrenceKind = "BI_WEEKLY"
	RecurrenceWeekly   RecurrenceKind = "WEEKLY"
	RecurrenceDaily    RecurrenceKind = "DAILY"
)

func (k RecurrenceKind) Valid() bool {
	switch k {
	case RecurrenceYearly, RecurrenceMonthly, RecurrenceBiWeekly, RecurrenceWeekly, RecurrenceDaily:
		return true
	default:
		return false
	}
}

// Recurrence is the repeat rule of a bill. Day is a day of the month for
// RecurrenceMonthly and a weekday (0 = Sunday) for the weekly kinds.
type Recurrence struct {
	Day  int
	Kind RecurrenceKind
}

func (r Recurrence) Validate() error {
	switch r.Kind {
	case RecurrenceMonthly:
		if r.Day < 1 || r.Day > 31 {
			return fmt.Errorf("%w: day of month %d outside 1-31", ErrInvalidDayValue, r.Day)
		}
	case RecurrenceWeekly, RecurrenceBiWeekly:
		if r.Day < int(time.Sunday) || r.Day > int(time.Saturday) {
			return fmt.Errorf("%w: day of week %d outside 0-6", ErrInvalidDayValue, r.Day)
		}
	case RecurrenceYearly, RecurrenceDaily:
		// no expansion rule yet; Expand reports these.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecurrenceKind, r.Kind)
	}

	return nil
}

// Expand returns the due dates of rec that fall in or near the window
// [from, to), in ascending order. Monthly rules always yield exactly one
// date; weekly rules yield one date per matching weekday strictly before to.
func Expand(rec Recurrence, from, to Date) ([]Date, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidWindow, from, to)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	switch rec.Kind {
	case RecurrenceMonthly:
		return []Date{monthlyDueDate(rec.Day, from, to)}, nil
	case RecurrenceWeekly:
		return weekdayDueDates(time.Weekday(rec.Day), from, to, 1), nil
	case RecurrenceBiWeekly:
		return weekdayDueDates(time.Weekday(rec.Day), from, to, 2), nil
	case RecurrenceYearly, RecurrenceDaily:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRecurrence, rec.Kind)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecurrenceKind, rec.Kind)
	}
}

// monthlyDueDate lands in the start month unless the window crosses into
// the next month and the due day has already passed, in which case it lands
// in the end month. Days past the end of the target month clamp to its last day.
func monthlyDueDate(day int, from, to Date) Date {
	year, month := from.Year(), from.Month()
	if !from.SameMonth(to) && day < from.Day() {
		year, month = to.Year(), to.Month()
	}

	return NewDate(year, month, min(day, DaysInMonth(year, month)))
}

// weekdayDueDates walks the window one day at a time and keeps every
// every-th match of weekday, counting from the first match. The walk stops
// before to and never takes more steps than the window has days.
func weekdayDueDates(weekday time.Weekday, from, to Date, every int) []Date {
	span := from.DaysUntil(to)
	dates := make([]Date, 0, span/7+1)
	matches := 0

	for step := 0; step < span; step++ {
		day := from.AddDays(step)
		if day.Weekday() != weekday {
			continue
		}

		matches++
		if matches%every == 0 {
			dates = append(dates, day)
		}
	}

	return dates
}
