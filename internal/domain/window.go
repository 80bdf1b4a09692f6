package domain

import "fmt"

const (
	DefaultWindowDays = 13
	MaxWindowDays     = 366
)

// Window is the reporting period [From, To).
type Window struct {
	From Date
	To   Date
}

func NewWindow(start Date, days int) (Window, error) {
	if start.IsZero() {
		return Window{}, fmt.Errorf("%w: missing start date", ErrInvalidWindow)
	}
	if days < 0 {
		return Window{}, fmt.Errorf("%w: negative length %d", ErrInvalidWindow, days)
	}
	if days > MaxWindowDays {
		return Window{}, fmt.Errorf("%w: %d days (max %d)", ErrWindowTooLong, days, MaxWindowDays)
	}

	return Window{From: start, To: start.AddDays(days)}, nil
}

func (w Window) Days() int {
	return w.From.DaysUntil(w.To)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From, w.To)
}

// Admits applies the month-slice membership policy to a single due date.
//
// A window inside one month admits days between the start and end day,
// both inclusive. A window crossing a month boundary admits the tail of the
// start month and the head of the end month; anything else is out.
func (w Window) Admits(d Date) bool {
	if w.From.SameMonth(w.To) {
		return d.Day() >= w.From.Day() && d.Day() <= w.To.Day()
	}
	if d.SameMonth(w.From) {
		return d.Day() >= w.From.Day() && d.Day() <= w.From.LastDayOfMonth()
	}
	if d.SameMonth(w.To) {
		return d.Day() <= w.To.Day()
	}

	return false
}

// AdmitsFirst decides membership for a whole expansion from its earliest
// date only. Later dates of a weekly bill share that verdict, so a weekly
// bill whose first date is out drops every later date with it.
func (w Window) AdmitsFirst(dates []Date) bool {
	if len(dates) == 0 {
		return false
	}
	return w.Admits(dates[0])
}

// InRange re-derives the due dates of occ's bill and reports whether the
// window admits the bill.
func InRange(w Window, occ Occurrence) (bool, error) {
	dates, err := Expand(occ.Bill.Recurrence, w.From, w.To)
	if err != nil {
		return false, err
	}
	return w.AdmitsFirst(dates), nil
}
