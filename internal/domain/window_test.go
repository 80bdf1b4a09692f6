package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	start := NewDate(2026, time.January, 28)

	w, err := NewWindow(start, DefaultWindowDays)
	require.NoError(t, err)
	assert.Equal(t, start, w.From)
	assert.Equal(t, NewDate(2026, time.February, 10), w.To)
	assert.Equal(t, DefaultWindowDays, w.Days())
}

func TestNewWindowRejectsBadInput(t *testing.T) {
	start := NewDate(2026, time.January, 1)

	_, err := NewWindow(Date{}, 13)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(start, -1)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(start, MaxWindowDays+1)
	assert.ErrorIs(t, err, ErrWindowTooLong)
}

func TestWindowAdmits(t *testing.T) {
	sameMonth := Window{From: NewDate(2026, time.January, 10), To: NewDate(2026, time.January, 22)}
	crossing := Window{From: NewDate(2026, time.January, 28), To: NewDate(2026, time.February, 9)}

	tests := []struct {
		name   string
		window Window
		date   Date
		want   bool
	}{
		{name: "same month inside", window: sameMonth, date: NewDate(2026, time.January, 15), want: true},
		{name: "same month start day", window: sameMonth, date: NewDate(2026, time.January, 10), want: true},
		{name: "same month end day is inclusive", window: sameMonth, date: NewDate(2026, time.January, 22), want: true},
		{name: "same month before start", window: sameMonth, date: NewDate(2026, time.January, 9), want: false},
		{name: "same month after end", window: sameMonth, date: NewDate(2026, time.January, 23), want: false},
		{name: "crossing start month tail", window: crossing, date: NewDate(2026, time.January, 31), want: true},
		{name: "crossing start month before start", window: crossing, date: NewDate(2026, time.January, 27), want: false},
		{name: "crossing end month head", window: crossing, date: NewDate(2026, time.February, 5), want: true},
		{name: "crossing end day inclusive", window: crossing, date: NewDate(2026, time.February, 9), want: true},
		{name: "crossing end month after end", window: crossing, date: NewDate(2026, time.February, 10), want: false},
		{name: "crossing other month", window: crossing, date: NewDate(2026, time.March, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Admits(tt.date))
		})
	}
}

func TestWindowAdmitsFirstOnlyLooksAtEarliestDate(t *testing.T) {
	w := Window{From: NewDate(2026, time.January, 10), To: NewDate(2026, time.January, 22)}

	assert.False(t, w.AdmitsFirst(nil))
	assert.True(t, w.AdmitsFirst([]Date{NewDate(2026, time.January, 12), NewDate(2026, time.March, 1)}))
	assert.False(t, w.AdmitsFirst([]Date{NewDate(2026, time.January, 2), NewDate(2026, time.January, 12)}))
}

func TestInRangeMonthly(t *testing.T) {
	bill := Bill{Name: "Internet", Recurrence: Recurrence{Day: 15, Kind: RecurrenceMonthly}}

	early, err := NewWindow(NewDate(2026, time.January, 1), 12)
	require.NoError(t, err)
	ok, err := InRange(early, Occurrence{Bill: bill})
	require.NoError(t, err)
	assert.False(t, ok)

	mid, err := NewWindow(NewDate(2026, time.January, 10), 12)
	require.NoError(t, err)
	ok, err = InRange(mid, Occurrence{Bill: bill})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInRangeMonthlyCrossingBoundary(t *testing.T) {
	bill := Bill{Name: "Phone", Recurrence: Recurrence{Day: 5, Kind: RecurrenceMonthly}}
	w := Window{From: NewDate(2026, time.January, 28), To: NewDate(2026, time.February, 9)}

	ok, err := InRange(w, Occurrence{Bill: bill, DueDate: NewDate(2026, time.February, 5)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInRangeWithoutOccurrences(t *testing.T) {
	bill := Bill{Name: "Lunch", Recurrence: Recurrence{Day: int(time.Friday), Kind: RecurrenceWeekly}}
	day := NewDate(2026, time.January, 5)

	ok, err := InRange(Window{From: day, To: day}, Occurrence{Bill: bill})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInRangeSurfacesUnsupportedRecurrence(t *testing.T) {
	bill := Bill{Name: "Insurance", Recurrence: Recurrence{Day: 1, Kind: RecurrenceYearly}}
	w, err := NewWindow(NewDate(2026, time.January, 1), 13)
	require.NoError(t, err)

	_, err = InRange(w, Occurrence{Bill: bill})
	assert.ErrorIs(t, err, ErrUnsupportedRecurrence)
}
