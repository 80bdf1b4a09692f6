package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2024, time.February, 29))
	assert.False(t, ValidDate(2026, time.February, 29))
	assert.False(t, ValidDate(2026, time.April, 31))
	assert.False(t, ValidDate(2026, time.Month(13), 1))
	assert.False(t, ValidDate(2026, time.January, 0))
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 28)

	assert.Equal(t, NewDate(2026, time.February, 10), d.AddDays(13))
	assert.Equal(t, 13, d.DaysUntil(d.AddDays(13)))
	assert.Equal(t, -3, d.DaysUntil(d.AddDays(-3)))
	assert.Equal(t, 31, d.LastDayOfMonth())
	assert.True(t, d.SameMonth(NewDate(2026, time.January, 1)))
	assert.False(t, d.SameMonth(NewDate(2027, time.January, 28)))
}

func TestDateOfDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	got := DateOf(time.Date(2026, time.March, 8, 23, 30, 0, 0, loc))

	assert.Equal(t, NewDate(2026, time.March, 8), got)
}

func TestDateTextRoundTrip(t *testing.T) {
	d := NewDate(2026, time.July, 4)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2026-07-04", string(text))

	var parsed Date
	require.NoError(t, parsed.UnmarshalText(text))
	assert.Equal(t, d, parsed)

	_, err = ParseDate("04/07/2026")
	assert.Error(t, err)
}

func TestOwnerLabelAndMatch(t *testing.T) {
	assert.Equal(t, "Family", SharedOwner.Label())
	assert.Equal(t, "alex", OwnerID("alex").Label())

	assert.True(t, SharedOwner.Matches("family"))
	assert.True(t, SharedOwner.Matches(""))
	assert.True(t, OwnerID("Alex").Matches("alex"))
	assert.False(t, OwnerID("alex").Matches("sam"))
	assert.False(t, SharedOwner.Matches("alex"))
}

func TestCardSources(t *testing.T) {
	sources := CardSources()
	require.Len(t, sources, 4)
	assert.Equal(t, CardSourceAmex, sources[0])
	assert.Equal(t, CardSourceDebit, sources[3])

	for _, source := range sources {
		assert.True(t, source.Valid(), source)
	}
	assert.False(t, CardSource("VISA").Valid())
	assert.Equal(t, "Apple Card", CardSourceAppleCard.Label())
	assert.Equal(t, "VISA", CardSource("VISA").Label())
}

func TestBillIsDeferred(t *testing.T) {
	assert.False(t, Bill{}.IsDeferred())
	assert.True(t, Bill{ReasonForDeferment: "paid next cycle"}.IsDeferred())
}
