package application

import (
	"encoding/json"
	"testing"

	"github.com/bnema/bills-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsValidBill(t *testing.T) {
	result := ParseRecords(records(billFields(map[string]any{
		"owner":              "alex",
		"comment":            "autopay",
		"reasonForDeferment": "next paycheck",
		"amountDueCanVary":   true,
		"dueDate":            map[string]any{"date": int64(3), "type": "WEEKLY"},
		"cardSource":         "AMEX",
	})))

	require.Empty(t, result.Malformed)
	require.Len(t, result.Bills, 1)
	assert.Equal(t, domain.Bill{
		Owner:              "alex",
		Name:               "Rent",
		AmountDue:          1500,
		DueDayOfMonth:      1,
		Recurrence:         domain.Recurrence{Day: 3, Kind: domain.RecurrenceWeekly},
		ReasonForDeferment: "next paycheck",
		Comment:            "autopay",
		AmountDueCanVary:   true,
		CardSource:         domain.CardSourceAmex,
	}, result.Bills[0])
}

func TestParseRecordsNullOwnerIsShared(t *testing.T) {
	result := ParseRecords(records(billFields(nil)))

	require.Len(t, result.Bills, 1)
	assert.True(t, result.Bills[0].Owner.IsShared())
}

func TestParseRecordsAcceptsJSONNumbers(t *testing.T) {
	result := ParseRecords(records(billFields(map[string]any{
		"amountDue": json.Number("12.50"),
		"dueDate":   map[string]any{"date": json.Number("15"), "type": "MONTHLY"},
	})))

	require.Empty(t, result.Malformed)
	assert.InDelta(t, 12.5, result.Bills[0].AmountDue, 0.0001)
	assert.Equal(t, 15, result.Bills[0].Recurrence.Day)
}

func TestParseRecordsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		wantReason string
	}{
		{name: "not an object", value: 42.0, wantReason: "record: expected object, got number"},
		{name: "owner absent", value: billFields(map[string]any{"owner": missing}), wantReason: "owner: missing"},
		{name: "owner wrong type", value: billFields(map[string]any{"owner": 7.0}), wantReason: "owner: expected string or null, got number"},
		{name: "empty name", value: billFields(map[string]any{"name": ""}), wantReason: "name: must not be empty"},
		{name: "amount as string", value: billFields(map[string]any{"amountDue": "12"}), wantReason: "amountDue: expected number, got string"},
		{name: "due day of month absent", value: billFields(map[string]any{"dueDayOfMonth": missing}), wantReason: "dueDayOfMonth: missing"},
		{name: "due date not object", value: billFields(map[string]any{"dueDate": "monthly"}), wantReason: "dueDate: expected object, got string"},
		{name: "due date day not number", value: billFields(map[string]any{"dueDate": map[string]any{"date": "1", "type": "MONTHLY"}}), wantReason: "dueDate.date: expected number, got string"},
		{name: "due date fractional day", value: billFields(map[string]any{"dueDate": map[string]any{"date": 1.5, "type": "MONTHLY"}}), wantReason: "dueDate.date: expected whole number, got 1.5"},
		{name: "unknown recurrence kind", value: billFields(map[string]any{"dueDate": map[string]any{"date": 1.0, "type": "HOURLY"}}), wantReason: `dueDate.type: unknown value "HOURLY"`},
		{name: "weekday out of range", value: billFields(map[string]any{"dueDate": map[string]any{"date": 9.0, "type": "WEEKLY"}}), wantReason: "dueDate.date: invalid recurrence day value: day of week 9 outside 0-6"},
		{name: "significant not boolean", value: billFields(map[string]any{"isSignificant": "no"}), wantReason: "isSignificant: expected boolean, got string"},
		{name: "deferment absent", value: billFields(map[string]any{"reasonForDeferment": missing}), wantReason: "reasonForDeferment: missing"},
		{name: "comment absent", value: billFields(map[string]any{"comment": missing}), wantReason: "comment: missing"},
		{name: "vary not boolean", value: billFields(map[string]any{"amountDueCanVary": 1.0}), wantReason: "amountDueCanVary: expected boolean, got number"},
		{name: "paid null", value: billFields(map[string]any{"isPaid": nil}), wantReason: "isPaid: expected boolean, got null"},
		{name: "card source absent", value: billFields(map[string]any{"cardSource": missing}), wantReason: "cardSource: missing"},
		{name: "card source unknown", value: billFields(map[string]any{"cardSource": "VISA"}), wantReason: `cardSource: unknown value "VISA"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRecords(records(tt.value))

			assert.Empty(t, result.Bills)
			require.Len(t, result.Malformed, 1)
			assert.Contains(t, result.Malformed[0].Reasons, tt.wantReason)
			assert.Equal(t, tt.value, result.Malformed[0].Record)
		})
	}
}

func TestParseRecordsReportsEachProblemOnce(t *testing.T) {
	result := ParseRecords(records(billFields(map[string]any{
		"name":       missing,
		"cardSource": 3.0,
		"dueDate":    missing,
	})))

	require.Len(t, result.Malformed, 1)
	assert.ElementsMatch(t, []string{
		"name: missing",
		"dueDate: missing",
		"cardSource: expected string, got number",
	}, result.Malformed[0].Reasons)
}

func TestParseRecordsIsolatesMalformedSiblings(t *testing.T) {
	result := ParseRecords(records(
		billFields(map[string]any{"name": "Rent"}),
		billFields(map[string]any{"name": "Phone", "cardSource": missing}),
		billFields(map[string]any{"name": "Water"}),
	))

	require.Len(t, result.Bills, 2)
	assert.Equal(t, "Rent", result.Bills[0].Name)
	assert.Equal(t, "Water", result.Bills[1].Name)
	require.Len(t, result.Malformed, 1)
	assert.Equal(t, 1, result.Malformed[0].Position)
}

func TestParseRecordsKeepsUnsupportedKinds(t *testing.T) {
	result := ParseRecords(records(billFields(map[string]any{
		"dueDate": map[string]any{"date": 1.0, "type": "YEARLY"},
	})))

	require.Empty(t, result.Malformed)
	assert.Equal(t, domain.RecurrenceYearly, result.Bills[0].Recurrence.Kind)
}

func TestGroupByOwnerKeepsFirstAppearanceOrder(t *testing.T) {
	bills := []domain.Bill{
		{Owner: "sam", Name: "Gym"},
		{Owner: domain.SharedOwner, Name: "Rent"},
		{Owner: "sam", Name: "Phone"},
		{Owner: "alex", Name: "Car"},
	}

	groups := GroupByOwner(bills)

	require.Len(t, groups, 3)
	assert.Equal(t, domain.OwnerID("sam"), groups[0].Owner)
	assert.Equal(t, []domain.Bill{bills[0], bills[2]}, groups[0].Bills)
	assert.True(t, groups[1].Owner.IsShared())
	assert.Equal(t, domain.OwnerID("alex"), groups[2].Owner)
}
