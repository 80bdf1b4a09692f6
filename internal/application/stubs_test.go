package application

import (
	"context"
	"time"

	"github.com/bnema/bills-cli/internal/ports"
)

type stubRecordSource struct {
	records []ports.RawRecord
	err     error
	calls   int
}

func (s *stubRecordSource) Records(_ context.Context) ([]ports.RawRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func billFields(overrides map[string]any) map[string]any {
	fields := map[string]any{
		"owner":              nil,
		"name":               "Rent",
		"amountDue":          1500.0,
		"dueDayOfMonth":      1.0,
		"dueDate":            map[string]any{"date": 1.0, "type": "MONTHLY"},
		"isSignificant":      false,
		"reasonForDeferment": nil,
		"comment":            nil,
		"amountDueCanVary":   false,
		"isPaid":             false,
		"cardSource":         "DEBIT",
	}
	for key, value := range overrides {
		if value == nil {
			fields[key] = nil
			continue
		}
		if value == missing {
			delete(fields, key)
			continue
		}
		fields[key] = value
	}
	return fields
}

type missingField struct{}

var missing = missingField{}

func records(values ...any) []ports.RawRecord {
	out := make([]ports.RawRecord, 0, len(values))
	for i, value := range values {
		out = append(out, ports.RawRecord{Position: i, Value: value})
	}
	return out
}
