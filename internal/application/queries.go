package application

import "github.com/bnema/bills-cli/internal/domain"

type ReportQuery struct {
	Start domain.Date
	Days  int
	Owner string
}

type Totals struct {
	Absolute float64
	Due      float64
	Paid     float64
	Deferred float64
}

// Outstanding is the part of the due total not paid yet.
func (t Totals) Outstanding() float64 {
	return t.Due - t.Paid
}

type CardGroup struct {
	Card        domain.CardSource
	Occurrences []domain.Occurrence
	Total       float64
}

// UnsupportedBill is a bill whose recurrence has no expansion rule. It is
// listed so the operator sees it, and counts towards no total.
type UnsupportedBill struct {
	Bill   domain.Bill
	Reason string
}

type OwnerReport struct {
	Owner       domain.OwnerID
	Unpaid      []domain.Occurrence
	Paid        []domain.Occurrence
	Deferred    []domain.Occurrence
	ByCard      []CardGroup
	Unsupported []UnsupportedBill
	Totals      Totals
}

type Report struct {
	Window    domain.Window
	Today     domain.Date
	Owners    []OwnerReport
	Malformed []MalformedRecord
}
