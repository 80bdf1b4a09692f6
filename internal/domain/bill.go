package domain

import "strings"

// OwnerID identifies who a bill belongs to. SharedOwner marks bills that
// belong to the whole household.
type OwnerID string

const SharedOwner OwnerID = ""

const sharedOwnerLabel = "Family"

func (o OwnerID) IsShared() bool {
	return o == SharedOwner
}

func (o OwnerID) Label() string {
	if o.IsShared() {
		return sharedOwnerLabel
	}
	return string(o)
}

// Matches reports whether an owner filter selects o. The filter is
// compared case-insensitively against both the raw id and the label, so
// "family" selects shared bills.
func (o OwnerID) Matches(filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.EqualFold(filter, string(o)) || strings.EqualFold(filter, o.Label())
}

type CardSource string

const (
	CardSourceDebit          CardSource = "DEBIT"
	CardSourceAmex           CardSource = "AMEX"
	CardSourceAppleCard      CardSource = "APPLE_CARD"
	CardSourceCapitalOneCard CardSource = "CAPITAL_ONE_CARD"
)

// CardSources lists every card source in report order.
func CardSources() []CardSource {
	return []CardSource{
		CardSourceAmex,
		CardSourceAppleCard,
		CardSourceCapitalOneCard,
		CardSourceDebit,
	}
}

func (c CardSource) Valid() bool {
	switch c {
	case CardSourceDebit, CardSourceAmex, CardSourceAppleCard, CardSourceCapitalOneCard:
		return true
	default:
		return false
	}
}

func (c CardSource) Label() string {
	switch c {
	case CardSourceDebit:
		return "Debit"
	case CardSourceAmex:
		return "Amex"
	case CardSourceAppleCard:
		return "Apple Card"
	case CardSourceCapitalOneCard:
		return "Capital One"
	default:
		return string(c)
	}
}

// Bill is one recurring obligation. Bills are read-only input for a report
// run; everything derived from them lives in Occurrence.
type Bill struct {
	Owner              OwnerID
	Name               string
	AmountDue          float64
	DueDayOfMonth      int
	Recurrence         Recurrence
	IsSignificant      bool
	ReasonForDeferment string
	Comment            string
	AmountDueCanVary   bool
	IsPaid             bool
	CardSource         CardSource
}

func (b Bill) IsDeferred() bool {
	return b.ReasonForDeferment != ""
}

// Occurrence pins a bill to one concrete due date.
type Occurrence struct {
	Bill    Bill
	DueDate Date
}
