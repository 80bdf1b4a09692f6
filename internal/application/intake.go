package application

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/bnema/bills-cli/internal/domain"
	"github.com/bnema/bills-cli/internal/ports"
	"github.com/go-playground/validator/v10"
)

// MalformedRecord is a raw record rejected during intake, kept verbatim so
// it can be shown back to the operator.
type MalformedRecord struct {
	Position int
	Record   any
	Reasons  []string
}

type IntakeResult struct {
	Bills     []domain.Bill
	Malformed []MalformedRecord
}

// OwnerBills is the bill list of one owner, in input order.
type OwnerBills struct {
	Owner domain.OwnerID
	Bills []domain.Bill
}

// billRecord holds the typed fields of a record once every raw value passed
// its type check. Tags cover the checks that go beyond the type.
type billRecord struct {
	Name           string `json:"name" validate:"required"`
	RecurrenceKind string `json:"dueDate.type" validate:"recurrence_kind"`
	CardSource     string `json:"cardSource" validate:"card_source"`
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("recurrence_kind", func(fl validator.FieldLevel) bool {
		return domain.RecurrenceKind(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("card_source", func(fl validator.FieldLevel) bool {
		return domain.CardSource(fl.Field().String()).Valid()
	})
	return v
}

// ParseRecords validates raw records into bills. A record that fails any
// check lands in Malformed with every reason found; its siblings are
// unaffected.
func ParseRecords(records []ports.RawRecord) IntakeResult {
	result := IntakeResult{
		Bills: make([]domain.Bill, 0, len(records)),
	}

	for _, record := range records {
		bill, reasons := parseRecord(record.Value)
		if len(reasons) > 0 {
			result.Malformed = append(result.Malformed, MalformedRecord{
				Position: record.Position,
				Record:   record.Value,
				Reasons:  reasons,
			})
			continue
		}
		result.Bills = append(result.Bills, bill)
	}

	return result
}

// GroupByOwner partitions bills by owner, owners in order of first appearance.
func GroupByOwner(bills []domain.Bill) []OwnerBills {
	groups := make([]OwnerBills, 0)
	index := make(map[domain.OwnerID]int)

	for _, bill := range bills {
		i, ok := index[bill.Owner]
		if !ok {
			i = len(groups)
			index[bill.Owner] = i
			groups = append(groups, OwnerBills{Owner: bill.Owner})
		}
		groups[i].Bills = append(groups[i].Bills, bill)
	}

	return groups
}

func parseRecord(value any) (domain.Bill, []string) {
	fields, ok := value.(map[string]any)
	if !ok {
		return domain.Bill{}, []string{fmt.Sprintf("record: expected object, got %s", typeName(value))}
	}

	r := recordReader{fields: fields}
	owner := r.nullableString("owner")
	name := r.string("name")
	amountDue := r.number("amountDue")
	dueDayOfMonth := r.integer("dueDayOfMonth")
	recurrence := r.recurrence("dueDate")
	isSignificant := r.boolean("isSignificant")
	reasonForDeferment := r.nullableString("reasonForDeferment")
	comment := r.nullableString("comment")
	amountDueCanVary := r.boolean("amountDueCanVary")
	isPaid := r.boolean("isPaid")
	cardSource := r.string("cardSource")

	if err := recordValidator.Struct(billRecord{
		Name:           name,
		RecurrenceKind: string(recurrence.Kind),
		CardSource:     cardSource,
	}); err != nil {
		r.addValidationErrors(err)
	}

	if len(r.problems) == 0 {
		if err := recurrence.Validate(); err != nil {
			r.problems = append(r.problems, fmt.Sprintf("dueDate.date: %v", err))
		}
	}

	if len(r.problems) > 0 {
		return domain.Bill{}, r.problems
	}

	return domain.Bill{
		Owner:              domain.OwnerID(owner),
		Name:               name,
		AmountDue:          amountDue,
		DueDayOfMonth:      dueDayOfMonth,
		Recurrence:         recurrence,
		IsSignificant:      isSignificant,
		ReasonForDeferment: reasonForDeferment,
		Comment:            comment,
		AmountDueCanVary:   amountDueCanVary,
		IsPaid:             isPaid,
		CardSource:         domain.CardSource(cardSource),
	}, nil
}

// recordReader pulls typed values out of a decoded record and collects a
// problem for each field that is absent or of the wrong type. A missing
// field yields the zero value so reading can continue.
type recordReader struct {
	fields   map[string]any
	prefix   string
	problems []string
}

func (r *recordReader) lookup(key string) (any, bool) {
	value, ok := r.fields[key]
	if !ok {
		r.problemf(key, "missing")
	}
	return value, ok
}

func (r *recordReader) problemf(key, format string, args ...any) {
	r.problems = append(r.problems, r.prefix+key+": "+fmt.Sprintf(format, args...))
}

func (r *recordReader) string(key string) string {
	value, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		r.problemf(key, "expected string, got %s", typeName(value))
	}
	return s
}

// nullableString accepts a string or null; the key itself must be present.
func (r *recordReader) nullableString(key string) string {
	value, ok := r.lookup(key)
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		r.problemf(key, "expected string or null, got %s", typeName(value))
	}
	return s
}

func (r *recordReader) boolean(key string) bool {
	value, ok := r.lookup(key)
	if !ok {
		return false
	}
	b, ok := value.(bool)
	if !ok {
		r.problemf(key, "expected boolean, got %s", typeName(value))
	}
	return b
}

func (r *recordReader) number(key string) float64 {
	value, ok := r.lookup(key)
	if !ok {
		return 0
	}
	n, ok := toFloat(value)
	if !ok {
		r.problemf(key, "expected number, got %s", typeName(value))
	}
	return n
}

func (r *recordReader) integer(key string) int {
	value, ok := r.lookup(key)
	if !ok {
		return 0
	}
	n, ok := toFloat(value)
	if !ok {
		r.problemf(key, "expected number, got %s", typeName(value))
		return 0
	}
	if n != math.Trunc(n) {
		r.problemf(key, "expected whole number, got %v", n)
		return 0
	}
	return int(n)
}

func (r *recordReader) recurrence(key string) domain.Recurrence {
	value, ok := r.lookup(key)
	if !ok {
		return domain.Recurrence{}
	}
	fields, ok := value.(map[string]any)
	if !ok {
		r.problemf(key, "expected object, got %s", typeName(value))
		return domain.Recurrence{}
	}

	nested := recordReader{fields: fields, prefix: r.prefix + key + "."}
	recurrence := domain.Recurrence{
		Day:  nested.integer("date"),
		Kind: domain.RecurrenceKind(nested.string("type")),
	}
	r.problems = append(r.problems, nested.problems...)

	return recurrence
}

func (r *recordReader) addValidationErrors(err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		r.problems = append(r.problems, err.Error())
		return
	}

	for _, fieldErr := range validationErrors {
		key := fieldErr.Field()
		// type problems were already reported for this key
		if r.hasProblem(key) {
			continue
		}
		switch fieldErr.Tag() {
		case "required":
			r.problems = append(r.problems, key+": must not be empty")
		default:
			r.problems = append(r.problems, fmt.Sprintf("%s: unknown value %q", key, fieldErr.Value()))
		}
	}
}

// hasProblem reports whether key, or the object holding it, already has a problem.
func (r *recordReader) hasProblem(key string) bool {
	parent, _, nested := strings.Cut(key, ".")
	for _, problem := range r.problems {
		if strings.HasPrefix(problem, key+": ") {
			return true
		}
		if nested && strings.HasPrefix(problem, parent+": ") {
			return true
		}
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(value); ok {
		return "number"
	}
	return fmt.Sprintf("%T", value)
}
