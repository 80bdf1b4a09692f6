package application

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/bills-cli/internal/domain"
	"github.com/bnema/bills-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

type ReportService struct {
	source ports.BillRecordSource
	clock  ports.Clock
}

func NewReportService(source ports.BillRecordSource, clock ports.Clock) *ReportService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ReportService{
		source: source,
		clock:  clock,
	}
}

// LoadBills reads every record from the source and validates it.
func (s *ReportService) LoadBills(ctx context.Context) (IntakeResult, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("load bill records: %w", err)
	}

	result := ParseRecords(records)
	for _, malformed := range result.Malformed {
		log.WithFields(log.Fields{
			"position": malformed.Position,
			"reasons":  malformed.Reasons,
		}).Warn("skipping malformed bill")
	}
	log.WithFields(log.Fields{
		"bills":     len(result.Bills),
		"malformed": len(result.Malformed),
	}).Debug("bills loaded")

	return result, nil
}

// BuildReport produces the window report for every owner selected by the
// query. The clock is read once, so every paid/unpaid decision of a run
// uses the same day.
func (s *ReportService) BuildReport(ctx context.Context, query ReportQuery) (Report, error) {
	window, err := domain.NewWindow(query.Start, query.Days)
	if err != nil {
		return Report{}, fmt.Errorf("build window: %w", err)
	}
	today := domain.DateOf(s.clock.Now())

	intake, err := s.LoadBills(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Window:    window,
		Today:     today,
		Owners:    make([]OwnerReport, 0),
		Malformed: intake.Malformed,
	}

	for _, group := range GroupByOwner(intake.Bills) {
		if !group.Owner.Matches(query.Owner) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		ownerReport, err := BuildOwnerReport(group.Owner, group.Bills, window, today)
		if err != nil {
			return Report{}, fmt.Errorf("build report for %s: %w", group.Owner.Label(), err)
		}
		for _, unsupported := range ownerReport.Unsupported {
			log.WithFields(log.Fields{
				"owner": group.Owner.Label(),
				"bill":  unsupported.Bill.Name,
				"kind":  unsupported.Bill.Recurrence.Kind,
			}).Warn("bill recurrence has no expansion rule")
		}

		report.Owners = append(report.Owners, ownerReport)
	}

	return report, nil
}

type candidate struct {
	occurrence domain.Occurrence
	admitted   bool
}

// BuildOwnerReport buckets the occurrences of one owner's bills. Each bill
// is expanded once; the earliest date of the expansion decides whether all
// of its occurrences are in the window. An occurrence due on or before today
// counts as paid.
func BuildOwnerReport(owner domain.OwnerID, bills []domain.Bill, window domain.Window, today domain.Date) (OwnerReport, error) {
	report := OwnerReport{
		Owner:  owner,
		ByCard: newCardGroups(),
	}

	candidates := make([]candidate, 0, len(bills))
	for _, bill := range bills {
		// significant bills never reach a bucket, not even the unsupported list
		if bill.IsSignificant {
			continue
		}

		dates, err := domain.Expand(bill.Recurrence, window.From, window.To)
		if errors.Is(err, domain.ErrUnsupportedRecurrence) {
			report.Unsupported = append(report.Unsupported, UnsupportedBill{Bill: bill, Reason: err.Error()})
			continue
		}
		if err != nil {
			return OwnerReport{}, fmt.Errorf("expand bill %q: %w", bill.Name, err)
		}

		admitted := window.AdmitsFirst(dates)
		for _, date := range dates {
			candidates = append(candidates, candidate{
				occurrence: domain.Occurrence{Bill: bill, DueDate: date},
				admitted:   admitted,
			})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.occurrence.DueDate.Compare(b.occurrence.DueDate)
	})

	for _, c := range candidates {
		if !c.admitted {
			continue
		}
		if err := report.add(c.occurrence, today); err != nil {
			return OwnerReport{}, err
		}
	}

	return report, nil
}

func (r *OwnerReport) add(occ domain.Occurrence, today domain.Date) error {
	amount := occ.Bill.AmountDue
	r.Totals.Absolute += amount

	if occ.Bill.IsDeferred() {
		r.Deferred = append(r.Deferred, occ)
		r.Totals.Deferred += amount
		return nil
	}

	group, err := r.cardGroup(occ.Bill.CardSource)
	if err != nil {
		return fmt.Errorf("bucket bill %q: %w", occ.Bill.Name, err)
	}
	group.Occurrences = append(group.Occurrences, occ)
	group.Total += amount
	r.Totals.Due += amount

	if occ.Bill.IsPaid || !occ.DueDate.After(today) {
		r.Paid = append(r.Paid, occ)
		r.Totals.Paid += amount
		return nil
	}

	r.Unpaid = append(r.Unpaid, occ)
	return nil
}

func (r *OwnerReport) cardGroup(card domain.CardSource) (*CardGroup, error) {
	for i := range r.ByCard {
		if r.ByCard[i].Card == card {
			return &r.ByCard[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCardSource, card)
}

func newCardGroups() []CardGroup {
	sources := domain.CardSources()
	groups := make([]CardGroup, 0, len(sources))
	for _, card := range sources {
		groups = append(groups, CardGroup{Card: card})
	}
	return groups
}
