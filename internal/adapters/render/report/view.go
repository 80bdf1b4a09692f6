package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/bills-cli/internal/application"
	"github.com/bnema/bills-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dueDateLayout = "Mon Jan 02 2006"

type RenderOptions struct {
	// Income enables the take-home line when positive.
	Income float64
}

type view struct {
	opts    RenderOptions
	s       styles
	printer *message.Printer
}

func renderView(report application.Report, opts RenderOptions, s styles) string {
	v := view{opts: opts, s: s, printer: message.NewPrinter(language.English)}

	lines := []string{
		s.title.Render("Bills due"),
		s.header.Render(fmt.Sprintf("window: %s to %s (%d days)",
			report.Window.From.Format(dueDateLayout),
			report.Window.To.Format(dueDateLayout),
			report.Window.Days(),
		)),
		s.header.Render(fmt.Sprintf("owners: %d", len(report.Owners))),
	}

	if len(report.Owners) == 0 {
		lines = append(lines, s.empty.Render("No bills for this window."))
	}

	for _, owner := range report.Owners {
		lines = append(lines, s.section.Render(v.owner(owner, report.Window)))
	}

	if len(report.Malformed) > 0 {
		lines = append(lines, s.section.Render(v.malformed(report.Malformed)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v view) owner(report application.OwnerReport, window domain.Window) string {
	parts := []string{
		v.s.owner.Render("OWNER: " + report.Owner.Label()),
		v.s.heading.Render("Overview"),
	}

	if len(report.Unpaid)+len(report.Paid)+len(report.Deferred)+len(report.Unsupported) == 0 {
		parts = append(parts, v.s.empty.Render("  nothing due"))
	}

	for _, occ := range report.Unpaid {
		parts = append(parts,
			v.s.bill.Render(occ.Bill.Name),
			v.s.detail.Render("Amount:  "+v.amountOf(occ.Bill)),
			v.s.detail.Render("Due:     "+occ.DueDate.Format(dueDateLayout)),
			v.s.detail.Render("Comment: "+occ.Bill.Comment),
			v.s.detail.Render("Card:    "+occ.Bill.CardSource.Label()),
		)
	}

	for _, occ := range report.Paid {
		parts = append(parts,
			v.s.paid.Render("PAID: "+occ.Bill.Name),
			v.s.detail.Render("Amount:  "+v.amountOf(occ.Bill)),
			v.s.detail.Render("Due:     "+occ.DueDate.Format(dueDateLayout)),
			v.s.detail.Render("Card:    "+occ.Bill.CardSource.Label()),
		)
		if occ.Bill.Comment != "" {
			parts = append(parts, v.s.detail.Render("Comment: "+occ.Bill.Comment))
		}
	}

	for _, occ := range report.Deferred {
		parts = append(parts,
			v.s.deferred.Render("DEFERRED: "+occ.Bill.Name),
			v.s.detail.Render("Reason:  "+occ.Bill.ReasonForDeferment),
		)
	}

	for _, unsupported := range report.Unsupported {
		parts = append(parts,
			v.s.warning.Render("UNSUPPORTED: "+unsupported.Bill.Name),
			v.s.detail.Render("Reason:  "+unsupported.Reason),
		)
	}

	parts = append(parts, v.s.section.Render(v.byCard(report.ByCard)))
	parts = append(parts, v.s.section.Render(v.totals(report.Totals, window)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v view) byCard(groups []application.CardGroup) string {
	parts := []string{v.s.heading.Render("By card")}
	for _, group := range groups {
		parts = append(parts, v.s.card.Render(fmt.Sprintf("%s: %s", group.Card.Label(), v.amount(group.Total))))
		for _, occ := range group.Occurrences {
			parts = append(parts, v.s.detail.Render(occ.Bill.Name))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v view) totals(totals application.Totals, window domain.Window) string {
	parts := []string{
		v.s.heading.Render("Total amount due"),
		v.s.total.Render("from: " + window.From.Format(dueDateLayout)),
		v.s.total.Render("to:   " + window.To.Format(dueDateLayout)),
		v.s.total.Render(fmt.Sprintf("Due of total: %s of %s", v.amount(totals.Outstanding()), v.amount(totals.Due))),
		v.s.total.Render("Paid: " + v.amount(totals.Paid)),
		v.s.total.Render("Deferred: " + v.amount(totals.Deferred)),
		v.s.total.Render("Absolute total: " + v.amount(totals.Absolute)),
	}
	if v.opts.Income > 0 {
		parts = append(parts, v.s.total.Render("Take home: "+v.amount(v.opts.Income-totals.Due)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v view) malformed(records []application.MalformedRecord) string {
	parts := []string{v.s.warning.Render(fmt.Sprintf("Malformed bills found: %d", len(records)))}
	for _, record := range records {
		parts = append(parts, v.s.bill.Render(fmt.Sprintf("#%d: %s", record.Position, strings.Join(record.Reasons, "; "))))
		parts = append(parts, v.s.raw.Render(rawJSON(record.Record)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v view) amountOf(bill domain.Bill) string {
	if bill.AmountDueCanVary {
		return "~" + v.amount(bill.AmountDue)
	}
	return v.amount(bill.AmountDue)
}

func (v view) amount(value float64) string {
	return v.printer.Sprintf("%.2f", value)
}

func rawJSON(value any) string {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}
