package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/bills-cli/internal/application"
	"github.com/bnema/bills-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the valid bills grouped by owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.reportService()
			if err != nil {
				return err
			}

			intake, err := svc.LoadBills(cmd.Context())
			if err != nil {
				return err
			}

			owner := app.cfg.Report.Owner
			for _, group := range application.GroupByOwner(intake.Bills) {
				if !group.Owner.Matches(owner) {
					continue
				}
				for _, bill := range group.Bills {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
						group.Owner.Label(),
						bill.Name,
						strconv.FormatFloat(bill.AmountDue, 'f', 2, 64),
						describeRecurrence(bill.Recurrence),
						bill.CardSource.Label(),
					)
				}
			}

			return nil
		},
	}
}

func describeRecurrence(rec domain.Recurrence) string {
	switch rec.Kind {
	case domain.RecurrenceMonthly:
		return fmt.Sprintf("monthly on day %d", rec.Day)
	case domain.RecurrenceWeekly:
		return fmt.Sprintf("weekly on %s", weekdayName(rec.Day))
	case domain.RecurrenceBiWeekly:
		return fmt.Sprintf("every other %s", weekdayName(rec.Day))
	default:
		return string(rec.Kind)
	}
}

func weekdayName(day int) string {
	if day < 0 || day > 6 {
		return strconv.Itoa(day)
	}
	return time.Weekday(day).String()
}
