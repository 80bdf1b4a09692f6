package cmd

import (
	"encoding/json"
	"fmt"

	reportrender "github.com/bnema/bills-cli/internal/adapters/render/report"
	"github.com/bnema/bills-cli/internal/application"
	"github.com/bnema/bills-cli/internal/config"
	"github.com/bnema/bills-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the bills due in the reporting window",
		Long:  "report expands every recurring bill over a window starting at --year/--month/--day and lists what is unpaid, paid and deferred per owner, with totals per card.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, app, asJSON)
		},
	}

	flags := cmd.Flags()
	flags.Int("year", 0, "window start year")
	flags.Int("month", 0, "window start month (1-12)")
	flags.Int("day", 0, "window start day of month")
	flags.Int("days", domain.DefaultWindowDays, "window length in days")
	flags.String("owner", "", "only report bills of this owner (\"family\" for shared bills)")
	flags.Float64("income", 0, "take-home income compared against the total due")
	flags.Bool("today", false, "fill missing --year, --month or --day from today's date")
	flags.BoolVar(&asJSON, "json", false, "print the report as JSON")
	bindFlags(app.viper, flags, map[string]string{
		config.KeyYear:   "year",
		config.KeyMonth:  "month",
		config.KeyDay:    "day",
		config.KeyDays:   "days",
		config.KeyOwner:  "owner",
		config.KeyIncome: "income",
		config.KeyToday:  "today",
	})

	return cmd
}

func runReport(cmd *cobra.Command, app *app, asJSON bool) error {
	params := app.cfg.Report
	start, err := params.Start(domain.DateOf(app.clock.Now()))
	if err != nil {
		return err
	}

	svc, err := app.reportService()
	if err != nil {
		return err
	}

	report, err := svc.BuildReport(cmd.Context(), application.ReportQuery{
		Start: start,
		Days:  params.Days,
		Owner: params.Owner,
	})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	rendered, err := app.reportRenderer(report, reportrender.RenderOptions{Income: params.Income})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
