package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newMalformedCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "malformed",
		Short: "Print the bill records that failed validation",
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

			if len(intake.Malformed) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no malformed bills")
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(intake.Malformed)
		},
	}
}
