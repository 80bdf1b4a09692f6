package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(wireApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bills",
		Short:         "Bills due: see what to pay in the coming days",
		Long:          "bills reads your recurring bills and reports which fall due in a rolling window, split into unpaid, paid and deferred, with totals per card.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.prepare(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("bills", "", "bill data file (.json or .toml); defaults to ~/.bills/bills.json")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	bindFlags(app.viper, flags, map[string]string{
		keyBillsPath: "bills",
		keyLogLevel:  "log-level",
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newReportCmd(app),
		newListCmd(app),
		newMalformedCmd(app),
	)

	return rootCmd
}
