package main

import "github.com/spf13/cobra"

type rootOptions struct {
	dbPath string
	today  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cyclecast",
		Short:         "cyclecast predicts menstrual cycles from recorded periods",
		Long:          "cyclecast serves a cycle prediction API and answers status and forecast questions from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to SQLite database (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&opts.today, "today", "", "Evaluate as of this day, YYYY-MM-DD (default current date)")

	root.AddCommand(
		newServeCmd(opts),
		newStatusCmd(opts),
		newCyclesCmd(opts),
		newResetPasswordCmd(opts),
		newCreateUserCmd(opts),
	)
	return root
}
