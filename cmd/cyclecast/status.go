package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclecast/internal/api"
	"github.com/terraincognita07/cyclecast/internal/cli"
)

const defaultCycleWindowDays = 90

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var email, date string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Classify one day for an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(opts, func(svc *api.Services) error {
				ctx := cmd.Context()
				user, err := lookupUser(ctx, svc, email)
				if err != nil {
					return err
				}

				day := svc.Cycles.Today()
				if date != "" {
					if day, err = parseDayFlag("--date", date); err != nil {
						return err
					}
				}

				status, err := svc.Cycles.Status(ctx, user.ID, day)
				if err != nil {
					return err
				}
				cli.PrintStatus(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCyclesCmd(opts *rootOptions) *cobra.Command {
	var email, from, to string

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List recorded and predicted cycles in a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(opts, func(svc *api.Services) error {
				ctx := cmd.Context()
				user, err := lookupUser(ctx, svc, email)
				if err != nil {
					return err
				}

				today := svc.Cycles.Today()
				start, end := today.AddDays(-defaultCycleWindowDays), today.AddDays(defaultCycleWindowDays)
				if from != "" {
					if start, err = parseDayFlag("--from", from); err != nil {
						return err
					}
				}
				if to != "" {
					if end, err = parseDayFlag("--to", to); err != nil {
						return err
					}
				}
				if start.After(end) {
					return fmt.Errorf("--from %s is after --to %s", start, end)
				}

				cycles, err := svc.Cycles.Cycles(ctx, user.ID, start, end)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Range: %s to %s\n\n", start, end)
				cli.PrintCycles(cmd.OutOrStdout(), cycles)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&from, "from", "", "Range start YYYY-MM-DD (default 90 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Range end YYYY-MM-DD (default 90 days ahead)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
