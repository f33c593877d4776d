package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclecast/internal/api"
	"github.com/terraincognita07/cyclecast/internal/cli"
	"github.com/terraincognita07/cyclecast/internal/models"
)

func newResetPasswordCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Issue a temporary password that must be changed on next login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(opts, func(svc *api.Services) error {
				return cli.RunResetPassword(cmd.Context(), svc.Auth, email, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCreateUserCmd(opts *rootOptions) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an owner or read-only partner account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			readPassword := passwordReaderFor(cmd)
			return withServices(opts, func(svc *api.Services) error {
				return cli.RunCreateUser(cmd.Context(), svc.Auth, email, role, readPassword, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&role, "role", models.RoleOwner, "Account role: owner or partner")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// passwordReaderFor is swapped in tests; the default prompts with echo off.
var passwordReaderFor = func(cmd *cobra.Command) cli.PasswordReader {
	return cli.TerminalPasswordReader(os.Stdin, cmd.OutOrStdout())
}
