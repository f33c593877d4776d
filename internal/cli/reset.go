package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/cyclecast/internal/services"
)

// PasswordResetter issues temporary passwords.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email string) (string, error)
}

// RunResetPassword replaces the account password with a temporary one and
// prints it to out.
func RunResetPassword(ctx context.Context, resetter PasswordResetter, email string, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email is required")
	}

	temporaryPassword, err := resetter.ResetPassword(ctx, normalizedEmail)
	if errors.Is(err, services.ErrRecordNotFound) {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}
