package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/cyclecast/internal/models"
)

// UserCreator creates accounts with an explicit role.
type UserCreator interface {
	CreateUser(ctx context.Context, email string, password string, role string) (models.User, error)
}

// PasswordReader returns one password entered in response to prompt.
type PasswordReader func(prompt string) (string, error)

var errPasswordConfirmation = errors.New("passwords do not match")

// TerminalPasswordReader prompts on out and reads from stdin with echo off.
func TerminalPasswordReader(stdin *os.File, out io.Writer) PasswordReader {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		password, err := readPasswordNoEcho(stdin)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}
}

// RunCreateUser asks for a password twice and creates the account.
func RunCreateUser(ctx context.Context, creator UserCreator, email string, role string, readPassword PasswordReader, out io.Writer) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errPasswordConfirmation
	}

	user, err := creator.CreateUser(ctx, email, password, role)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(out, "Created %s account %s (id %d)\n", user.Role, user.Email, user.ID)
	return nil
}
