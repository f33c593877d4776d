package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLineKeepsFollowingLines(t *testing.T) {
	t.Parallel()

	reader := strings.NewReader("StrongPass1\r\nStrongPass2\nlast")
	for _, want := range []string{"StrongPass1", "StrongPass2", "last"} {
		line, err := readLine(reader)
		if err != nil {
			t.Fatalf("readLine returned error: %v", err)
		}
		if string(line) != want {
			t.Fatalf("readLine = %q, want %q", line, want)
		}
	}
	if _, err := readLine(reader); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF at end of input, got %v", err)
	}
}

func TestTerminalPasswordReaderFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte("StrongPass1\nStrongPass1\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	stdin, err := os.Open(path)
	if err != nil {
		t.Fatalf("open input: %v", err)
	}
	defer stdin.Close()

	var out bytes.Buffer
	read := TerminalPasswordReader(stdin, &out)
	for index := 0; index < 2; index++ {
		password, err := read("Password: ")
		if err != nil {
			t.Fatalf("read %d: %v", index, err)
		}
		if password != "StrongPass1" {
			t.Fatalf("read %d = %q", index, password)
		}
	}
	if !strings.HasPrefix(out.String(), "Password: ") {
		t.Fatalf("expected prompt in output, got %q", out.String())
	}
}

func TestReadPasswordNoEchoRequiresStdin(t *testing.T) {
	t.Parallel()

	if _, err := readPasswordNoEcho(nil); !errors.Is(err, errStdinUnavailable) {
		t.Fatalf("expected errStdinUnavailable, got %v", err)
	}
}
