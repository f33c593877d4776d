package cli

import (
	"errors"
	"io"
	"strings"
)

var errStdinUnavailable = errors.New("stdin unavailable")

const maxPasswordInput = 1024

// readLine reads up to a newline one byte at a time, so a second prompt on
// the same piped stdin still sees its own line.
func readLine(reader io.Reader) ([]byte, error) {
	var line []byte
	buf := make([]byte, 1)
	for len(line) < maxPasswordInput {
		n, err := reader.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return []byte(strings.TrimRight(string(line), "\r")), nil
}
