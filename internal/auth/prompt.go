package auth

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassword prompts on out and reads a password from in. When in is a
// terminal the input is read without echo; otherwise a plain line is read so
// scripted and piped sessions keep working. The fallback reads byte by byte
// to avoid buffering ahead of input that belongs to the session.
func ReadPassword(in *os.File, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)

		// The suppressed newline still needs to appear on screen.
		fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		return string(password), nil
	}

	line, err := readLine(in)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return line, nil
}

// ReadLine prompts on out and reads one plain line from in, byte by byte.
// Used for the login name prompt.
func ReadLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := readLine(in)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return line, nil
}

// readLine consumes input up to a newline without reading ahead.
func readLine(in io.Reader) (string, error) {
	var builder strings.Builder

	buf := make([]byte, 1)

	for {
		n, err := in.Read(buf)
		if n > 0 && buf[0] == '\n' {
			break
		}

		if n > 0 {
			builder.WriteByte(buf[0])
		}

		if err != nil {
			if errors.Is(err, io.EOF) && builder.Len() > 0 {
				break
			}

			return "", err
		}
	}

	return strings.TrimRight(builder.String(), "\r"), nil
}
