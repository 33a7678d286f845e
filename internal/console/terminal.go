package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SecretReader reads a value without echoing it.
type SecretReader interface {
	ReadSecret(prompt string) (string, error)
}

type terminalSecrets struct {
	fd  int
	out io.Writer
}

// TerminalSecrets returns a SecretReader for f, or nil when f is not a
// terminal. Sessions without a SecretReader read secrets as plain lines.
func TerminalSecrets(f *os.File, out io.Writer) SecretReader {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return &terminalSecrets{fd: fd, out: out}
}

func (t *terminalSecrets) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}
