package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers yes/no questions before an existing file is overwritten.
// Abstracting the prompt keeps the driver testable and lets --force be
// modeled as a provider that always answers yes.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// AlwaysConfirm answers yes without prompting. Used for --force.
type AlwaysConfirm struct{}

// Confirm always returns true.
func (AlwaysConfirm) Confirm(string) (bool, error) { return true, nil }

// TerminalConfirmer writes the prompt to out and reads one line from in.
// Only "y" or "yes" (case-insensitive) count as consent.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer returns a Confirmer prompting on out and reading
// answers from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm asks one question. A failed read means no interactive input is
// available, which is fatal for the run.
func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("%w: %v", ErrInteractionUnavailable, err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
