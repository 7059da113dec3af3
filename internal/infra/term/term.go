package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinConfirmer asks yes/no questions on a terminal. Anything other than
// "y" or "yes" declines.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s (y/N): ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Prompt reads one free-form line, used for the directory fallback when no
// argument was given.
func (c *StdinConfirmer) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
