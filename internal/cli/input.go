package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// stdinPrompter asks for confirmation on the terminal. Anything other than
// an explicit yes declines.
type stdinPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *stdinPrompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// stdinAlerter blocks until the user acknowledges the notice.
type stdinAlerter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (a *stdinAlerter) Alert(message string) {
	fmt.Fprintf(a.out, "\n!! %s\nPress Enter to continue...", message)
	_, _ = a.reader.ReadString('\n')
}
