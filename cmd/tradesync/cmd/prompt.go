package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdin is shared across prompts: a per-prompt reader could buffer ahead
// and swallow the next line of piped input.
var stdin = bufio.NewReader(os.Stdin)

// promptPassword reads a password from the terminal without echo, falling
// back to a plain line read when stdin is not a terminal (piped input in
// scripts and tests).
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	return promptLine("")
}

// promptLine reads a single trimmed line from stdin.
func promptLine(label string) (string, error) {
	if label != "" {
		fmt.Fprintf(os.Stderr, "%s: ", label)
	}

	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
