package cli

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const nonInteractiveEnv = "PRISM_NON_INTERACTIVE"

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsNonInteractive reports whether interactive views must not start: the
// flag is set, PRISM_NON_INTERACTIVE holds a true value, or stdin and stdout
// are not both terminals.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if value, ok := os.LookupEnv(nonInteractiveEnv); ok {
		if set, err := strconv.ParseBool(value); err != nil || set {
			return true
		}
	}
	return !isTerminal()
}
