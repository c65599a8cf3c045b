package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mrz1836/rolodex/internal/config"
	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

//nolint:gochecknoglobals // Swappable for tests
var (
	promptPasswordFn  = promptPassword
	stdinIsTerminalFn = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
	}
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.ReadPassword
	outln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return password, nil
}

// readPassphrase returns the store passphrase from ROLODEX_PASSPHRASE, or
// prompts for it when stdin is a terminal.
// The caller is responsible for zeroing the returned bytes after use.
func readPassphrase() ([]byte, error) {
	if v := os.Getenv(config.EnvPassphrase); v != "" {
		return []byte(v), nil
	}

	if !stdinIsTerminalFn() {
		return nil, rdxerr.WithSuggestion(rdxerr.ErrPassphraseRequired,
			fmt.Sprintf("set %s or run rolodex from a terminal", config.EnvPassphrase))
	}

	pass, err := promptPasswordFn("Contact store passphrase: ")
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, rdxerr.ErrPassphraseRequired
	}
	return pass, nil
}
