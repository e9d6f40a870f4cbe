package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrToolMissing       = errors.New("work iq cli not found")
	ErrToolFailed        = errors.New("work iq cli failed")
	ErrTimeout           = errors.New("work iq query timed out")
	ErrOutputTooLarge    = errors.New("work iq output exceeds limit")
	ErrCacheRead         = errors.New("cache entry unreadable")
	ErrCacheWrite        = errors.New("cache entry not writable")
	ErrParse             = errors.New("response could not be parsed")
	ErrMailNotConfigured = errors.New("mail delivery not configured")
	ErrSecretNotFound    = errors.New("secret not found")
)

// ToolError reports a Work IQ CLI invocation that ran but did not succeed.
type ToolError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "work iq %s", strings.Join(redactArgs(e.Args), " "))
	if e.ExitCode != 0 {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}

	return b.String()
}

func (e *ToolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrToolFailed}
	}

	return []error{ErrToolFailed, e.Err}
}

// redactArgs keeps the subcommand and flag names but shortens long question text.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		runes := []rune(arg)
		if len(runes) > 60 {
			arg = string(runes[:60]) + "..."
		}
		out[i] = arg
	}

	return out
}
