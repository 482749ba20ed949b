// Package cli implements the spec2snippets command line interface.
package cli

import "errors"

// ErrUsage marks errors caused by bad invocation (unknown flags, invalid
// --lang, malformed config files). main exits 2 for these instead of 1 so
// scripts can tell operator mistakes from spec or I/O failures.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

// Is lets errors.Is(err, ErrUsage) match any usageError.
func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
