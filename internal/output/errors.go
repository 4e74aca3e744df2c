package output

import "errors"

// Exit codes returned by the CLI
const (
	ExitSuccess   = 0
	ExitGeneral   = 1
	ExitTransport = 3
	ExitConfig    = 4
)

// CLIError pairs a user-facing message with the exit code it maps to
type CLIError struct {
	Summary  string
	Detail   string
	ExitCode int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Detail == "" {
		return e.Summary
	}
	return e.Summary + ": " + e.Detail
}

// ExitCode maps an error returned by the root command to a process exit
// code. Errors that carry no classification exit with ExitGeneral.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode
	}
	return ExitGeneral
}
