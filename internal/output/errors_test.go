package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{Summary: "something failed", ExitCode: ExitGeneral}
	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}

	withDetail := &CLIError{Summary: "something failed", Detail: "connection reset", ExitCode: ExitTransport}
	if withDetail.Error() != "something failed: connection reset" {
		t.Errorf("Error() = %q", withDetail.Error())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneral},
		{"config error", &CLIError{Summary: "x", ExitCode: ExitConfig}, ExitConfig},
		{"transport error", &CLIError{Summary: "x", ExitCode: ExitTransport}, ExitTransport},
		{"wrapped cli error", fmt.Errorf("context: %w", &CLIError{Summary: "x", ExitCode: ExitConfig}), ExitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
