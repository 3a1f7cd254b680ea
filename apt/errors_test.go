package apt

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"protocol error", &ProtocolError{Op: "status", Expected: 16, Got: 12}, CodeShortResponse},
		{"out of range", NewOutOfRangeError("output voltage", 1.5), CodeOutOfRange},
		{"invalid enum", NewInvalidEnumError("voltage limit", 9), CodeInvalidEnum},
		{"wrapped coder", fmt.Errorf("request failed: %w",
			NewInvalidEnumError("channel enable state", 3)), CodeInvalidEnum},
		{"plain error", errors.New("boom"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{Op: "hardware info", Expected: 90, Got: 15}
	want := "hardware info: short response: got 15 bytes, expected 90"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
