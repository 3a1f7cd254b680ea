package serialport

import (
	"testing"
	"time"

	"github.com/mveary/go-kcube/apt"
)

func TestNotOpenCodes(t *testing.T) {
	p := New()

	if _, err := p.Write([]byte{0x01}); apt.Code(err) != codeState {
		t.Errorf("Write: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
	if _, err := p.Read(make([]byte, 8)); apt.Code(err) != codeState {
		t.Errorf("Read: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
	if _, err := p.ChipID(); apt.Code(err) != codeState {
		t.Errorf("ChipID: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
	if err := p.SetBaudRate(115200); apt.Code(err) != codeState {
		t.Errorf("SetBaudRate: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
	if err := p.Flush(); apt.Code(err) != codeState {
		t.Errorf("Flush: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
	if err := p.SetRTS(true); apt.Code(err) != codeState {
		t.Errorf("SetRTS: Code(err) = %d, want %d", apt.Code(err), codeState)
	}
}

func TestCloseNotOpen(t *testing.T) {
	if err := New().Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSleepNeverFails(t *testing.T) {
	if err := New().Sleep(time.Microsecond); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEqualHex(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0403", "0403", true},
		{"faf0", "FAF0", true},
		{"FAF0", "faf0", true},
		{"0403", "0404", false},
		{"403", "0403", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := equalHex(tt.a, tt.b); got != tt.want {
			t.Errorf("equalHex(%q, %q) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}
