package messages

import (
	"errors"
	"testing"
)

func TestNewErrorNormalizesErrorCode(t *testing.T) {
	err := NewError(-1000, "mscs01")
	if err.ErrorCode() != "MSCS01" {
		t.Errorf("expected upper-cased error code, got %q", err.ErrorCode())
	}
	if err.MessageCode() != -1000 {
		t.Errorf("expected code -1000, got %d", err.MessageCode())
	}
	if err.Payload() != nil {
		t.Error("hard errors must not carry a payload")
	}
	if err.Traced() {
		t.Error("NewError must not mark the error traced")
	}
}

func TestNewErrorPanicsOnNonNegativeCode(t *testing.T) {
	for _, code := range []int{0, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for code %d", code)
				}
			}()
			NewError(code, "MSCM0")
		}()
	}
}

func TestNewErrorPanicsOnEmptyErrorCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty error code")
		}
	}()
	NewError(-1, "")
}

func TestNewErrorWithTrace(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewErrorWithTrace(-1, "MSCM0", "calling the accounts service", cause)
	if !err.Traced() {
		t.Error("expected traced error")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil cause")
		}
	}()
	NewErrorWithTrace(-1, "MSCM0", "msg", nil)
}

func TestNewWarningRequiresPositiveCodeAndPayload(t *testing.T) {
	warn := NewWarning(10, "MSCW1", map[string]string{"estado": "parcial"})
	if warn.MessageCode() != 10 {
		t.Errorf("expected code 10, got %d", warn.MessageCode())
	}
	if warn.Payload() == nil {
		t.Error("expected warning payload to be kept")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on non-positive warning code")
			}
		}()
		NewWarning(-1, "MSCW1", "data")
	}()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil warning payload")
		}
	}()
	NewWarning(1, "MSCW1", nil)
}

func TestCodedViaErrorsAs(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), NewError(-2000, "MSCS02"))
	var coded Coded
	if !errors.As(wrapped, &coded) {
		t.Fatal("expected to recover Coded from wrapped error")
	}
	if coded.MessageCode() != -2000 || coded.ErrorCode() != "MSCS02" {
		t.Errorf("got %d / %s", coded.MessageCode(), coded.ErrorCode())
	}
}
