// Package messages holds the typed error contract used for business
// rejections across services: a numeric message code, an error code and an
// optional payload. Business rejections travel as ordinary error values so a
// caller can always tell them apart from unexpected faults.
package messages

import (
	"fmt"
	"strings"
)

// Coded is implemented by every fault that carries the service message
// contract. The exception translator renders anything implementing it into an
// envelope with the same codes; everything else becomes a generic error.
type Coded interface {
	error
	MessageCode() int
	ErrorCode() string
	Payload() any
}

// Error is a typed business rejection or warning.
//
// Invariants enforced at construction: the message code is never zero, the
// error code is never empty and is normalized to upper case, and warnings
// always carry a payload.
type Error struct {
	code      int
	errorCode string
	payload   any
	logMsg    string
	cause     error
	traced    bool
}

// NewError builds a hard error that will not be logged with a stack trace.
// messageCode must be negative and errorCode non-empty; both are programmer
// contracts, so violations panic.
func NewError(messageCode int, errorCode string) *Error {
	mustNegative(messageCode)
	return &Error{code: messageCode, errorCode: mustCode(errorCode)}
}

// NewErrorWithTrace builds a hard error wrapping the fault that caused it.
// The translator logs these with full diagnostic detail.
func NewErrorWithTrace(messageCode int, errorCode, logMsg string, cause error) *Error {
	mustNegative(messageCode)
	if cause == nil {
		panic("messages: cause must not be nil for a traced error")
	}
	return &Error{
		code:      messageCode,
		errorCode: mustCode(errorCode),
		logMsg:    logMsg,
		cause:     cause,
		traced:    true,
	}
}

// NewWarning builds a success-with-caveat result: a positive message code
// together with the business payload to return.
func NewWarning(messageCode int, errorCode string, payload any) *Error {
	if messageCode <= 0 {
		panic("messages: messageCode must be greater than 0 for a warning")
	}
	if payload == nil {
		panic("messages: a warning must carry a payload")
	}
	return &Error{code: messageCode, errorCode: mustCode(errorCode), payload: payload}
}

func (e *Error) Error() string {
	s := fmt.Sprintf("message %d (%s)", e.code, e.errorCode)
	if e.logMsg != "" {
		s += ": " + e.logMsg
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// MessageCode returns the numeric code placed in codigoDeOperacion.
func (e *Error) MessageCode() int { return e.code }

// ErrorCode returns the upper-cased error code placed in the message.
func (e *Error) ErrorCode() string { return e.errorCode }

// Payload returns the business payload for warnings, nil otherwise.
func (e *Error) Payload() any { return e.payload }

// Traced reports whether the translator should log full diagnostic detail.
func (e *Error) Traced() bool { return e.traced }

func (e *Error) Unwrap() error { return e.cause }

func mustNegative(code int) {
	if code >= 0 {
		panic("messages: messageCode must be less than 0 for an error")
	}
}

func mustCode(errorCode string) string {
	if errorCode == "" {
		panic("messages: errorCode must not be empty")
	}
	return strings.ToUpper(errorCode)
}
