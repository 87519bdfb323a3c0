package messages

import "fmt"

// PropagationError reconstructs a downstream service's error envelope in the
// caller. The numeric code and error code pass through every hop untouched;
// only the wrapped context string accumulates per hop, and it is used for
// logging alone.
type PropagationError struct {
	code      int
	errorCode string
	text      string
	context   string
	cause     error
}

// NewPropagationError wraps the codes reported by a downstream envelope.
// Unlike locally raised errors, the codes arrive from the wire and are kept
// exactly as received.
func NewPropagationError(messageCode int, errorCode, text, context string) *PropagationError {
	return &PropagationError{code: messageCode, errorCode: errorCode, text: text, context: context}
}

// WithCause attaches the underlying transport fault, if any.
func (e *PropagationError) WithCause(cause error) *PropagationError {
	e.cause = cause
	return e
}

func (e *PropagationError) Error() string {
	s := fmt.Sprintf("propagated message %d (%s)", e.code, e.errorCode)
	if e.context != "" {
		s += ": " + e.context
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// MessageCode returns the downstream codigoDeOperacion.
func (e *PropagationError) MessageCode() int { return e.code }

// ErrorCode returns the downstream codigoError.
func (e *PropagationError) ErrorCode() string { return e.errorCode }

// Payload always returns nil; propagated errors never carry data.
func (e *PropagationError) Payload() any { return nil }

// Text returns the downstream message text, used when the local catalog has
// no template for the propagated code.
func (e *PropagationError) Text() string { return e.text }

func (e *PropagationError) Unwrap() error { return e.cause }
