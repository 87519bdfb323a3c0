// Package envelope defines the standard response wrapper exchanged between
// services. Every service answers with the same JSON shape regardless of
// outcome; success, warning and error are distinguished by codigoDeOperacion
// alone, never by the transport status code.
package envelope

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ContentType is the media type of enveloped responses.
const ContentType = "application/json"

// Response marks a type as a business response. Handler results implementing
// it are wrapped by the enveloping stage; anything else passes through
// untouched.
type Response interface {
	EnvelopeData()
}

// Message is the human-readable portion of an envelope.
type Message struct {
	ErrorCode string `json:"codigoError,omitempty"`
	Text      string `json:"texto"`
	Title     string `json:"titulo"`
}

// Envelope is the wire shape of every service response.
//
// OperationCode semantics: 0 success, negative error, positive
// success-with-warning. It is a pointer so that responses from foreign
// services that merely look like JSON can be told apart from real envelopes
// when decoding (absent field stays nil).
type Envelope struct {
	OperationCode  *int     `json:"codigoDeOperacion"`
	OperationFolio string   `json:"folioDeOperacion"`
	Message        *Message `json:"mensaje,omitempty"`
	Data           any      `json:"data,omitempty"`
	DevMessage     string   `json:"mensajeDev,omitempty"`
}

// New builds an envelope with a freshly generated operation folio. The folio
// is assigned exactly once here and never mutated afterwards. A zero code
// always clears the error code, and a nil payload is rendered as an empty
// object so consumers can rely on data being present.
func New(code int, msg Message, data any) *Envelope {
	if code == 0 {
		msg.ErrorCode = ""
	}
	if data == nil {
		data = struct{}{}
	}
	c := code
	return &Envelope{
		OperationCode:  &c,
		OperationFolio: uuid.New().String(),
		Message:        &msg,
		Data:           data,
	}
}

// Code returns the operation code, or false when the decoded body did not
// carry one (meaning the payload is not an envelope at all).
func (e *Envelope) Code() (int, bool) {
	if e == nil || e.OperationCode == nil {
		return 0, false
	}
	return *e.OperationCode, true
}

// IsError reports whether the envelope carries a hard error.
func (e *Envelope) IsError() bool {
	c, ok := e.Code()
	return ok && c < 0
}

// IsWarning reports whether the envelope represents success with a caveat.
func (e *Envelope) IsWarning() bool {
	c, ok := e.Code()
	return ok && c > 0
}

// ErrorCode returns the message error code, empty when absent.
func (e *Envelope) ErrorCode() string {
	if e == nil || e.Message == nil {
		return ""
	}
	return e.Message.ErrorCode
}

// Text returns the message text, empty when absent.
func (e *Envelope) Text() string {
	if e == nil || e.Message == nil {
		return ""
	}
	return e.Message.Text
}

// Decode parses b as an envelope. A nil error with a nil OperationCode means
// b was valid JSON that is not an envelope.
func Decode(b []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
