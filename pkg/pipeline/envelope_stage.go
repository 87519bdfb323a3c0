package pipeline

import (
	"context"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/envelope"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
)

// envelopeStage wraps business responses in the standard success envelope.
// The success message is resolved from the catalog once at construction;
// results that are not business responses pass through untouched.
type envelopeStage struct {
	code int
	msg  envelope.Message
}

func newEnvelopeStage(successCode int, catalog *messages.Catalog) *envelopeStage {
	title, text, ok := catalog.Lookup(successCode)
	if !ok {
		title, text = messages.DefaultTitle, messages.DefaultSuccessText
	}
	return &envelopeStage{
		code: successCode,
		msg:  envelope.Message{Title: title, Text: text},
	}
}

func (s *envelopeStage) Name() string { return "response-enveloping" }

func (s *envelopeStage) After(ctx context.Context, inv *Invocation) {
	if inv.Err != nil {
		return
	}
	if resp, ok := inv.Result.(envelope.Response); ok {
		inv.Result = envelope.New(s.code, s.msg, resp)
	}
}
