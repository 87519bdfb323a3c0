package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/envelope"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
)

// Translator converts any raised error into an outbound envelope. It is the
// single place faults become wire responses: typed errors keep their codes,
// validation failures get the generic code plus a populated mensajeDev, and
// anything else gets the generic code with full detail logged internally and
// nothing leaked to the caller.
type Translator struct {
	catalog          *messages.Catalog
	logger           *slog.Logger
	genericCode      int
	genericErrorCode string
}

// NewTranslator builds a translator over the given message catalog.
func NewTranslator(catalog *messages.Catalog, logger *slog.Logger, genericCode int, genericErrorCode string) *Translator {
	return &Translator{
		catalog:          catalog,
		logger:           logger,
		genericCode:      genericCode,
		genericErrorCode: genericErrorCode,
	}
}

// Translate renders err as an envelope. It never returns nil.
func (t *Translator) Translate(ctx context.Context, err error) *envelope.Envelope {
	var verr *messages.ValidationError
	if errors.As(err, &verr) {
		t.logger.Warn("request failed constraint validation", slog.String("violations", verr.DevMessage()))
		env := t.generic()
		env.DevMessage = verr.DevMessage()
		return env
	}

	var perr *messages.PropagationError
	if errors.As(err, &perr) {
		t.logger.Info("propagating downstream error",
			slog.Int("code", perr.MessageCode()),
			slog.String("error_code", perr.ErrorCode()),
			slog.String("detail", perr.Error()),
		)
		return envelope.New(perr.MessageCode(), t.message(perr.MessageCode(), perr.ErrorCode(), perr.Text()), nil)
	}

	var coded messages.Coded
	if errors.As(err, &coded) {
		t.logTyped(err, coded)
		return envelope.New(coded.MessageCode(), t.message(coded.MessageCode(), coded.ErrorCode(), ""), coded.Payload())
	}

	t.logger.Error("unexpected fault", slog.String("error", err.Error()))
	return t.generic()
}

func (t *Translator) logTyped(err error, coded messages.Coded) {
	var typed *messages.Error
	if errors.As(err, &typed) && typed.Traced() {
		t.logger.Error("traced business error",
			slog.Int("code", coded.MessageCode()),
			slog.String("error_code", coded.ErrorCode()),
			slog.String("error", err.Error()),
		)
		return
	}
	t.logger.Info("business message raised",
		slog.Int("code", coded.MessageCode()),
		slog.String("error_code", coded.ErrorCode()),
	)
}

// message resolves the catalog template for code, falling back to the
// propagated downstream text when present and finally to the fixed default.
func (t *Translator) message(code int, errorCode, fallbackText string) envelope.Message {
	title, text, ok := t.catalog.Lookup(code)
	if !ok {
		title = messages.DefaultTitle
		if fallbackText != "" {
			text = fallbackText
		} else {
			text = messages.DefaultErrorText
		}
	}
	return envelope.Message{Title: title, Text: text, ErrorCode: errorCode}
}

func (t *Translator) generic() *envelope.Envelope {
	return envelope.New(t.genericCode, t.message(t.genericCode, t.genericErrorCode, ""), nil)
}
