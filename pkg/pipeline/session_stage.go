package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// sessionStage rejects non-exempt requests without an active session and a
// bound principal, and refreshes the principal's last-access stamp. The
// refresh is a plain read-modify-write; last writer wins.
type sessionStage struct {
	store  session.Store
	logger *slog.Logger
	now    func() time.Time
}

func newSessionStage(store session.Store, logger *slog.Logger) *sessionStage {
	return &sessionStage{store: store, logger: logger, now: time.Now}
}

func (s *sessionStage) Name() string { return "session-validation" }

func (s *sessionStage) Before(ctx context.Context, inv *Invocation) error {
	if inv.Route.Options.SkipSessionCheck {
		return nil
	}
	token := inv.Request.Header.Get(requestctx.HeaderSessionToken)
	if token == "" {
		s.logger.Debug("no session token on request", slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeSessionExpired, messages.ErrCodeSessionExpired)
	}

	principal, err := s.store.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		s.logger.Debug("no active session for token", slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeSessionExpired, messages.ErrCodeSessionExpired)
	}
	if err != nil {
		return fmt.Errorf("session validation: reading session: %w", err)
	}
	if principal == nil {
		s.logger.Debug("session has no principal bound", slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeSessionExpired, messages.ErrCodeSessionExpired)
	}

	s.logger.Debug("session is valid", slog.String("user", principal.UserID), slog.Time("last_access", principal.LastAccess))
	principal.LastAccess = s.now()
	if err := s.store.Put(ctx, token, principal); err != nil {
		return fmt.Errorf("session validation: refreshing last access: %w", err)
	}
	inv.Principal = principal
	return nil
}
