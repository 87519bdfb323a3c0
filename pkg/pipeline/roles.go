package pipeline

import (
	"context"
	"log/slog"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
)

// roleStage checks that the principal holds at least one required role.
// It runs after session validation, so a missing principal here can only
// mean the route skipped sessions on purpose; in that case the stage allows.
type roleStage struct {
	logger *slog.Logger
}

func newRoleStage(logger *slog.Logger) *roleStage {
	return &roleStage{logger: logger}
}

func (s *roleStage) Name() string { return "role-authorization" }

func (s *roleStage) Before(ctx context.Context, inv *Invocation) error {
	required := inv.Route.Options.RequiredRoles
	if len(required) == 0 {
		return nil
	}
	if inv.Principal == nil {
		s.logger.Warn("no principal bound, skipping role check", slog.String("path", inv.Route.Path))
		return nil
	}
	if len(inv.Principal.Roles) == 0 {
		s.logger.Warn("principal has no roles assigned", slog.String("user", inv.Principal.UserID))
		return messages.NewError(messages.CodeRoleNotAuthorized, messages.ErrCodeRoleNotAuthorized)
	}
	if !inv.Principal.HasAnyRole(required...) {
		s.logger.Debug("principal lacks required role",
			slog.String("user", inv.Principal.UserID),
			slog.Any("required", required),
		)
		return messages.NewError(messages.CodeRoleNotAuthorized, messages.ErrCodeRoleNotAuthorized)
	}
	return nil
}
