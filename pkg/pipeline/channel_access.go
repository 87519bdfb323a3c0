package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
)

// channelAccessStage verifies the caller is a known, active channel. The
// registry is read fresh on every request; an empty registry means no caller
// is known and the request is denied, not failed.
type channelAccessStage struct {
	registry channel.Registry
	bypass   bool
	logger   *slog.Logger
}

func newChannelAccessStage(registry channel.Registry, bypass bool, logger *slog.Logger) *channelAccessStage {
	return &channelAccessStage{registry: registry, bypass: bypass, logger: logger}
}

func (s *channelAccessStage) Name() string { return "channel-access" }

func (s *channelAccessStage) Before(ctx context.Context, inv *Invocation) error {
	if inv.Route.Options.SkipChannelCheck {
		return nil
	}
	header := inv.Request.Header.Get(requestctx.HeaderChannel)
	if s.bypass {
		s.logger.Debug("channel registry bypassed, access granted", slog.String("channel", header))
		return nil
	}

	records, err := s.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("channel access: listing channels: %w", err)
	}
	rec, found := channel.Find(records, header)
	if !found {
		s.logger.Warn("access denied for unknown channel", slog.String("channel", header), slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeAccessDenied, messages.ErrCodeAccessDenied)
	}
	if !rec.Active {
		s.logger.Warn("channel is out of service", slog.String("channel", rec.Code), slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeOutOfService, messages.ErrCodeOutOfService)
	}

	s.logger.Debug("channel access granted", slog.String("channel", rec.Code), slog.String("name", rec.Name))
	return nil
}
