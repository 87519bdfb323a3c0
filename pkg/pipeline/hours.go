package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
)

// hoursStage rejects hours-restricted routes outside the caller channel's
// service window. It performs its own registry fetch, independent of the
// channel-access stage. A caller with no matching record is treated as a
// restriction violation unless the registry lookup is bypassed outright.
type hoursStage struct {
	registry channel.Registry
	locale   string
	bypass   bool
	logger   *slog.Logger
	now      func() time.Time
}

func newHoursStage(registry channel.Registry, locale string, bypass bool, logger *slog.Logger) *hoursStage {
	return &hoursStage{
		registry: registry,
		locale:   locale,
		bypass:   bypass,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *hoursStage) Name() string { return "hours-of-service" }

func (s *hoursStage) Before(ctx context.Context, inv *Invocation) error {
	if !inv.Route.Options.ValidateHours {
		return nil
	}
	header := inv.Request.Header.Get(requestctx.HeaderChannel)
	if s.bypass {
		s.logger.Debug("channel registry bypassed, hours not restricted", slog.String("channel", header))
		return nil
	}

	records, err := s.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("hours of service: listing channels: %w", err)
	}
	rec, found := channel.Find(records, header)
	if !found {
		s.logger.Warn("hours-restricted route called by unknown channel", slog.String("channel", header), slog.String("path", inv.Route.Path))
		return messages.NewError(messages.CodeOutOfService, messages.ErrCodeOutOfService)
	}

	in, err := rec.Hours.Contains(s.now(), s.locale)
	if err != nil {
		return fmt.Errorf("hours of service: channel %s: %w", rec.Code, err)
	}
	if !in {
		s.logger.Warn("channel outside its service window",
			slog.String("channel", rec.Code),
			slog.Any("days", hoursDays(rec.Hours)),
			slog.String("start", hoursStart(rec.Hours)),
			slog.String("end", hoursEnd(rec.Hours)),
		)
		return messages.NewError(messages.CodeOutOfService, messages.ErrCodeOutOfService)
	}
	return nil
}

func hoursDays(h *channel.ServiceHours) []string {
	if h == nil {
		return nil
	}
	return h.Days
}

func hoursStart(h *channel.ServiceHours) string {
	if h == nil {
		return ""
	}
	return h.Start
}

func hoursEnd(h *channel.ServiceHours) string {
	if h == nil {
		return ""
	}
	return h.End
}
