package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes audit events to an slog.Logger.
// Useful for development when you want registry changes on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Accepted operations log at
// Info, declined ones at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("entity", event.Entity.String()),
		slog.String("action", event.Action.String()),
		slog.String("outcome", event.Outcome.String()),
	}

	if event.OUI != 0 {
		attrs = append(attrs, slog.Uint64("oui", event.OUI))
	}
	if event.RouteID != "" {
		attrs = append(attrs, slog.String("route_id", event.RouteID))
	}
	if event.Signer != "" {
		attrs = append(attrs, slog.String("signer", event.Signer))
	}
	if event.Detail != "" {
		attrs = append(attrs, slog.String("detail", event.Detail))
	}

	level := slog.LevelInfo
	if event.Outcome == OutcomeDeclined {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "registry operation", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
