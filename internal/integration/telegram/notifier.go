package telegram

import (
	"context"
	"log/slog"

	"github.com/finance-miniapp/backend/internal/application/adapter"
)

// LogNotifier is used when no bot token is configured. It logs the
// notification instead of delivering it, so record writes behave the same
// with or without a bot.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification text and reports success.
func (n *LogNotifier) Notify(_ context.Context, userID int64, text string) error {
	slog.Info("Notification skipped, no bot configured", "user_id", userID, "text", text)
	return nil
}

var _ adapter.Notifier = (*LogNotifier)(nil)
