// Package telegram provides the bot front door and chat notification delivery.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/finance-miniapp/backend/internal/application/adapter"
)

// Bot wraps the Telegram bot. It serves two roles: replying to chat messages
// with the Mini App keyboard, and delivering record notifications.
type Bot struct {
	api       *bot.Bot
	webAppURL string
}

// NewBot creates a new Bot from the given token. The default handler answers
// every incoming message with the Mini App button, mirroring the /start
// behavior: the keyboard is the only interaction the chat offers.
func NewBot(token, webAppURL string) (*Bot, error) {
	b := &Bot{webAppURL: webAppURL}

	api, err := bot.New(token, bot.WithDefaultHandler(b.handleMessage))
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.api = api

	return b, nil
}

// Start runs the long-polling update loop. It blocks until the context is
// cancelled.
func (b *Bot) Start(ctx context.Context) {
	slog.Info("Telegram bot started", "webapp_url", b.webAppURL)
	b.api.Start(ctx)
	slog.Info("Telegram bot stopped")
}

// Notify sends a plain chat message to the user. A single attempt, no retry.
func (b *Bot) Notify(ctx context.Context, userID int64, text string) error {
	_, err := b.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// handleMessage answers any chat message with the Mini App keyboard.
func (b *Bot) handleMessage(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	keyboard := &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{
					Text:   "💻 Открыть Mini App",
					WebApp: &models.WebAppInfo{URL: b.webAppURL},
				},
			},
		},
		ResizeKeyboard: true,
	}

	_, err := api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Привет! Открой Mini App из меню бота или нажми кнопку.",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		slog.Warn("Failed to answer chat message",
			"chat_id", update.Message.Chat.ID,
			"error", err,
		)
	}
}

// Ensure Bot implements adapter.Notifier.
var _ adapter.Notifier = (*Bot)(nil)
