package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
)

// ShowScreen renders a screen either as a fresh message (messageID 0, used by
// commands) or in place of an existing one (used by callbacks)
func ShowScreen(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, keyboard *models.InlineKeyboardMarkup) error {
	if messageID == 0 {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: keyboard,
		})
		return err
	}

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	if IsMessageNotModifiedError(err) {
		return nil
	}
	return err
}

// ReportError tells the user a screen could not be built. A rejected token
// drops the session so the next command lands on the login prompt.
func ReportError(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64, err error) {
	if api.IsUnauthorized(err) {
		h.Sessions.Invalidate(ctx, telegramID)
		h.StateManager.ClearState(telegramID)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   ErrorMessage(err),
	})
}
