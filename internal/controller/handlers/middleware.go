package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/session"
)

// requireSession loads the chat's session, prompting for /login when absent
func (h *Handlers) requireSession(ctx context.Context, b *bot.Bot, chatID, telegramID int64) *session.Session {
	sess, err := h.deps.Sessions.Get(ctx, telegramID)
	if err != nil {
		h.deps.Logger.Error("Failed to load session",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendMessage(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return nil
	}
	if sess == nil {
		h.sendMessage(ctx, b, chatID, "🔐 You are not logged in. Use /login to sign in or /register to create an account.")
		return nil
	}
	return sess
}

func (h *Handlers) requireStudent(ctx context.Context, b *bot.Bot, chatID, telegramID int64) *session.Session {
	sess := h.requireSession(ctx, b, chatID, telegramID)
	if sess == nil {
		return nil
	}
	if !sess.IsStudent() {
		h.sendMessage(ctx, b, chatID, "❌ This command is for students.")
		return nil
	}
	return sess
}

func (h *Handlers) requireTeacher(ctx context.Context, b *bot.Bot, chatID, telegramID int64) *session.Session {
	sess := h.requireSession(ctx, b, chatID, telegramID)
	if sess == nil {
		return nil
	}
	if !sess.IsTeacher() {
		h.sendMessage(ctx, b, chatID, "❌ This command is for teachers.")
		return nil
	}
	return sess
}
