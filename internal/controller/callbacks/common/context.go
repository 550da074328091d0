package common

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
	"github.com/SujitD0/Student-Dashboard/internal/session"
)

// HandlerContext carries the shared pieces of one callback invocation so the
// handlers do not repeat session loading and message plumbing.
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	Session    *session.Session
	TelegramID int64
	ChatID     int64
}

func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// RequireSession loads the chat's session, failing when the user is not
// logged in
func (hc *HandlerContext) RequireSession() error {
	if hc.Session != nil {
		return nil
	}

	sess, err := hc.Handler.Sessions.Get(hc.Ctx, hc.TelegramID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNoSession
	}

	hc.Session = sess
	return nil
}

// RequireTeacher loads the session and checks the teacher role claim
func (hc *HandlerContext) RequireTeacher() error {
	if err := hc.RequireSession(); err != nil {
		return err
	}
	if !hc.Session.IsTeacher() {
		return ErrNotATeacher
	}
	return nil
}

// RequireStudent loads the session and checks the student role claim
func (hc *HandlerContext) RequireStudent() error {
	if err := hc.RequireSession(); err != nil {
		return err
	}
	if !hc.Session.IsStudent() {
		return ErrNotAStudent
	}
	return nil
}

// Fail reports an error to the user. A rejected token additionally drops the
// session, which is the bot's redirect-to-login.
func (hc *HandlerContext) Fail(err error) {
	if api.IsUnauthorized(err) {
		hc.Handler.Sessions.Invalidate(hc.Ctx, hc.TelegramID)
		hc.ClearState()
	}
	hc.AnswerAlert(ErrorMessage(err))
}

// Answer acknowledges the callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert acknowledges the callback query with a popup
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// Flash shows an auto-dismissing status message
func (hc *HandlerContext) Flash(text string) {
	hc.Handler.Notifier.Flash(hc.Ctx, hc.ChatID, text)
}

// EditMessage rewrites the callback's message in place
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	// "message is not modified" happens on double taps and is harmless
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// SendMessage sends a fresh message to the chat
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	return err
}

// DeleteMessage removes the callback's message
func (hc *HandlerContext) DeleteMessage() error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    hc.ChatID,
		MessageID: hc.Message.ID,
	})

	return err
}

// ClearState drops the chat's dialog state
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}

// SetState moves the chat to a dialog step
func (hc *HandlerContext) SetState(s state.UserState) {
	hc.Handler.StateManager.SetState(hc.TelegramID, s)
}

// SetData stores a transient dialog value
func (hc *HandlerContext) SetData(key string, value interface{}) {
	hc.Handler.StateManager.SetData(hc.TelegramID, key, value)
}

// GetData reads a transient dialog value
func (hc *HandlerContext) GetData(key string) (interface{}, bool) {
	return hc.Handler.StateManager.GetData(hc.TelegramID, key)
}

// IsMessageNotModifiedError detects Telegram's edit-to-same-content error
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
