package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/keyboard"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/student"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/teacher"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
)

// HandleStart greets the user and shows their dashboard if logged in
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	sess, err := h.deps.Sessions.Get(ctx, telegramID)
	if err != nil {
		h.deps.Logger.Error("Failed to load session", zap.Error(err))
	}

	if sess != nil {
		h.sendMessage(ctx, b, chatID, fmt.Sprintf("👋 Welcome back, <b>%s</b>!", sess.Username))
		if sess.IsTeacher() {
			teacher.RenderSchedule(ctx, b, h.deps, chatID, 0, telegramID)
		} else {
			student.RenderBrowse(ctx, b, h.deps, chatID, 0, telegramID)
		}
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"This bot lets students book sessions with teachers and "+
			"teachers publish their availability.\n\n"+
			"/login - Sign in\n"+
			"/register - Create an account\n"+
			"/help - Show all commands",
		update.Message.From.FirstName,
	)

	h.sendMessage(ctx, b, chatID, welcomeText)
}

// HandleHelp shows the command reference
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Commands:\n\n" +
		"/login - Sign in\n" +
		"/register - Create an account\n" +
		"/logout - Sign out\n" +
		"/cancel - Abort the current dialog\n\n" +
		"For students:\n" +
		"/slots - Browse available slots\n" +
		"/mybookings - My bookings\n\n" +
		"For teachers:\n" +
		"/myschedule - My schedule\n" +
		"/addslot - Publish availability"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleLogin starts the login dialog
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	sess, err := h.deps.Sessions.Get(ctx, telegramID)
	if err == nil && sess != nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("You are already logged in as <b>%s</b>. Use /logout first to switch accounts.", sess.Username))
		return
	}

	h.deps.StateManager.ClearState(telegramID)
	h.deps.StateManager.SetState(telegramID, state.StateLoginEmail)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🔐 <b>Login</b>\n\nSend your email address.\n\nUse /cancel to abort.")
}

// HandleRegister starts the registration dialog
func (h *Handlers) HandleRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.deps.StateManager.ClearState(telegramID)
	h.deps.StateManager.SetState(telegramID, state.StateRegisterName)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📝 <b>Registration</b>\n\nSend your full name.\n\nUse /cancel to abort.")
}

// HandleLogout destroys the chat's session
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	sess, err := h.deps.Sessions.Get(ctx, telegramID)
	if err != nil || sess == nil {
		h.sendMessage(ctx, b, chatID, "You are not logged in.")
		return
	}

	h.deps.StateManager.ClearState(telegramID)

	if err := h.deps.AuthService.Logout(ctx, telegramID); err != nil {
		h.deps.Logger.Error("Logout failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendMessage(ctx, b, chatID, "❌ Something went wrong. Please try again.")
		return
	}

	h.sendMessage(ctx, b, chatID, "👋 Logged out. Use /login to sign in again.")
}

// HandleSlots shows the slot browser for students
func (h *Handlers) HandleSlots(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if sess := h.requireStudent(ctx, b, chatID, telegramID); sess == nil {
		return
	}

	student.RenderBrowse(ctx, b, h.deps, chatID, 0, telegramID)
}

// HandleMyBookings shows the student's bookings
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if sess := h.requireStudent(ctx, b, chatID, telegramID); sess == nil {
		return
	}

	student.RenderMyBookings(ctx, b, h.deps, chatID, 0, telegramID)
}

// HandleMySchedule shows the teacher's schedule
func (h *Handlers) HandleMySchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if sess := h.requireTeacher(ctx, b, chatID, telegramID); sess == nil {
		return
	}

	teacher.RenderSchedule(ctx, b, h.deps, chatID, 0, telegramID)
}

// HandleAddSlot starts the add-availability form
func (h *Handlers) HandleAddSlot(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if sess := h.requireTeacher(ctx, b, chatID, telegramID); sess == nil {
		return
	}

	h.deps.StateManager.ClearState(telegramID)

	now := time.Now()
	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📆 Today", "slot_date:"+now.Format("2006-01-02")),
			keyboard.Button("📆 Tomorrow", "slot_date:"+now.AddDate(0, 0, 1).Format("2006-01-02")),
		).
		Build()

	h.sendKeyboard(ctx, b, chatID, "🕐 <b>Add availability</b>\n\nStep 1 of 5: Pick a date.", kb)
}

// HandleCancel aborts the current dialog
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	if h.deps.StateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Nothing to cancel.")
		return
	}

	h.deps.StateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Cancelled. Use /help to see available commands.")
}
