package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/keyboard"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/student"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/teacher"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
)

const dataLoginEmail = "login_email"

// skipToken lets the user leave an optional text step empty
const skipToken = "-"

// HandleTextMessage routes a plain text message to the active dialog step
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Commands are handled by their own handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.deps.StateManager.GetState(telegramID)

	if currentState == state.StateNone {
		return
	}

	h.deps.Logger.Debug("Handling dialog step",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateLoginEmail:
		h.handleLoginEmail(ctx, b, update)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, update)
	case state.StateRegisterName:
		h.handleRegisterName(ctx, b, update)
	case state.StateRegisterEmail:
		h.handleRegisterEmail(ctx, b, update)
	case state.StateRegisterPassword:
		h.handleRegisterPassword(ctx, b, update)
	case state.StateFilterTopic:
		h.handleFilterTopic(ctx, b, update)
	case state.StateBookTopics:
		h.handleBookTopics(ctx, b, update)
	case state.StateBookAttachment:
		h.handleBookAttachmentText(ctx, b, update)
	case state.StateAddSlotTopic:
		h.handleAddSlotTopic(ctx, b, update)
	case state.StateAddSlotLink:
		h.handleAddSlotLink(ctx, b, update)
	default:
		h.deps.Logger.Warn("Unknown dialog state", zap.String("state", string(currentState)))
	}
}

// HandleDocument accepts a file upload during the booking attachment step
func (h *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Document == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if h.deps.StateManager.GetState(telegramID) != state.StateBookAttachment {
		return
	}

	doc := update.Message.Document

	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: doc.FileID})
	if err != nil {
		h.deps.Logger.Error("Failed to resolve attachment file",
			zap.String("file_id", doc.FileID),
			zap.Error(err))
		h.sendMessage(ctx, b, chatID, "❌ Could not read the file. Send another one or "+skipToken+" to skip.")
		return
	}

	url := b.FileDownloadLink(file)
	if err := student.SubmitBooking(ctx, b, h.deps, chatID, telegramID, doc.FileName, url); err != nil {
		h.deps.Logger.Error("Booking with attachment failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}

func (h *Handlers) handleLoginEmail(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	email := strings.TrimSpace(update.Message.Text)

	if !strings.Contains(email, "@") {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"❌ That does not look like an email address. Try again or /cancel.")
		return
	}

	h.deps.StateManager.SetData(telegramID, dataLoginEmail, email)
	h.deps.StateManager.SetState(telegramID, state.StateLoginPassword)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "🔑 Send your password.")
}

func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	password := update.Message.Text

	emailData, ok := h.deps.StateManager.GetData(telegramID, dataLoginEmail)
	email, _ := emailData.(string)
	h.deps.StateManager.ClearState(telegramID)

	if !ok || email == "" {
		h.sendMessage(ctx, b, chatID, "❌ Something went wrong. Start over with /login.")
		return
	}

	// The password should not linger in the chat history
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: update.Message.ID,
	})

	sess, err := h.deps.AuthService.Login(ctx, telegramID, email, password)
	if err != nil {
		h.deps.Logger.Warn("Login failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		// A 401 here means bad credentials, not an expired session
		msg := common.ErrorMessage(err)
		if detail := api.Detail(err); detail != "" {
			msg = "❌ " + detail
		}
		h.sendMessage(ctx, b, chatID, msg+"\n\nTry again with /login.")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Logged in as <b>%s</b>.", sess.Username))

	if sess.IsTeacher() {
		teacher.RenderSchedule(ctx, b, h.deps, chatID, 0, telegramID)
	} else {
		student.RenderBrowse(ctx, b, h.deps, chatID, 0, telegramID)
	}
}

func (h *Handlers) handleRegisterName(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	name := strings.TrimSpace(update.Message.Text)

	if name == "" {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Name cannot be empty. Try again or /cancel.")
		return
	}

	h.deps.StateManager.SetData(telegramID, callbacks.DataRegisterName, name)
	h.deps.StateManager.SetState(telegramID, state.StateRegisterEmail)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "📧 Send your email address.")
}

func (h *Handlers) handleRegisterEmail(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	email := strings.TrimSpace(update.Message.Text)

	if !strings.Contains(email, "@") {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"❌ That does not look like an email address. Try again or /cancel.")
		return
	}

	h.deps.StateManager.SetData(telegramID, callbacks.DataRegisterEmail, email)
	h.deps.StateManager.SetState(telegramID, state.StateRegisterPassword)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "🔑 Pick a password.")
}

func (h *Handlers) handleRegisterPassword(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	password := update.Message.Text

	if len(password) < 6 {
		h.sendMessage(ctx, b, chatID, "❌ Password must be at least 6 characters. Try again or /cancel.")
		return
	}

	h.deps.StateManager.SetData(telegramID, callbacks.DataRegisterPassword, password)

	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: update.Message.ID,
	})

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("🎓 Student", "register_role:student"),
			keyboard.Button("👩‍🏫 Teacher", "register_role:teacher"),
		).
		Build()

	h.sendKeyboard(ctx, b, chatID, "Almost done! Are you a student or a teacher?", kb)
}

func (h *Handlers) handleFilterTopic(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	topic := strings.TrimSpace(update.Message.Text)

	if topic == skipToken {
		h.deps.StateManager.ClearData(telegramID, student.DataFilterTopic)
	} else {
		h.deps.StateManager.SetData(telegramID, student.DataFilterTopic, topic)
	}
	h.deps.StateManager.SetState(telegramID, state.StateNone)

	student.RenderBrowse(ctx, b, h.deps, chatID, 0, telegramID)
}

func (h *Handlers) handleBookTopics(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	topics := strings.TrimSpace(update.Message.Text)

	if topics == skipToken {
		topics = ""
	}

	h.deps.StateManager.SetData(telegramID, student.DataBookTopics, topics)
	h.deps.StateManager.SetState(telegramID, state.StateNone)

	student.ShowModePicker(ctx, b, h.deps, update.Message.Chat.ID)
}

func (h *Handlers) handleBookAttachmentText(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	if text != skipToken {
		h.sendMessage(ctx, b, chatID,
			"📎 Send the file as a document, or "+skipToken+" to book without one.")
		return
	}

	if err := student.SubmitBooking(ctx, b, h.deps, chatID, telegramID, "", ""); err != nil {
		h.deps.Logger.Error("Booking failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}

func (h *Handlers) handleAddSlotTopic(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	topic := strings.TrimSpace(update.Message.Text)

	if topic == skipToken {
		topic = ""
	}

	h.deps.StateManager.SetData(telegramID, teacher.DataSlotTopic, topic)
	h.deps.StateManager.SetState(telegramID, state.StateAddSlotLink)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🔗 Meeting link (optional): send a URL like <i>https://meet.example.com/abc</i>,\n"+
			"or send <code>"+skipToken+"</code> to skip.")
}

func (h *Handlers) handleAddSlotLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	link := strings.TrimSpace(update.Message.Text)

	if link == skipToken {
		link = ""
	}

	teacher.SubmitSlot(ctx, b, h.deps, chatID, telegramID, link)
}
