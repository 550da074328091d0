package student

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/formatting"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/keyboard"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
	"github.com/SujitD0/Student-Dashboard/internal/model"
	"github.com/SujitD0/Student-Dashboard/internal/service"
)

// Dialog data keys for the booking form
const (
	DataBookSlotID  = "book_slot_id"
	DataBookPurpose = "book_purpose"
	DataBookTopics  = "book_topics"
	DataBookMode    = "book_mode"
)

// HandleBookSlot opens the booking form for a slot
func HandleBookSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	slotID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.ClearState()
	hc.SetData(DataBookSlotID, slotID)

	kb := keyboard.NewBuilder()
	for i, purpose := range service.BookingPurposes {
		kb.Row(keyboard.Button(purpose, fmt.Sprintf("purpose:%d", i)))
	}
	kb.Row(keyboard.Button("⬅️ Back", "browse"))

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("📝 <b>Finalize booking</b> — slot #%d\n\nStep 1 of 4: What is the purpose of the meeting?", slotID),
		kb.Build(),
	); err != nil {
		h.Logger.Error("Failed to show purpose picker", zap.Error(err))
	}
}

// HandlePurposeSet records the purpose choice and asks for topics
func HandlePurposeSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	idx, err := common.ParseIDFromCallback(callback.Data)
	if err != nil || idx < 0 || int(idx) >= len(service.BookingPurposes) {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataBookPurpose, service.BookingPurposes[idx])
	hc.SetState(state.StateBookTopics)

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Purpose: %s\n\n"+
			"Step 2 of 4: What do you want to discuss?\n"+
			"Send your topics or questions as a message.\n\n"+
			"Use /cancel to abort.", service.BookingPurposes[idx]),
		nil,
	); err != nil {
		h.Logger.Error("Failed to show topics prompt", zap.Error(err))
	}
}

// ShowModePicker asks for the meeting mode; called after the topics text step
func ShowModePicker(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64) {
	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("💻 Online", "mode:online"),
			keyboard.Button("🏫 Offline", "mode:offline"),
		).
		Build()

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Step 3 of 4: How do you want to meet?",
		ReplyMarkup: kb,
	})
	if err != nil {
		h.Logger.Error("Failed to show mode picker", zap.Error(err))
	}
}

// HandleModeSet records the meeting mode and asks for an attachment
func HandleModeSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 1 || (args[0] != string(model.MeetingModeOnline) && args[0] != string(model.MeetingModeOffline)) {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataBookMode, args[0])
	hc.SetState(state.StateBookAttachment)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("⏭ Skip attachment", "attach_skip")).
		Build()

	hc.Answer("")
	if err := hc.EditMessage(
		"Step 4 of 4: 📎 Attach code or documents (optional).\n\n"+
			"Send a file, or skip this step.",
		kb,
	); err != nil {
		h.Logger.Error("Failed to show attachment prompt", zap.Error(err))
	}
}

// HandleAttachSkip submits the booking without an attachment
func HandleAttachSkip(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	hc.Answer("")
	if err := SubmitBooking(ctx, b, h, hc.ChatID, hc.TelegramID, "", ""); err != nil {
		hc.Fail(err)
	}
}

// SubmitBooking sends the collected form to the backend and, on success,
// refetches and shows the student's bookings. No optimistic update: a failure
// leaves everything as it was.
func SubmitBooking(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64, attachmentName, attachmentURL string) error {
	sess, err := h.Sessions.Get(ctx, telegramID)
	if err != nil {
		return err
	}
	if sess == nil {
		return common.ErrNoSession
	}

	form, err := bookingFormFromState(h, telegramID)
	if err != nil {
		return err
	}
	form.AttachmentName = attachmentName
	form.AttachmentURL = attachmentURL

	if _, err := h.BookingService.Create(ctx, sess.AccessToken, *form); err != nil {
		h.Logger.Error("Booking failed",
			zap.Int64("telegram_id", telegramID),
			zap.Int64("slot_id", form.SlotID),
			zap.Error(err))
		h.Notifier.Flash(ctx, chatID, "❌ Booking failed. Please try again.")
		return nil
	}

	h.StateManager.ClearState(telegramID)
	h.Notifier.Flash(ctx, chatID, "✅ Booking confirmed! Teacher has been notified.")
	RenderMyBookings(ctx, b, h, chatID, 0, telegramID)
	return nil
}

func bookingFormFromState(h *callbacktypes.Handler, telegramID int64) (*service.BookingForm, error) {
	form := &service.BookingForm{MeetingMode: model.MeetingModeOnline}

	v, ok := h.StateManager.GetData(telegramID, DataBookSlotID)
	if !ok {
		return nil, common.ErrInvalidFormat
	}
	slotID, ok := v.(int64)
	if !ok {
		return nil, common.ErrInvalidFormat
	}
	form.SlotID = slotID

	if v, ok := h.StateManager.GetData(telegramID, DataBookPurpose); ok {
		if purpose, ok := v.(string); ok {
			form.Purpose = purpose
		}
	}
	if v, ok := h.StateManager.GetData(telegramID, DataBookTopics); ok {
		if topics, ok := v.(string); ok {
			form.Topics = topics
		}
	}
	if v, ok := h.StateManager.GetData(telegramID, DataBookMode); ok {
		if mode, ok := v.(string); ok {
			form.MeetingMode = model.MeetingMode(mode)
		}
	}

	return form, nil
}

// RenderMyBookings shows the student's bookings with cancel actions for the
// ones still confirmed
func RenderMyBookings(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, messageID int, telegramID int64) {
	sess, err := h.Sessions.Get(ctx, telegramID)
	if err == nil && sess == nil {
		err = common.ErrNoSession
	}
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	bookings, err := h.BookingService.List(ctx, sess.AccessToken)
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	text := "📝 <b>My scheduled meets</b>\n\n"
	kb := keyboard.NewBuilder()

	if len(bookings) == 0 {
		text += "No bookings yet."
	} else {
		for _, booking := range bookings {
			text += formatting.BookingCard(booking) + "\n"
			if booking.CanCancel() {
				kb.Row(keyboard.Button(
					fmt.Sprintf("❌ Cancel booking #%d", booking.ID),
					"cancel_booking:"+strconv.FormatInt(booking.ID, 10),
				))
			}
		}
	}

	kb.Row(keyboard.Button("🎓 Browse slots", "browse"))

	if err := common.ShowScreen(ctx, b, chatID, messageID, text, kb.Build()); err != nil {
		h.Logger.Error("Failed to render bookings screen", zap.Error(err))
	}
}

// HandleMyBookings re-renders the bookings screen in place
func HandleMyBookings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireSession(); err != nil {
		hc.Fail(err)
		return
	}

	hc.Answer("")
	RenderMyBookings(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleCancelBooking asks for confirmation before cancelling
func HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireSession(); err != nil {
		hc.Fail(err)
		return
	}

	bookingID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Yes, cancel", fmt.Sprintf("confirm_cancel:%d", bookingID)),
			keyboard.Button("❌ No", "mybookings"),
		).
		Build()

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("❓ Are you sure you want to cancel booking #%d?", bookingID),
		kb,
	); err != nil {
		h.Logger.Error("Failed to show cancel confirmation", zap.Error(err))
	}
}

// HandleConfirmCancel cancels the booking and refetches the list
func HandleConfirmCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireSession(); err != nil {
		hc.Fail(err)
		return
	}

	bookingID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	if err := h.BookingService.Cancel(ctx, hc.Session.AccessToken, bookingID); err != nil {
		h.Logger.Error("Cancel failed",
			zap.Int64("booking_id", bookingID),
			zap.Error(err))
		hc.Flash("❌ Failed to cancel booking")
		hc.Answer("")
		return
	}

	hc.Flash("✅ Booking cancelled successfully")
	hc.Answer("")
	RenderMyBookings(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}
