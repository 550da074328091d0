package teacher

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/formatting"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/keyboard"
	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Schedule view filter choices
const (
	DataScheduleFilter = "sched_flt"

	ScheduleFilterAll       = "all"
	ScheduleFilterAvailable = "available"
	ScheduleFilterBooked    = "booked"
)

const maxListedSlots = 10

func scheduleFilter(h *callbacktypes.Handler, telegramID int64) string {
	if v, ok := h.StateManager.GetData(telegramID, DataScheduleFilter); ok {
		if f, ok := v.(string); ok {
			return f
		}
	}
	return ScheduleFilterAll
}

func applyScheduleFilter(slots []*model.Slot, filter string) []*model.Slot {
	if filter == ScheduleFilterAll {
		return slots
	}

	var filtered []*model.Slot
	for _, slot := range slots {
		switch filter {
		case ScheduleFilterAvailable:
			if slot.IsAvailable {
				filtered = append(filtered, slot)
			}
		case ScheduleFilterBooked:
			if !slot.IsAvailable {
				filtered = append(filtered, slot)
			}
		}
	}
	return filtered
}

// RenderSchedule shows the teacher dashboard: upcoming confirmed bookings and
// the slot list under the current view filter, with delete actions
func RenderSchedule(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, messageID int, telegramID int64) {
	sess, err := h.Sessions.Get(ctx, telegramID)
	if err == nil && sess == nil {
		err = common.ErrNoSession
	}
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	slots, err := h.SlotService.ListAll(ctx, sess.AccessToken)
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	bookings, err := h.BookingService.List(ctx, sess.AccessToken)
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	text := "🗓 <b>Teacher dashboard</b>\n\n📖 <b>Upcoming bookings</b>\n\n"

	upcoming := 0
	for _, booking := range bookings {
		if booking.Status != model.BookingStatusConfirmed {
			continue
		}
		text += formatting.TeacherBookingCard(booking) + "\n"
		upcoming++
	}
	if upcoming == 0 {
		text += "No upcoming bookings.\n\n"
	}

	filter := scheduleFilter(h, telegramID)
	filtered := applyScheduleFilter(slots, filter)

	text += fmt.Sprintf("📅 <b>My schedule</b> (%s)\n\n", filter)

	kb := keyboard.NewBuilder()
	if len(filtered) == 0 {
		text += "No slots found.\n"
	} else {
		shown := filtered
		if len(shown) > maxListedSlots {
			shown = shown[:maxListedSlots]
		}
		for _, slot := range shown {
			text += fmt.Sprintf("%s — %s", formatting.SlotLine(slot), formatting.SlotAvailabilityDisplay(slot))
			if slot.Topic != "" {
				text += " • " + slot.Topic
			}
			text += "\n"

			booked := 0
			if !slot.IsAvailable {
				booked = 1
			}
			kb.Row(keyboard.Button(
				fmt.Sprintf("🗑 Delete %s", formatting.SlotLine(slot)),
				fmt.Sprintf("del_slot:%d:%d", slot.ID, booked),
			))
		}
		if len(filtered) > maxListedSlots {
			text += fmt.Sprintf("…and %d more.\n", len(filtered)-maxListedSlots)
		}
	}

	kb.Row(
		keyboard.Button("All", "sched_flt:all"),
		keyboard.Button("Available", "sched_flt:available"),
		keyboard.Button("Booked", "sched_flt:booked"),
	)
	kb.Row(keyboard.Button("➕ Add availability", "addslot"))

	if err := common.ShowScreen(ctx, b, chatID, messageID, text, kb.Build()); err != nil {
		h.Logger.Error("Failed to render schedule screen", zap.Error(err))
	}
}

// HandleSchedule re-renders the schedule screen in place
func HandleSchedule(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	hc.Answer("")
	RenderSchedule(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleScheduleFilter switches the all/available/booked view
func HandleScheduleFilter(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 1 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}
	switch args[0] {
	case ScheduleFilterAll, ScheduleFilterAvailable, ScheduleFilterBooked:
	default:
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataScheduleFilter, args[0])
	hc.Answer("")
	RenderSchedule(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleDeleteSlot asks for confirmation. The wording warns about the implied
// booking cancellation when the slot is booked; the cascade itself is the
// backend's job.
func HandleDeleteSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 2 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}
	slotID := args[0]
	booked := args[1] == "1"

	confirmText := fmt.Sprintf("❓ Are you sure you want to delete slot #%s?", slotID)
	if booked {
		confirmText = fmt.Sprintf("⚠️ Slot #%s is booked. Deleting it will also cancel the booking. Are you sure?", slotID)
	}

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✅ Yes, delete", fmt.Sprintf("confirm_del:%s:%s", slotID, args[1])),
			keyboard.Button("❌ No", "myschedule"),
		).
		Build()

	hc.Answer("")
	if err := hc.EditMessage(confirmText, kb); err != nil {
		h.Logger.Error("Failed to show delete confirmation", zap.Error(err))
	}
}

// HandleConfirmDelete deletes the slot and refetches the schedule
func HandleConfirmDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 2 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	var slotID int64
	if _, err := fmt.Sscanf(args[0], "%d", &slotID); err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}
	booked := args[1] == "1"

	if err := h.SlotService.Delete(ctx, hc.Session.AccessToken, slotID); err != nil {
		h.Logger.Error("Delete slot failed",
			zap.Int64("slot_id", slotID),
			zap.Error(err))
		hc.Flash("❌ Failed to delete slot")
		hc.Answer("")
		return
	}

	confirmation := "✅ Slot deleted successfully"
	if booked {
		confirmation += " and booking cancelled"
	}
	hc.Flash(confirmation)
	hc.Answer("")
	RenderSchedule(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

func messageIDOf(hc *common.HandlerContext) int {
	if hc.Message == nil {
		return 0
	}
	return hc.Message.ID
}
