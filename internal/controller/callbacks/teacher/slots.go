package teacher

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common/keyboard"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
	"github.com/SujitD0/Student-Dashboard/internal/service"
)

// Dialog data keys for the add-slot form
const (
	DataSlotDate     = "slot_date"
	DataSlotHour     = "slot_hour"
	DataSlotMinute   = "slot_minute"
	DataSlotPeriod   = "slot_period"
	DataSlotDuration = "slot_duration"
	DataSlotTopic    = "slot_topic"
)

// HandleAddSlot starts the add-availability form. Like the web form, only
// today and tomorrow can be picked.
func HandleAddSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	hc.ClearState()

	now := time.Now()
	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📆 Today", "slot_date:"+now.Format("2006-01-02")),
			keyboard.Button("📆 Tomorrow", "slot_date:"+now.AddDate(0, 0, 1).Format("2006-01-02")),
		).
		Row(keyboard.Button("⬅️ Back", "myschedule")).
		Build()

	hc.Answer("")
	if err := hc.EditMessage("🕐 <b>Add availability</b>\n\nStep 1 of 5: Pick a date.", kb); err != nil {
		h.Logger.Error("Failed to show date picker", zap.Error(err))
	}
}

// HandleSlotDate records the date and shows the hour picker
func HandleSlotDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
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
	if _, err := time.ParseInLocation("2006-01-02", args[0], time.Local); err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataSlotDate, args[0])

	kb := keyboard.NewBuilder()
	var row []models.InlineKeyboardButton
	for hour := 1; hour <= 12; hour++ {
		row = append(row, keyboard.Button(strconv.Itoa(hour), fmt.Sprintf("slot_hour:%d", hour)))
		if len(row) == 6 {
			kb.AddRow(row)
			row = nil
		}
	}
	kb.AddRow(row)

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Date: %s\n\nStep 2 of 5: Pick an hour.", args[0]),
		kb.Build(),
	); err != nil {
		h.Logger.Error("Failed to show hour picker", zap.Error(err))
	}
}

// HandleSlotHour records the hour and shows the minute picker
func HandleSlotHour(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	hour, err := common.ParseIDFromCallback(callback.Data)
	if err != nil || hour < 1 || hour > 12 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataSlotHour, int(hour))

	kb := keyboard.NewBuilder()
	var row []models.InlineKeyboardButton
	for _, minute := range service.SlotMinutes {
		row = append(row, keyboard.Button(fmt.Sprintf("%02d", minute), fmt.Sprintf("slot_min:%d", minute)))
	}
	kb.AddRow(row)

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Hour: %d\n\nStep 3 of 5: Pick the minutes.", hour),
		kb.Build(),
	); err != nil {
		h.Logger.Error("Failed to show minute picker", zap.Error(err))
	}
}

// HandleSlotMinute records the minutes and asks AM or PM
func HandleSlotMinute(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	minute, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataSlotMinute, int(minute))

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("AM", "slot_period:AM"),
			keyboard.Button("PM", "slot_period:PM"),
		).
		Build()

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Minutes: %02d\n\nStep 4 of 5: AM or PM?", minute),
		kb,
	); err != nil {
		h.Logger.Error("Failed to show period picker", zap.Error(err))
	}
}

// HandleSlotPeriod records AM/PM and asks for the duration
func HandleSlotPeriod(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 1 || (args[0] != "AM" && args[0] != "PM") {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataSlotPeriod, args[0])

	kb := keyboard.NewBuilder()
	var row []models.InlineKeyboardButton
	for _, d := range service.SlotDurations {
		row = append(row, keyboard.Button(fmt.Sprintf("%d minutes", d), fmt.Sprintf("slot_dur:%d", d)))
	}
	kb.AddRow(row)

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Period: %s\n\nStep 5 of 5: How long is the slot?", args[0]),
		kb.Build(),
	); err != nil {
		h.Logger.Error("Failed to show duration picker", zap.Error(err))
	}
}

// HandleSlotDuration records the duration and moves to the topic text step
func HandleSlotDuration(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireTeacher(); err != nil {
		hc.Fail(err)
		return
	}

	duration, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	valid := false
	for _, d := range service.SlotDurations {
		if int(duration) == d {
			valid = true
		}
	}
	if !valid {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataSlotDuration, int(duration))
	hc.SetState(state.StateAddSlotTopic)

	hc.Answer("")
	if err := hc.EditMessage(
		fmt.Sprintf("✅ Duration: %d minutes\n\n"+
			"📚 Topic (optional): send a topic like <i>Algebra, Physics</i>,\n"+
			"or send <code>-</code> to skip.\n\n"+
			"Use /cancel to abort.", duration),
		nil,
	); err != nil {
		h.Logger.Error("Failed to show topic prompt", zap.Error(err))
	}
}

// SubmitSlot composes the start time from the collected picker values and
// publishes the slot. Called after the meeting-link text step.
func SubmitSlot(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64, meetingLink string) {
	sess, err := h.Sessions.Get(ctx, telegramID)
	if err == nil && sess == nil {
		err = common.ErrNoSession
	}
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	data := h.StateManager.GetAllData(telegramID)
	h.StateManager.ClearState(telegramID)

	dateStr, _ := data[DataSlotDate].(string)
	hour, _ := data[DataSlotHour].(int)
	minute, _ := data[DataSlotMinute].(int)
	period, _ := data[DataSlotPeriod].(string)
	duration, _ := data[DataSlotDuration].(int)
	topic, _ := data[DataSlotTopic].(string)

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, common.ErrInvalidFormat)
		return
	}

	_, err = h.SlotService.Create(ctx, sess.AccessToken, date, hour, minute, period, duration, topic, meetingLink)
	if err != nil {
		h.Logger.Error("Adding slot failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	h.Notifier.Flash(ctx, chatID, "✅ Schedule updated")
	RenderSchedule(ctx, b, h, chatID, 0, telegramID)
}
