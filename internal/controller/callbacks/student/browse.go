package student

import (
	"context"
	"fmt"
	"time"

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

// Dialog data keys for the browse filters
const (
	DataFilterTeacher = "flt_teacher"
	DataFilterDate    = "flt_date"
	DataFilterTopic   = "flt_topic"
)

const maxListedSlots = 8

// currentFilter assembles the student's filter from dialog data
func currentFilter(h *callbacktypes.Handler, telegramID int64) service.SlotFilter {
	var f service.SlotFilter
	if v, ok := h.StateManager.GetData(telegramID, DataFilterTeacher); ok {
		if id, ok := v.(int64); ok {
			f.TeacherID = id
		}
	}
	if v, ok := h.StateManager.GetData(telegramID, DataFilterDate); ok {
		if date, ok := v.(string); ok {
			f.Date = date
		}
	}
	if v, ok := h.StateManager.GetData(telegramID, DataFilterTopic); ok {
		if topic, ok := v.(string); ok {
			f.Topic = topic
		}
	}
	return f
}

func filterSummary(f service.SlotFilter, teachers []*model.User) string {
	if f.IsEmpty() {
		return "No filters applied."
	}

	summary := "Filters:"
	if f.TeacherID != 0 {
		name := fmt.Sprintf("#%d", f.TeacherID)
		for _, t := range teachers {
			if t.ID == f.TeacherID {
				name = t.FullName()
				break
			}
		}
		summary += fmt.Sprintf(" teacher %s;", name)
	}
	if f.Date != "" {
		summary += fmt.Sprintf(" date %s;", f.Date)
	}
	if f.Topic != "" {
		summary += fmt.Sprintf(" topic contains %q;", f.Topic)
	}
	return summary
}

// RenderBrowse shows the student dashboard: available slots after the
// filters, with book buttons. Always a fresh fetch, never cached.
func RenderBrowse(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, messageID int, telegramID int64) {
	sess, err := h.Sessions.Get(ctx, telegramID)
	if err == nil && sess == nil {
		err = common.ErrNoSession
	}
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	slots, err := h.SlotService.ListAvailable(ctx, sess.AccessToken)
	if err != nil {
		common.ReportError(ctx, b, h, chatID, telegramID, err)
		return
	}

	teachers := service.UniqueTeachers(slots)
	f := currentFilter(h, telegramID)
	filtered := service.FilterSlots(slots, f)

	text := "🎓 <b>Available slots</b>\n\n" + filterSummary(f, teachers) + "\n\n"

	kb := keyboard.NewBuilder()
	if len(filtered) == 0 {
		text += "No available slots found. Try adjusting your filters."
	} else {
		shown := filtered
		if len(shown) > maxListedSlots {
			shown = shown[:maxListedSlots]
		}
		for _, slot := range shown {
			text += formatting.SlotCard(slot) + "\n"
			label := fmt.Sprintf("📌 Book %s", formatting.SlotLine(slot))
			kb.Row(keyboard.Button(label, fmt.Sprintf("book:%d", slot.ID)))
		}
		if len(filtered) > maxListedSlots {
			text += fmt.Sprintf("…and %d more. Narrow the filters to see them.\n", len(filtered)-maxListedSlots)
		}
	}

	kb.Row(
		keyboard.Button("👨‍🏫 Teacher", "flt_teacher"),
		keyboard.Button("📆 Date", "flt_date"),
		keyboard.Button("📚 Topic", "flt_topic"),
	)
	if !f.IsEmpty() {
		kb.Row(keyboard.Button("♻️ Reset filters", "flt_reset"))
	}
	kb.Row(keyboard.Button("📝 My bookings", "mybookings"))

	if err := common.ShowScreen(ctx, b, chatID, messageID, text, kb.Build()); err != nil {
		h.Logger.Error("Failed to render browse screen", zap.Error(err))
	}
}

// HandleBrowse re-renders the browse screen in place
func HandleBrowse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	hc.Answer("")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleFilterTeacher lists the teachers of the currently available slots
func HandleFilterTeacher(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	slots, err := h.SlotService.ListAvailable(ctx, hc.Session.AccessToken)
	if err != nil {
		hc.Fail(err)
		return
	}

	teachers := service.UniqueTeachers(slots)
	if len(teachers) == 0 {
		hc.AnswerAlert("No teachers have open slots right now.")
		return
	}

	kb := keyboard.NewBuilder()
	for _, t := range teachers {
		kb.Row(keyboard.Button("👨‍🏫 "+t.FullName(), fmt.Sprintf("flt_teacher_set:%d", t.ID)))
	}
	kb.Row(
		keyboard.Button("🚫 Any teacher", "flt_teacher_clear"),
		keyboard.Button("⬅️ Back", "browse"),
	)

	hc.Answer("")
	if err := hc.EditMessage("👨‍🏫 <b>Filter by teacher</b>\n\nPick a teacher:", kb.Build()); err != nil {
		h.Logger.Error("Failed to show teacher filter", zap.Error(err))
	}
}

// HandleFilterTeacherSet applies the teacher filter
func HandleFilterTeacherSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	teacherID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataFilterTeacher, teacherID)
	hc.Answer("Filter applied")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleFilterTeacherClear removes the teacher filter
func HandleFilterTeacherClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	h.StateManager.ClearData(hc.TelegramID, DataFilterTeacher)
	hc.Answer("Filter cleared")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleFilterDate offers the next week of calendar dates
func HandleFilterDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	kb := keyboard.NewBuilder()
	now := time.Now()
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		label := day.Format("Mon 02.01")
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		kb.Row(keyboard.Button("📆 "+label, "flt_date_set:"+day.Format("2006-01-02")))
	}
	kb.Row(
		keyboard.Button("🚫 Any date", "flt_date_clear"),
		keyboard.Button("⬅️ Back", "browse"),
	)

	hc.Answer("")
	if err := hc.EditMessage("📆 <b>Filter by date</b>\n\nPick a day:", kb.Build()); err != nil {
		h.Logger.Error("Failed to show date filter", zap.Error(err))
	}
}

// HandleFilterDateSet applies the date filter
func HandleFilterDateSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 1 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}
	if _, err := time.ParseInLocation("2006-01-02", args[0], time.Local); err != nil {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	hc.SetData(DataFilterDate, args[0])
	hc.Answer("Filter applied")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleFilterDateClear removes the date filter
func HandleFilterDateClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	h.StateManager.ClearData(hc.TelegramID, DataFilterDate)
	hc.Answer("Filter cleared")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

// HandleFilterTopic asks for the topic substring as a text reply
func HandleFilterTopic(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.RequireStudent(); err != nil {
		hc.Fail(err)
		return
	}

	hc.SetState(state.StateFilterTopic)
	hc.Answer("")
	if err := hc.EditMessage(
		"📚 <b>Filter by topic</b>\n\n"+
			"Send a topic to search for, e.g. <i>Algebra</i>.\n"+
			"Send <code>-</code> to clear the topic filter.\n\n"+
			"Use /cancel to abort.",
		nil,
	); err != nil {
		h.Logger.Error("Failed to show topic filter prompt", zap.Error(err))
	}
}

// HandleFilterReset drops all browse filters
func HandleFilterReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	h.StateManager.ClearData(hc.TelegramID, DataFilterTeacher)
	h.StateManager.ClearData(hc.TelegramID, DataFilterDate)
	h.StateManager.ClearData(hc.TelegramID, DataFilterTopic)
	hc.Answer("Filters reset")
	RenderBrowse(ctx, b, h, hc.ChatID, messageIDOf(hc), hc.TelegramID)
}

func messageIDOf(hc *common.HandlerContext) int {
	if hc.Message == nil {
		return 0
	}
	return hc.Message.ID
}
