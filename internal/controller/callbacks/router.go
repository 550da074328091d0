package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/student"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/teacher"
)

// Route dispatches a callback query to its handler by the data prefix
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", callback.From.ID))

	switch {
	case data == "noop":
		common.AnswerCallback(ctx, b, callback.ID, "")

	// Student: browsing and filters
	case data == "browse":
		student.HandleBrowse(ctx, b, callback, h)
	case data == "flt_teacher":
		student.HandleFilterTeacher(ctx, b, callback, h)
	case strings.HasPrefix(data, "flt_teacher_set:"):
		student.HandleFilterTeacherSet(ctx, b, callback, h)
	case data == "flt_teacher_clear":
		student.HandleFilterTeacherClear(ctx, b, callback, h)
	case data == "flt_date":
		student.HandleFilterDate(ctx, b, callback, h)
	case strings.HasPrefix(data, "flt_date_set:"):
		student.HandleFilterDateSet(ctx, b, callback, h)
	case data == "flt_date_clear":
		student.HandleFilterDateClear(ctx, b, callback, h)
	case data == "flt_topic":
		student.HandleFilterTopic(ctx, b, callback, h)
	case data == "flt_reset":
		student.HandleFilterReset(ctx, b, callback, h)

	// Student: booking lifecycle
	case strings.HasPrefix(data, "book:"):
		student.HandleBookSlot(ctx, b, callback, h)
	case strings.HasPrefix(data, "purpose:"):
		student.HandlePurposeSet(ctx, b, callback, h)
	case strings.HasPrefix(data, "mode:"):
		student.HandleModeSet(ctx, b, callback, h)
	case data == "attach_skip":
		student.HandleAttachSkip(ctx, b, callback, h)
	case data == "mybookings":
		student.HandleMyBookings(ctx, b, callback, h)
	case strings.HasPrefix(data, "cancel_booking:"):
		student.HandleCancelBooking(ctx, b, callback, h)
	case strings.HasPrefix(data, "confirm_cancel:"):
		student.HandleConfirmCancel(ctx, b, callback, h)

	// Teacher: schedule management
	case data == "myschedule":
		teacher.HandleSchedule(ctx, b, callback, h)
	case strings.HasPrefix(data, "sched_flt:"):
		teacher.HandleScheduleFilter(ctx, b, callback, h)
	case data == "addslot":
		teacher.HandleAddSlot(ctx, b, callback, h)
	case strings.HasPrefix(data, "slot_date:"):
		teacher.HandleSlotDate(ctx, b, callback, h)
	case strings.HasPrefix(data, "slot_hour:"):
		teacher.HandleSlotHour(ctx, b, callback, h)
	case strings.HasPrefix(data, "slot_min:"):
		teacher.HandleSlotMinute(ctx, b, callback, h)
	case strings.HasPrefix(data, "slot_period:"):
		teacher.HandleSlotPeriod(ctx, b, callback, h)
	case strings.HasPrefix(data, "slot_dur:"):
		teacher.HandleSlotDuration(ctx, b, callback, h)
	case strings.HasPrefix(data, "del_slot:"):
		teacher.HandleDeleteSlot(ctx, b, callback, h)
	case strings.HasPrefix(data, "confirm_del:"):
		teacher.HandleConfirmDelete(ctx, b, callback, h)

	// Registration
	case strings.HasPrefix(data, "register_role:"):
		HandleRegisterRole(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("telegram_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
