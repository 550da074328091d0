package formatting

import (
	"fmt"

	"github.com/SujitD0/Student-Dashboard/internal/model"
	"github.com/SujitD0/Student-Dashboard/internal/service"
)

// SlotLine renders one slot the way the dashboards list them:
// date, 12-hour time and duration
func SlotLine(slot *model.Slot) string {
	return fmt.Sprintf("%s @ %s (%s)",
		service.FormatDay(slot.Start.Local()),
		service.FormatClock(slot.Start.Local()),
		service.FormatDuration(slot.DurationMinutes))
}

// SlotCard renders the detail block of a slot for the browse screen
func SlotCard(slot *model.Slot) string {
	text := ""
	if slot.Teacher != nil {
		text += fmt.Sprintf("👨‍🏫 <b>%s</b>\n📧 %s\n", slot.Teacher.FullName(), slot.Teacher.Email)
	}
	if slot.Topic != "" {
		text += fmt.Sprintf("📚 %s\n", slot.Topic)
	}
	text += fmt.Sprintf("🕐 %s\n", SlotLine(slot))
	return text
}

// BookingCard renders one booking for the "my bookings" screen
func BookingCard(b *model.Booking) string {
	display := GetBookingStatusDisplay(b)
	text := fmt.Sprintf("📝 <b>Booking #%d</b> — %s %s\n", b.ID, display.Emoji, display.Text)

	if b.Slot != nil {
		if b.Slot.Teacher != nil {
			text += fmt.Sprintf("👨‍🏫 Teacher: %s\n", b.Slot.Teacher.FullName())
		}
		text += fmt.Sprintf("🕐 Time: %s\n", SlotLine(b.Slot))
	}
	if b.Purpose != "" {
		text += fmt.Sprintf("💬 Purpose: %s\n", b.Purpose)
	}
	if b.MeetingMode == model.MeetingModeOnline && b.Slot != nil && b.Slot.MeetingLink != "" {
		text += fmt.Sprintf("🔗 Meeting link: %s\n", b.Slot.MeetingLink)
	}
	return text
}

// TeacherBookingCard renders one booking for the teacher's upcoming list
func TeacherBookingCard(b *model.Booking) string {
	display := GetBookingStatusDisplay(b)
	text := fmt.Sprintf("📝 <b>Booking #%d</b> — %s %s\n", b.ID, display.Emoji, display.Text)

	if b.Student != nil {
		text += fmt.Sprintf("🎓 Student: %s\n📧 %s\n", b.Student.FullName(), b.Student.Email)
	}
	if b.Slot != nil {
		text += fmt.Sprintf("🕐 Time: %s\n", SlotLine(b.Slot))
	}
	if b.Purpose != "" {
		text += fmt.Sprintf("💬 Purpose: %s\n", b.Purpose)
	}
	return text
}
