package formatting

import "github.com/SujitD0/Student-Dashboard/internal/model"

// BookingStatusDisplay pairs an emoji with the rendered status text
type BookingStatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay returns the display for a booking status. Unknown
// backend-defined statuses are rendered verbatim, uppercased.
func GetBookingStatusDisplay(b *model.Booking) BookingStatusDisplay {
	displays := map[model.BookingStatus]string{
		model.BookingStatusConfirmed: "✅",
		model.BookingStatusCancelled: "❌",
		model.BookingStatusCompleted: "✔️",
	}

	emoji, ok := displays[b.Status]
	if !ok {
		emoji = "❓"
	}

	return BookingStatusDisplay{Emoji: emoji, Text: b.StatusLabel()}
}

// SlotAvailabilityDisplay renders the availability flag of a slot
func SlotAvailabilityDisplay(slot *model.Slot) string {
	if slot.IsAvailable {
		return "🟢 Available"
	}
	return "🔴 Booked"
}
