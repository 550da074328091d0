package formatting

import (
	"testing"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

func TestGetBookingStatusDisplay(t *testing.T) {
	tests := []struct {
		status    model.BookingStatus
		wantEmoji string
		wantText  string
	}{
		{model.BookingStatusConfirmed, "✅", "CONFIRMED"},
		{model.BookingStatusCancelled, "❌", "CANCELLED"},
		{model.BookingStatusCompleted, "✔️", "COMPLETED"},
		{"no_show", "❓", "NO_SHOW"},
	}

	for _, tt := range tests {
		got := GetBookingStatusDisplay(&model.Booking{Status: tt.status})
		if got.Emoji != tt.wantEmoji || got.Text != tt.wantText {
			t.Errorf("status %q: got %q %q, want %q %q",
				tt.status, got.Emoji, got.Text, tt.wantEmoji, tt.wantText)
		}
	}
}

func TestSlotAvailabilityDisplay(t *testing.T) {
	if got := SlotAvailabilityDisplay(&model.Slot{IsAvailable: true}); got != "🟢 Available" {
		t.Errorf("available slot: %q", got)
	}
	if got := SlotAvailabilityDisplay(&model.Slot{}); got != "🔴 Booked" {
		t.Errorf("booked slot: %q", got)
	}
}
