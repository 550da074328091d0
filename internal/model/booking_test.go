package model

import "testing"

func TestBooking_StatusLabel(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   string
	}{
		{BookingStatusConfirmed, "CONFIRMED"},
		{BookingStatusCancelled, "CANCELLED"},
		{BookingStatusCompleted, "COMPLETED"},
		{"pending_review", "PENDING_REVIEW"}, // backend-defined, rendered as-is
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		if got := b.StatusLabel(); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBooking_CanCancel(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusConfirmed, true},
		{BookingStatusCancelled, false},
		{BookingStatusCompleted, false},
		{"pending_review", false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		if got := b.CanCancel(); got != tt.want {
			t.Errorf("CanCancel(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
