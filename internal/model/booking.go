package model

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type MeetingMode string

const (
	MeetingModeOnline  MeetingMode = "online"
	MeetingModeOffline MeetingMode = "offline"
)

// Booking is a student's reservation against a slot. The status string is
// backend-defined; values outside the known set are rendered as-is.
type Booking struct {
	ID          int64         `json:"id"`
	Student     *User         `json:"student"`
	Slot        *Slot         `json:"slot"`
	Purpose     string        `json:"purpose"`
	Attachments string        `json:"attachments"`
	MeetingMode MeetingMode   `json:"meeting_mode"`
	MeetingLink string        `json:"meeting_link"`
	CreatedAt   time.Time     `json:"created_at"`
	Status      BookingStatus `json:"status"`
}

// StatusLabel renders the status the way the dashboards do: uppercased
func (b *Booking) StatusLabel() string {
	return strings.ToUpper(string(b.Status))
}

// CanCancel reports whether the booking still exposes a cancel action
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusConfirmed
}
