package model

import "time"

// Slot is a teacher-defined time window available for booking.
// It is backend-owned; the bot holds transient copies only.
type Slot struct {
	ID              int64     `json:"id"`
	Teacher         *User     `json:"teacher"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Topic           string    `json:"topic"`
	MeetingLink     string    `json:"meeting_link"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
}
