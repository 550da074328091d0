package service

import (
	"errors"
	"fmt"
	"time"
)

// Slot form choices, mirroring the web client's pickers
var (
	SlotMinutes   = []int{0, 15, 30, 45}
	SlotDurations = []int{30, 60}
)

var (
	ErrPastSlot      = errors.New("slot time is in the past")
	ErrInvalidHour   = errors.New("hour must be between 1 and 12")
	ErrInvalidMinute = errors.New("minute must be one of 00, 15, 30, 45")
	ErrInvalidPeriod = errors.New("period must be AM or PM")
)

// To24Hour converts a 12-hour clock reading to an hour of day.
// 12 AM is midnight, 12 PM is noon, any other PM hour shifts by 12.
func To24Hour(hour12 int, period string) (int, error) {
	if hour12 < 1 || hour12 > 12 {
		return 0, ErrInvalidHour
	}

	switch period {
	case "AM":
		if hour12 == 12 {
			return 0, nil
		}
		return hour12, nil
	case "PM":
		if hour12 == 12 {
			return 12, nil
		}
		return hour12 + 12, nil
	default:
		return 0, ErrInvalidPeriod
	}
}

// ComposeStart builds the slot start instant from the picker values
func ComposeStart(date time.Time, hour12, minute int, period string, loc *time.Location) (time.Time, error) {
	hour24, err := To24Hour(hour12, period)
	if err != nil {
		return time.Time{}, err
	}

	if !validMinute(minute) {
		return time.Time{}, ErrInvalidMinute
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour24, minute, 0, 0, loc), nil
}

// ValidateStart applies the client-side past-time policy: a same-day start
// earlier than now is rejected, any other day is left to the backend.
func ValidateStart(start, now time.Time) error {
	if !sameDay(start, now) {
		return nil
	}
	if start.Before(now) {
		return ErrPastSlot
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func validMinute(minute int) bool {
	for _, m := range SlotMinutes {
		if m == minute {
			return true
		}
	}
	return false
}

// FormatClock renders an instant the way the dashboards do, 12-hour style
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDay renders the calendar date of an instant
func FormatDay(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDuration renders a slot length in minutes
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}
