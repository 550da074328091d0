package service

import (
	"errors"
	"testing"
	"time"
)

func TestTo24Hour_AM(t *testing.T) {
	tests := []struct {
		hour12 int
		want   int
	}{
		{12, 0}, // midnight
		{1, 1},
		{6, 6},
		{11, 11},
	}

	for _, tt := range tests {
		got, err := To24Hour(tt.hour12, "AM")
		if err != nil {
			t.Fatalf("To24Hour(%d, AM): %v", tt.hour12, err)
		}
		if got != tt.want {
			t.Errorf("To24Hour(%d, AM) = %d, want %d", tt.hour12, got, tt.want)
		}
	}
}

func TestTo24Hour_PM(t *testing.T) {
	tests := []struct {
		hour12 int
		want   int
	}{
		{12, 12}, // noon
		{1, 13},
		{6, 18},
		{11, 23},
	}

	for _, tt := range tests {
		got, err := To24Hour(tt.hour12, "PM")
		if err != nil {
			t.Fatalf("To24Hour(%d, PM): %v", tt.hour12, err)
		}
		if got != tt.want {
			t.Errorf("To24Hour(%d, PM) = %d, want %d", tt.hour12, got, tt.want)
		}
	}
}

func TestTo24Hour_AlwaysInRange(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, period := range []string{"AM", "PM"} {
			got, err := To24Hour(hour, period)
			if err != nil {
				t.Fatalf("To24Hour(%d, %s): %v", hour, period, err)
			}
			if got < 0 || got > 23 {
				t.Errorf("To24Hour(%d, %s) = %d, out of range", hour, period, got)
			}
		}
	}
}

func TestTo24Hour_Invalid(t *testing.T) {
	if _, err := To24Hour(0, "AM"); !errors.Is(err, ErrInvalidHour) {
		t.Errorf("hour 0: got %v, want ErrInvalidHour", err)
	}
	if _, err := To24Hour(13, "PM"); !errors.Is(err, ErrInvalidHour) {
		t.Errorf("hour 13: got %v, want ErrInvalidHour", err)
	}
	if _, err := To24Hour(5, "am"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("lowercase period: got %v, want ErrInvalidPeriod", err)
	}
}

func TestComposeStart(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	start, err := ComposeStart(date, 12, 30, "AM", time.UTC)
	if err != nil {
		t.Fatalf("ComposeStart: %v", err)
	}

	// 12:30 AM is half past midnight, not half past noon
	want := time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("ComposeStart 12:30 AM = %v, want %v", start, want)
	}
}

func TestComposeStart_InvalidMinute(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if _, err := ComposeStart(date, 9, 20, "AM", time.UTC); !errors.Is(err, ErrInvalidMinute) {
		t.Errorf("minute 20: got %v, want ErrInvalidMinute", err)
	}
}

func TestValidateStart_SameDayPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	if err := ValidateStart(start, now); !errors.Is(err, ErrPastSlot) {
		t.Errorf("same-day past start: got %v, want ErrPastSlot", err)
	}
}

func TestValidateStart_SameDayFuture(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	if err := ValidateStart(start, now); err != nil {
		t.Errorf("same-day future start: got %v, want nil", err)
	}
}

func TestValidateStart_OtherDayNotChecked(t *testing.T) {
	// Only same-day starts are checked locally, the rest is up to the backend
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	if err := ValidateStart(start, now); err != nil {
		t.Errorf("previous-day start: got %v, want nil", err)
	}
}
