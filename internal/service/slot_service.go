package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// SlotFilter holds the student's optional browse criteria. Zero values mean
// "no constraint".
type SlotFilter struct {
	TeacherID int64
	Date      string // local calendar day, 2006-01-02
	Topic     string // case-insensitive substring
}

func (f SlotFilter) IsEmpty() bool {
	return f.TeacherID == 0 && f.Date == "" && f.Topic == ""
}

// FilterSlots returns the slots matching every supplied criterion. Slots that
// are not available never pass, whatever the criteria say.
func FilterSlots(slots []*model.Slot, f SlotFilter) []*model.Slot {
	var matched []*model.Slot
	for _, slot := range slots {
		if !slot.IsAvailable {
			continue
		}
		if f.TeacherID != 0 && (slot.Teacher == nil || slot.Teacher.ID != f.TeacherID) {
			continue
		}
		if f.Date != "" && slot.Start.Local().Format("2006-01-02") != f.Date {
			continue
		}
		if f.Topic != "" && !strings.Contains(strings.ToLower(slot.Topic), strings.ToLower(f.Topic)) {
			continue
		}
		matched = append(matched, slot)
	}
	return matched
}

// UniqueTeachers collects the distinct teachers of a slot list in first-seen
// order. These are the choices for the teacher filter.
func UniqueTeachers(slots []*model.Slot) []*model.User {
	seen := make(map[int64]bool)
	var teachers []*model.User
	for _, slot := range slots {
		if slot.Teacher == nil || seen[slot.Teacher.ID] {
			continue
		}
		seen[slot.Teacher.ID] = true
		teachers = append(teachers, slot.Teacher)
	}
	return teachers
}

// SlotService loads and mutates slots through the backend. Every mutation is
// followed by a refetch in the handlers; nothing is cached here.
type SlotService struct {
	client *api.Client
	logger *zap.Logger
}

func NewSlotService(client *api.Client, logger *zap.Logger) *SlotService {
	return &SlotService{client: client, logger: logger}
}

// ListAvailable fetches the slots still open for booking
func (s *SlotService) ListAvailable(ctx context.Context, token string) ([]*model.Slot, error) {
	return s.client.ListSlots(ctx, token, true)
}

// ListAll fetches every slot visible to the caller
func (s *SlotService) ListAll(ctx context.Context, token string) ([]*model.Slot, error) {
	return s.client.ListSlots(ctx, token, false)
}

// Create composes the start from the picker values, applies the past-time
// policy and publishes the slot
func (s *SlotService) Create(ctx context.Context, token string, date time.Time, hour12, minute int, period string, durationMinutes int, topic, meetingLink string) (*model.Slot, error) {
	start, err := ComposeStart(date, hour12, minute, period, time.Local)
	if err != nil {
		return nil, err
	}

	if err := ValidateStart(start, time.Now()); err != nil {
		return nil, err
	}

	req := api.CreateSlotRequest{
		Start:           start,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Topic:           topic,
		MeetingLink:     meetingLink,
	}

	slot, err := s.client.CreateSlot(ctx, token, req)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("Slot created",
		zap.Int64("slot_id", slot.ID),
		zap.Time("start", start),
		zap.Int("duration_minutes", durationMinutes))

	return slot, nil
}

// Delete removes a slot; a booked slot's booking is cancelled by the backend
func (s *SlotService) Delete(ctx context.Context, token string, slotID int64) error {
	if err := s.client.DeleteSlot(ctx, token, slotID); err != nil {
		return err
	}

	s.logger.Info("Slot deleted", zap.Int64("slot_id", slotID))
	return nil
}
