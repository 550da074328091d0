package api

import (
	"context"
	"fmt"
	"time"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// CreateSlotRequest is the body of POST slots/
type CreateSlotRequest struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Topic           string    `json:"topic"`
	MeetingLink     string    `json:"meeting_link"`
}

// ListSlots fetches slots, optionally only the ones still open for booking
func (c *Client) ListSlots(ctx context.Context, token string, availableOnly bool) ([]*model.Slot, error) {
	path := "slots/"
	if availableOnly {
		path = "slots/?available=true"
	}

	var slots []*model.Slot
	if err := c.getJSON(ctx, path, token, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateSlot publishes a new availability window
func (c *Client) CreateSlot(ctx context.Context, token string, req CreateSlotRequest) (*model.Slot, error) {
	var slot model.Slot
	if err := c.postJSON(ctx, "slots/", token, req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteSlot removes a slot. If the slot is booked the backend cancels the
// booking as part of the delete; the bot only warns about it.
func (c *Client) DeleteSlot(ctx context.Context, token string, slotID int64) error {
	return c.delete(ctx, fmt.Sprintf("slots/%d/", slotID), token)
}
