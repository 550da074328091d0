package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Attachment is an optional file forwarded with a booking
type Attachment struct {
	FileName string
	Content  io.Reader
}

// CreateBookingRequest becomes the multipart body of POST bookings/
type CreateBookingRequest struct {
	SlotID      int64
	Purpose     string
	MeetingMode model.MeetingMode
	Attachment  *Attachment
}

// ListBookings fetches the caller's bookings. The backend scopes the list by
// role: students see their own bookings, teachers the ones on their slots.
func (c *Client) ListBookings(ctx context.Context, token string) ([]*model.Booking, error) {
	var bookings []*model.Booking
	if err := c.getJSON(ctx, "bookings/", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a slot via a multipart request
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*model.Booking, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("slot_id", strconv.FormatInt(req.SlotID, 10)); err != nil {
		return nil, fmt.Errorf("write slot_id field: %w", err)
	}
	if err := writer.WriteField("purpose", req.Purpose); err != nil {
		return nil, fmt.Errorf("write purpose field: %w", err)
	}
	if err := writer.WriteField("meeting_mode", string(req.MeetingMode)); err != nil {
		return nil, fmt.Errorf("write meeting_mode field: %w", err)
	}

	if req.Attachment != nil {
		name := req.Attachment.FileName
		if name == "" {
			name = uuid.New().String()
		}
		part, err := writer.CreateFormFile("attachments", name)
		if err != nil {
			return nil, fmt.Errorf("create attachment part: %w", err)
		}
		if _, err := io.Copy(part, req.Attachment.Content); err != nil {
			return nil, fmt.Errorf("copy attachment: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	var booking model.Booking
	err := c.do(ctx, http.MethodPost, "bookings/", token, &buf, writer.FormDataContentType(), &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking; the backend frees the slot
func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) error {
	return c.postJSON(ctx, fmt.Sprintf("bookings/%d/cancel/", bookingID), token, nil, nil)
}
