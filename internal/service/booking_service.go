package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Purpose choices offered in the booking form
var BookingPurposes = []string{
	"Doubt Clarification",
	"Project Guidance",
	"Assessment",
	"General Discussion",
}

// BookingForm collects what the booking dialog gathers before submit
type BookingForm struct {
	SlotID         int64
	Purpose        string
	Topics         string
	MeetingMode    model.MeetingMode
	AttachmentName string
	AttachmentURL  string // Telegram file download link, empty when skipped
}

type BookingService struct {
	client     *api.Client
	downloader *http.Client
	logger     *zap.Logger
}

func NewBookingService(client *api.Client, logger *zap.Logger) *BookingService {
	return &BookingService{
		client:     client,
		downloader: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// List fetches the caller's bookings, newest first per the backend ordering
func (s *BookingService) List(ctx context.Context, token string) ([]*model.Booking, error) {
	return s.client.ListBookings(ctx, token)
}

// ComposePurpose merges the purpose choice with the free-text topics field,
// the same way the web form did
func ComposePurpose(purpose, topics string) string {
	return fmt.Sprintf("%s\n\nTopics: %s", strings.TrimSpace(purpose), strings.TrimSpace(topics))
}

// Create books a slot. When the student attached a document, it is streamed
// from Telegram's file storage straight into the multipart body.
func (s *BookingService) Create(ctx context.Context, token string, form BookingForm) (*model.Booking, error) {
	req := api.CreateBookingRequest{
		SlotID:      form.SlotID,
		Purpose:     ComposePurpose(form.Purpose, form.Topics),
		MeetingMode: form.MeetingMode,
	}

	if form.AttachmentURL != "" {
		content, cleanup, err := s.openAttachment(ctx, form.AttachmentURL)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		req.Attachment = &api.Attachment{FileName: form.AttachmentName, Content: content}
	}

	booking, err := s.client.CreateBooking(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("slot_id", form.SlotID),
		zap.String("meeting_mode", string(form.MeetingMode)))

	return booking, nil
}

// Cancel cancels a booking; the backend frees the slot again
func (s *BookingService) Cancel(ctx context.Context, token string, bookingID int64) error {
	if err := s.client.CancelBooking(ctx, token, bookingID); err != nil {
		return err
	}

	s.logger.Info("Booking cancelled", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *BookingService) openAttachment(ctx context.Context, url string) (io.Reader, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build attachment request: %w", err)
	}

	resp, err := s.downloader.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("download attachment: status %d", resp.StatusCode)
	}

	return resp.Body, func() { resp.Body.Close() }, nil
}
