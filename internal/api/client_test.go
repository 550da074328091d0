package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/token/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer token")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access":"acc-token","refresh":"ref-token"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	tokens, err := client.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.Access != "acc-token" || tokens.Refresh != "ref-token" {
		t.Errorf("unexpected tokens: %+v", tokens)
	}
}

func TestClient_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	if _, err := client.ListBookings(context.Background(), "my-token"); err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
}

func TestClient_AvailableFilterQuery(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	if _, err := client.ListSlots(context.Background(), "t", true); err != nil {
		t.Fatalf("ListSlots(available): %v", err)
	}
	if gotPath != "/slots/?available=true" {
		t.Errorf("path = %q, want /slots/?available=true", gotPath)
	}

	if _, err := client.ListSlots(context.Background(), "t", false); err != nil {
		t.Fatalf("ListSlots(all): %v", err)
	}
	if gotPath != "/slots/" {
		t.Errorf("path = %q, want /slots/", gotPath)
	}
}

func TestClient_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.Detail != "No active account found with the given credentials" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized should be true for a 401")
	}
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"slot_id":["This field is required."]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	_, err := client.ListBookings(context.Background(), "t")
	if err == nil {
		t.Fatal("expected error")
	}
	if IsUnauthorized(err) {
		t.Error("a 400 is not an auth failure")
	}
	if !strings.Contains(Detail(err), "slot_id") {
		t.Errorf("Detail = %q, want the raw body", Detail(err))
	}
}

func TestClient_CreateBookingMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("slot_id"); got != "42" {
			t.Errorf("slot_id = %q", got)
		}
		if got := r.FormValue("meeting_mode"); got != "online" {
			t.Errorf("meeting_mode = %q", got)
		}
		if !strings.Contains(r.FormValue("purpose"), "Topics:") {
			t.Errorf("purpose = %q, want composed text", r.FormValue("purpose"))
		}

		file, header, err := r.FormFile("attachments")
		if err != nil {
			t.Fatalf("attachment part: %v", err)
		}
		file.Close()
		if header.Filename != "notes.pdf" {
			t.Errorf("attachment name = %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"status":"confirmed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	booking, err := client.CreateBooking(context.Background(), "t", CreateBookingRequest{
		SlotID:      42,
		Purpose:     "Doubt Clarification\n\nTopics: Algebra",
		MeetingMode: "online",
		Attachment: &Attachment{
			FileName: "notes.pdf",
			Content:  strings.NewReader("%PDF-1.4"),
		},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.ID != 7 {
		t.Errorf("booking ID = %d, want 7", booking.ID)
	}
}

func TestClient_CreateBookingWithoutAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("attachments"); err == nil {
			t.Error("no attachment part expected")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":8,"status":"confirmed"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	if _, err := client.CreateBooking(context.Background(), "t", CreateBookingRequest{
		SlotID:      43,
		Purpose:     "General Discussion\n\nTopics: ",
		MeetingMode: "offline",
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
}

func TestClient_DeleteSlot(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	if err := client.DeleteSlot(context.Background(), "t", 9); err != nil {
		t.Fatalf("DeleteSlot: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/slots/9/" {
		t.Errorf("got %s %s, want DELETE /slots/9/", gotMethod, gotPath)
	}
}

func TestClient_CancelBooking(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	if err := client.CancelBooking(context.Background(), "t", 5); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if gotPath != "/bookings/5/cancel/" {
		t.Errorf("path = %q", gotPath)
	}
}
