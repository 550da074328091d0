package common

import (
	"errors"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/service"
)

// Shared handler errors
var (
	ErrNoSession     = errors.New("no active session")
	ErrNotATeacher   = errors.New("user is not a teacher")
	ErrNotAStudent   = errors.New("user is not a student")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage maps an error to the text shown to the user
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoSession):
		return "🔐 You are not logged in. Use /login first."
	case errors.Is(err, ErrNotATeacher):
		return "❌ This action is available to teachers only."
	case errors.Is(err, ErrNotAStudent):
		return "❌ This action is available to students only."
	case errors.Is(err, ErrNoMessage):
		return "❌ Failed to process the message."
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format."
	case errors.Is(err, service.ErrPastSlot):
		return "❌ Cannot create slots in the past. Please select a future time."
	case api.IsUnauthorized(err):
		return "🔐 Your session has expired. Use /login to sign in again."
	default:
		if detail := api.Detail(err); detail != "" {
			return "❌ " + detail
		}
		return "❌ Something went wrong. Please try again."
	}
}
