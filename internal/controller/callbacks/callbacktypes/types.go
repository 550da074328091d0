package callbacktypes

import (
	"github.com/SujitD0/Student-Dashboard/internal/app"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
	"github.com/SujitD0/Student-Dashboard/internal/service"
	"github.com/SujitD0/Student-Dashboard/internal/session"
	"go.uber.org/zap"
)

// StateManager is what the handlers need from the dialog state store
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) state.UserState
	SetState(telegramID int64, s state.UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	ClearData(telegramID int64, key string)
	GetAllData(telegramID int64) map[string]interface{}
}

// Handler bundles the dependencies shared by every callback handler
type Handler struct {
	AuthService    *service.AuthService
	SlotService    *service.SlotService
	BookingService *service.BookingService
	Sessions       *session.Store
	StateManager   StateManager
	Notifier       *app.Notifier
	Logger         *zap.Logger
}
