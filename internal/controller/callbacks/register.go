package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/common"
	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Dialog data keys for the registration form
const (
	DataRegisterName     = "register_name"
	DataRegisterEmail    = "register_email"
	DataRegisterPassword = "register_password"
)

// HandleRegisterRole finishes the registration dialog once a role is picked
func HandleRegisterRole(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	args := common.ParseArgsFromCallback(callback.Data)
	if len(args) != 1 {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	var role model.Role
	switch args[0] {
	case "student":
		role = model.RoleStudent
	case "teacher":
		role = model.RoleTeacher
	default:
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	data := h.StateManager.GetAllData(hc.TelegramID)
	name, _ := data[DataRegisterName].(string)
	email, _ := data[DataRegisterEmail].(string)
	password, _ := data[DataRegisterPassword].(string)
	hc.ClearState()

	if name == "" || email == "" || password == "" {
		hc.Fail(common.ErrInvalidFormat)
		return
	}

	if err := h.AuthService.Register(hc.Ctx, name, email, password, role); err != nil {
		h.Logger.Error("Registration failed",
			zap.String("email", email),
			zap.Error(err))
		hc.Fail(err)
		return
	}

	hc.Answer("")
	if err := hc.EditMessage("✅ Registration successful!\n\nUse /login to sign in.", nil); err != nil {
		h.Logger.Error("Failed to confirm registration", zap.Error(err))
	}
}
