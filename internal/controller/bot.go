package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/app"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks"
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
	"github.com/SujitD0/Student-Dashboard/internal/controller/handlers"
	"github.com/SujitD0/Student-Dashboard/internal/controller/state"
	"github.com/SujitD0/Student-Dashboard/internal/service"
	"github.com/SujitD0/Student-Dashboard/internal/session"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	deps     *callbacktypes.Handler
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	authService *service.AuthService,
	slotService *service.SlotService,
	bookingService *service.BookingService,
	sessions *session.Store,
	notifier *app.Notifier,
	logger *zap.Logger,
) *BotController {
	deps := &callbacktypes.Handler{
		AuthService:    authService,
		SlotService:    slotService,
		BookingService: bookingService,
		Sessions:       sessions,
		StateManager:   state.NewManager(),
		Notifier:       notifier,
		Logger:         logger,
	}

	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(deps),
		deps:     deps,
		logger:   logger,
	}
}

// RegisterHandlers wires all command, dialog and callback handlers
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/register", bot.MatchTypeExact, c.handlers.HandleRegister)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Student commands
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/slots", bot.MatchTypeExact, c.handlers.HandleSlots)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)

	// Teacher commands
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myschedule", bot.MatchTypeExact, c.handlers.HandleMySchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addslot", bot.MatchTypeExact, c.handlers.HandleAddSlot)

	// Dialog text steps
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// File uploads during the booking attachment step
	c.bot.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil && update.Message.Document != nil
	}, c.handlers.HandleDocument)

	// Inline keyboard presses
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleCallbackQuery)

	return c.setCommands(ctx)
}

func (c *BotController) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	callbacks.Route(ctx, b, update.CallbackQuery, c.deps)
}

// setCommands publishes the command menu shown by Telegram clients
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Open the dashboard"},
		{Command: "login", Description: "🔐 Sign in"},
		{Command: "register", Description: "📝 Create an account"},
		{Command: "slots", Description: "📚 Browse available slots"},
		{Command: "mybookings", Description: "📅 My bookings (student)"},
		{Command: "myschedule", Description: "🗓 My schedule (teacher)"},
		{Command: "addslot", Description: "➕ Publish availability (teacher)"},
		{Command: "logout", Description: "👋 Sign out"},
		{Command: "help", Description: "❓ Command reference"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context is cancelled
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
