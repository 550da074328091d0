package app

import (
	"context"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const flashDuration = 3 * time.Second

// TelegramSender is the slice of the bot API the notifier needs
type TelegramSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
}

type flash struct {
	messageID int
	timer     *time.Timer
}

// Notifier shows ephemeral status messages, the bot's version of a toast.
// Each chat has at most one pending flash; a newer flash replaces the older
// one and its dismissal timer.
type Notifier struct {
	sender TelegramSender
	logger *zap.Logger

	mu      sync.Mutex
	pending map[int64]*flash
}

func NewNotifier(sender TelegramSender, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:  sender,
		logger:  logger,
		pending: make(map[int64]*flash),
	}
}

// Flash sends a status message and deletes it after a few seconds
func (n *Notifier) Flash(ctx context.Context, chatID int64, text string) {
	n.dismiss(chatID)

	msg, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		n.logger.Error("Failed to send flash message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	messageID := msg.ID
	n.pending[chatID] = &flash{
		messageID: messageID,
		timer: time.AfterFunc(flashDuration, func() {
			n.expire(chatID, messageID)
		}),
	}
}

// dismiss removes the pending flash of a chat early, if any
func (n *Notifier) dismiss(chatID int64) {
	n.mu.Lock()
	current, ok := n.pending[chatID]
	if ok {
		current.timer.Stop()
		delete(n.pending, chatID)
	}
	n.mu.Unlock()

	if ok {
		n.deleteMessage(chatID, current.messageID)
	}
}

// expire fires from the timer once the display lifetime is over
func (n *Notifier) expire(chatID int64, messageID int) {
	n.mu.Lock()
	current, ok := n.pending[chatID]
	if ok && current.messageID == messageID {
		delete(n.pending, chatID)
	}
	n.mu.Unlock()

	// A replaced flash was already deleted by dismiss
	if ok && current.messageID == messageID {
		n.deleteMessage(chatID, messageID)
	}
}

func (n *Notifier) deleteMessage(chatID int64, messageID int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := n.sender.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	}); err != nil {
		n.logger.Warn("Failed to delete flash message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err))
	}
}
