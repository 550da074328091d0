package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type fakeSender struct {
	mu      sync.Mutex
	nextID  int
	sent    []string
	deleted []int
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.sent = append(f.sent, params.Text)
	return &models.Message{ID: f.nextID}, nil
}

func (f *fakeSender) DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, params.MessageID)
	return true, nil
}

func (f *fakeSender) snapshot() (sent []string, deleted []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...), append([]int(nil), f.deleted...)
}

func TestNotifier_FlashSends(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, zap.NewNop())

	n.Flash(context.Background(), 100, "✅ Saved")

	sent, deleted := sender.snapshot()
	if len(sent) != 1 || sent[0] != "✅ Saved" {
		t.Errorf("sent = %v", sent)
	}
	if len(deleted) != 0 {
		t.Errorf("nothing should be deleted yet, got %v", deleted)
	}
}

func TestNotifier_NewFlashReplacesPending(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, zap.NewNop())

	n.Flash(context.Background(), 100, "first")
	n.Flash(context.Background(), 100, "second")

	sent, deleted := sender.snapshot()
	if len(sent) != 2 {
		t.Fatalf("sent = %v", sent)
	}
	// The first flash is taken down as soon as the second arrives
	if len(deleted) != 1 || deleted[0] != 1 {
		t.Errorf("deleted = %v, want [1]", deleted)
	}
}

func TestNotifier_SeparateChats(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, zap.NewNop())

	n.Flash(context.Background(), 100, "chat A")
	n.Flash(context.Background(), 200, "chat B")

	_, deleted := sender.snapshot()
	if len(deleted) != 0 {
		t.Errorf("flashes in different chats must not displace each other, deleted %v", deleted)
	}
}

func TestNotifier_ExpiresAfterLifetime(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, zap.NewNop())

	n.Flash(context.Background(), 100, "bye")

	deadline := time.Now().Add(flashDuration + 2*time.Second)
	for time.Now().Before(deadline) {
		if _, deleted := sender.snapshot(); len(deleted) == 1 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Error("flash message was never deleted")
}
