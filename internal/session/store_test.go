package session

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

type fakeRepo struct {
	sessions map[int64]*Session
	gets     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[int64]*Session)}
}

func (r *fakeRepo) Get(ctx context.Context, telegramID int64) (*Session, error) {
	r.gets++
	return r.sessions[telegramID], nil
}

func (r *fakeRepo) Save(ctx context.Context, s *Session) error {
	r.sessions[s.TelegramID] = s
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, telegramID int64) error {
	delete(r.sessions, telegramID)
	return nil
}

func studentToken(t *testing.T) string {
	return makeToken(t, map[string]interface{}{
		"user_id":  float64(5),
		"username": "carol@example.com",
		"role":     "student",
	})
}

func TestStore_LoginAndGet(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, zap.NewNop())
	ctx := context.Background()

	sess, err := store.Login(ctx, 100, studentToken(t), "refresh")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != 5 || !sess.IsStudent() {
		t.Errorf("unexpected session %+v", sess)
	}
	if repo.sessions[100] == nil {
		t.Error("session was not persisted")
	}

	got, err := store.Get(ctx, 100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Error("Get should serve the cached session")
	}
}

func TestStore_LoginRejectsBrokenToken(t *testing.T) {
	store := NewStore(newFakeRepo(), zap.NewNop())

	if _, err := store.Login(context.Background(), 100, "garbage", ""); err == nil {
		t.Error("expected error for an undecodable token")
	}
}

func TestStore_GetLoadsFromRepository(t *testing.T) {
	repo := newFakeRepo()
	repo.sessions[100] = &Session{
		TelegramID:  100,
		UserID:      5,
		AccessToken: studentToken(t),
		Role:        model.RoleStudent,
	}
	store := NewStore(repo, zap.NewNop())
	ctx := context.Background()

	sess, err := store.Get(ctx, 100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess == nil || sess.UserID != 5 {
		t.Fatalf("session = %+v", sess)
	}

	// Second Get is served from the cache
	if _, err := store.Get(ctx, 100); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if repo.gets != 1 {
		t.Errorf("repository hit %d times, want 1", repo.gets)
	}
}

func TestStore_GetDropsUndecodableStoredSession(t *testing.T) {
	repo := newFakeRepo()
	repo.sessions[100] = &Session{TelegramID: 100, AccessToken: "garbage"}
	store := NewStore(repo, zap.NewNop())

	sess, err := store.Get(context.Background(), 100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess != nil {
		t.Error("broken session should be treated as absent")
	}
	if repo.sessions[100] != nil {
		t.Error("broken session should be removed from storage")
	}
}

func TestStore_Logout(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := store.Login(ctx, 100, studentToken(t), ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := store.Logout(ctx, 100); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	sess, err := store.Get(ctx, 100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess != nil {
		t.Error("session should be gone after logout")
	}
}
