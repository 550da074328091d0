package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Session is the only state the bot persists: the access token and the role
// claim for one Telegram chat, plus the identity decoded from the token.
// Created at login, destroyed at logout.
type Session struct {
	TelegramID   int64
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
	Role         model.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Session) IsTeacher() bool {
	return s.Role == model.RoleTeacher
}

func (s *Session) IsStudent() bool {
	return s.Role == model.RoleStudent
}

// Repository is the persistence behind the store
type Repository interface {
	Get(ctx context.Context, telegramID int64) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, telegramID int64) error
}

// Store keeps sessions in memory, backed by Postgres so a restart does not
// log everyone out
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	repo     Repository
	logger   *zap.Logger
}

func NewStore(repo Repository, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		repo:     repo,
		logger:   logger,
	}
}

// Get returns the session for a chat, loading it from the repository on a
// cache miss. A stored token that no longer decodes is dropped: the chat is
// simply logged out.
func (s *Store) Get(ctx context.Context, telegramID int64) (*Session, error) {
	s.mu.RLock()
	cached, ok := s.sessions[telegramID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	stored, err := s.repo.Get(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	if _, err := DecodeClaims(stored.AccessToken); err != nil {
		s.logger.Warn("Dropping undecodable stored session",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		if delErr := s.repo.Delete(ctx, telegramID); delErr != nil {
			s.logger.Error("Failed to delete broken session", zap.Error(delErr))
		}
		return nil, nil
	}

	s.mu.Lock()
	s.sessions[telegramID] = stored
	s.mu.Unlock()

	return stored, nil
}

// Login decodes the token, persists the session and caches it
func (s *Store) Login(ctx context.Context, telegramID int64, accessToken, refreshToken string) (*Session, error) {
	claims, err := DecodeClaims(accessToken)
	if err != nil {
		return nil, err
	}

	session := &Session{
		TelegramID:   telegramID,
		UserID:       claims.UserID,
		Username:     claims.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         claims.Role,
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[telegramID] = session
	s.mu.Unlock()

	return session, nil
}

// Logout clears all persisted values for the chat
func (s *Store) Logout(ctx context.Context, telegramID int64) error {
	s.mu.Lock()
	delete(s.sessions, telegramID)
	s.mu.Unlock()

	return s.repo.Delete(ctx, telegramID)
}

// Invalidate drops the session after the backend rejected its token
func (s *Store) Invalidate(ctx context.Context, telegramID int64) {
	if err := s.Logout(ctx, telegramID); err != nil {
		s.logger.Error("Failed to invalidate session",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}
