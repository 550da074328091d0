package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/model"
	"github.com/SujitD0/Student-Dashboard/internal/session"
)

type AuthService struct {
	client   *api.Client
	sessions *session.Store
	logger   *zap.Logger
}

func NewAuthService(client *api.Client, sessions *session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, logger: logger}
}

// Login exchanges credentials for tokens and opens a session for the chat
func (s *AuthService) Login(ctx context.Context, telegramID int64, email, password string) (*session.Session, error) {
	tokens, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Login(ctx, telegramID, tokens.Access, tokens.Refresh)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.Int64("telegram_id", telegramID),
		zap.Int64("user_id", sess.UserID),
		zap.String("role", string(sess.Role)))

	return sess, nil
}

// Register creates an account. The email doubles as the username and the
// full name is split on its first space, like the web form.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string, role model.Role) error {
	firstName, lastName := splitName(fullName)

	err := s.client.Register(ctx, api.RegisterRequest{
		Username:  email,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Role:      string(role),
	})
	if err != nil {
		return err
	}

	s.logger.Info("User registered",
		zap.String("email", email),
		zap.String("role", string(role)))

	return nil
}

// Logout destroys the chat's session
func (s *AuthService) Logout(ctx context.Context, telegramID int64) error {
	if err := s.sessions.Logout(ctx, telegramID); err != nil {
		return err
	}

	s.logger.Info("User logged out", zap.Int64("telegram_id", telegramID))
	return nil
}

func splitName(fullName string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
