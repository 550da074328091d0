package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// Claims is the part of the access-token payload the bot relies on.
// The token is decoded without signature verification: identity is only used
// for dashboard routing, the backend re-checks it on every request.
type Claims struct {
	UserID   int64
	Username string
	Role     model.Role
}

// DecodeClaims extracts claims from a JWT without validating it.
// Any malformed token is reported as an error and the session is treated
// as absent by the caller.
func DecodeClaims(token string) (*Claims, error) {
	payload := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, payload); err != nil {
		return nil, fmt.Errorf("decode token payload: %w", err)
	}

	userID, ok := payload["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("token payload has no numeric user_id")
	}

	claims := &Claims{UserID: int64(userID)}

	if username, ok := payload["username"].(string); ok {
		claims.Username = username
	}
	if role, ok := payload["role"].(string); ok {
		claims.Role = model.Role(role)
	}

	return claims, nil
}
