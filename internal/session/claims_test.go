package session

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/SujitD0/Student-Dashboard/internal/model"
)

// makeToken builds an unsigned JWT with the given payload. The decoder never
// checks the signature, so "sig" is fine.
func makeToken(t *testing.T, payload map[string]interface{}) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestDecodeClaims(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		"user_id":  float64(42),
		"username": "alice@example.com",
		"role":     "teacher",
		"exp":      4102444800,
	})

	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice@example.com" {
		t.Errorf("Username = %q", claims.Username)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
}

func TestDecodeClaims_MissingOptionalFields(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		"user_id": float64(7),
	})

	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "" || claims.Role != "" {
		t.Errorf("optional claims should be empty, got %+v", claims)
	}
}

func TestDecodeClaims_MissingUserID(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		"username": "bob",
	})

	if _, err := DecodeClaims(token); err == nil {
		t.Error("expected error for token without user_id")
	}
}

func TestDecodeClaims_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"not-a-jwt",
		"a.b",
		"!!!.???.###",
	} {
		if _, err := DecodeClaims(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}
