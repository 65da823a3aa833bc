package auth

import (
	"testing"

	"gearshift-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret-at-least-32-characters-long"
	user := &models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleAdmin}

	tokenStr, err := GenerateToken(secret, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}

	claims := token.Claims.(*SessionClaims)
	if claims.UserID != "u1" {
		t.Fatalf("user_id = %q", claims.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role = %q", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("token must expire")
	}
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleMechanic}
	tokenStr, err := GenerateToken("test-secret-at-least-32-characters-long", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("a-different-secret-of-sufficient-len"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("token verified with the wrong secret")
	}
}
