package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateJWT("A12345"); err == nil {
		t.Fatal("GenerateJWT succeeded without JWT_SECRET")
	}
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateJWT("A12345")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: valid=%v err=%v", token != nil && token.Valid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["userId"] != "A12345" {
		t.Fatalf("userId claim = %v, want A12345", claims["userId"])
	}
}
