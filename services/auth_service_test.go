package services

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterLoginAndParseToken(t *testing.T) {
	db := openDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, loggedIn, err := svc.Login(context.Background(), "ada@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("login returned user %d, want %d", loggedIn.ID, user.ID)
	}

	userID, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token resolved to user %d, want %d", userID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := openDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "supersecret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "supersecret")
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openDB(t)
	svc := NewAuthService(db)

	input := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "supersecret"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrAuthEmailTaken) {
		t.Fatalf("expected ErrAuthEmailTaken, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	db := openDB(t)
	svc := NewAuthService(db)

	if _, err := svc.ParseToken("not-a-token"); !errors.Is(err, ErrAuthInvalidToken) {
		t.Fatalf("expected ErrAuthInvalidToken, got %v", err)
	}
}
