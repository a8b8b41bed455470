package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"
)

type stubUserStore struct {
	users          map[string]*models.User
	lastLoginErr   error
	lastLoginCalls int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*models.User)}
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	s.users[user.Username] = user
	return nil
}

func (s *stubUserStore) FindByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (s *stubUserStore) Exists(_ context.Context, username, email string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserStore) TouchLastLogin(_ context.Context, _ string) error {
	s.lastLoginCalls++
	return s.lastLoginErr
}

func TestRegisterAndLogin(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, "test-secret")

	userID, err := svc.Register(context.Background(), "alice", "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if user.ID != userID {
		t.Errorf("Login returned user %q, registered %q", user.ID, userID)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Token must validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("Token carries user %q, want %q", claims.UserID, userID)
	}
	if until := time.Until(claims.ExpiresAt.Time); until < 6*24*time.Hour {
		t.Errorf("Token should be valid for a week, expires in %v", until)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, "test-secret")

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "battery-staple"); err == nil {
		t.Error("Expected an error for a wrong password")
	}
}

func TestLoginSurvivesLastLoginWriteFailure(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, "test-secret")

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	store.lastLoginErr = fmt.Errorf("write concern timeout")
	token, _, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("A failed last-login write must not abort the login: %v", err)
	}
	if store.lastLoginCalls != 1 {
		t.Errorf("Expected the last-login write to be attempted, got %d calls", store.lastLoginCalls)
	}
	if _, err := svc.ValidateToken(token); err != nil {
		t.Errorf("Token issued on a degraded login must still validate: %v", err)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, "test-secret")

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "other@example.com", "another-pass"); err == nil {
		t.Error("Expected an error for a duplicate username")
	}
}
