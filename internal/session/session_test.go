package session

import (
	"context"
	"testing"

	"github.com/Ramoniswack/vinc/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	verifier, err := NewStaticVerifier(DefaultAdminUser, DefaultAdminPassword)
	if err != nil {
		t.Fatalf("NewStaticVerifier: %v", err)
	}
	s, err := New(context.Background(), storage.NewMemory(), verifier)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestLoginSuccess(t *testing.T) {
	s := newTestStore(t)

	if !s.Login(context.Background(), "admin", "admin123") {
		t.Fatal("expected login to succeed")
	}

	user, ok := s.Current()
	if !ok {
		t.Fatal("expected an authenticated session")
	}
	if user.Username != "admin" || !user.IsAdmin {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if s.Login(ctx, "admin", "wrong") {
		t.Fatal("expected login to fail")
	}
	if _, ok := s.Current(); ok {
		t.Error("failed login must not create a session")
	}

	// A failed login must also keep an existing session intact.
	s.Login(ctx, "admin", "admin123")
	s.Login(ctx, "admin", "wrong")
	if _, ok := s.Current(); !ok {
		t.Error("failed login must not destroy the prior session")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestStore(t)

	if s.Login(context.Background(), "root", "admin123") {
		t.Error("expected login to fail for unknown user")
	}
}

func TestLogout(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Login(ctx, "admin", "admin123")
	s.Logout(ctx)

	if _, ok := s.Current(); ok {
		t.Error("expected no session after logout")
	}

	// Logout on an empty session is fine.
	s.Logout(ctx)
}

func TestRehydration(t *testing.T) {
	kv := storage.NewTestKV(t)
	ctx := context.Background()
	verifier, _ := NewStaticVerifier(DefaultAdminUser, DefaultAdminPassword)

	s1, err := New(ctx, kv, verifier)
	if err != nil {
		t.Fatal(err)
	}
	s1.Login(ctx, "admin", "admin123")

	s2, err := New(ctx, kv, verifier)
	if err != nil {
		t.Fatal(err)
	}
	user, ok := s2.Current()
	if !ok || user.Username != "admin" {
		t.Fatalf("expected rehydrated session, got %+v ok=%v", user, ok)
	}
}
