package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pushnotify/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRegisterDefaultsRole(t *testing.T) {
	s := New(newTestDB(t))

	u, err := s.Register(context.Background(), RegisterRequest{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != "user" {
		t.Fatalf("expected default role user, got %q", u.Role)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	if _, err := s.Register(ctx, RegisterRequest{Email: "a@example.com"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := s.Register(ctx, RegisterRequest{Email: "a@example.com", Role: "admin"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestGetByEmailMissing(t *testing.T) {
	s := New(newTestDB(t))

	u, err := s.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for a missing user, got %+v", u)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := New(newTestDB(t))
	ctx := context.Background()

	if _, err := s.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := s.Login(ctx, LoginRequest{Email: "a@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := s.Login(ctx, LoginRequest{Email: "a@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "s3cret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestListByRole(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	for _, seed := range []RegisterRequest{
		{Email: "b@example.com", Role: "admin"},
		{Email: "a@example.com", Role: "admin"},
		{Email: "c@example.com", Role: "user"},
	} {
		if _, err := s.Register(ctx, seed); err != nil {
			t.Fatalf("Register %s: %v", seed.Email, err)
		}
	}

	admins, err := s.ListByRole(ctx, "admin")
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if len(admins) != 2 || admins[0].Email != "a@example.com" || admins[1].Email != "b@example.com" {
		t.Fatalf("unexpected admins: %+v", admins)
	}
}
