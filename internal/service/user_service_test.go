package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "inventory/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (dom.User, error)
	createFn        func(ctx context.Context, username, passwordHash string) (dom.User, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	return m.getByUsernameFn(ctx, username)
}
func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	return m.createFn(ctx, username, passwordHash)
}

func TestUserService_Register(t *testing.T) {
	var storedHash string
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, username, passwordHash string) (dom.User, error) {
			storedHash = passwordHash
			return dom.User{ID: 1, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}, nil
		},
	}
	svc := NewUserService(repo)

	u, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("Username = %q, want alice", u.Username)
	}
	if storedHash == "pw1" || storedHash == "" {
		t.Fatal("password must be stored as a hash, never in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw1")); err != nil {
		t.Errorf("stored hash does not verify against original password: %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, username, passwordHash string) (dom.User, error) {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_uq"}
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}
}

func TestUserService_Register_EmptyCredentials(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"   ", "pw"},
	} {
		if _, err := svc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Register(%q, %q): err = %v, want ErrInvalidCredentials", tc.username, tc.password, err)
		}
	}
}

func TestUserService_ValidateCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (dom.User, error) {
			if username != "alice" {
				return dom.User{}, pgx.ErrNoRows
			}
			return dom.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewUserService(repo)

	u, err := svc.ValidateCredentials(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("ValidateCredentials: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("ID = %d, want 1", u.ID)
	}

	if _, err := svc.ValidateCredentials(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.ValidateCredentials(context.Background(), "bob", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}
