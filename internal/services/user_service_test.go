package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/session"
	"github.com/SAP-F-2025/doccli/internal/validator"
)

func newUserServiceForTest(t *testing.T) (UserService, *fakeRepo, *session.Store) {
	t.Helper()
	repo := newFakeRepo()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	svc := NewUserService(repo, sessions, testLogger(), validator.New())
	return svc, repo, sessions
}

func registerReq(name, email, role, password string) RegisterRequest {
	return RegisterRequest{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: password,
		Confirm:  password,
	}
}

func TestRegisterSelfService(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		wantErr error
	}{
		{name: "student allowed", role: "student", wantErr: nil},
		{name: "teacher rejected", role: "teacher", wantErr: ErrAdminOnlyRole},
		{name: "admin rejected", role: "admin", wantErr: ErrAdminOnlyRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newUserServiceForTest(t)
			_, err := svc.Register(context.Background(), nil, registerReq("Alice", "alice@x.com", tt.role, "pass123"))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register(%s) error = %v, want %v", tt.role, err, tt.wantErr)
			}
		})
	}
}

func TestRegisterByAdminSession(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	admin := &models.Session{UserID: "1", Name: "Root", Email: "root@x.com", Role: models.RoleAdmin}

	user, err := svc.Register(context.Background(), admin, registerReq("Tina", "tina@x.com", "teacher", "pass123"))
	if err != nil {
		t.Fatalf("Register(teacher) by admin failed: %v", err)
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("role = %s, want teacher", user.Role)
	}
	if user.ID == "" {
		t.Error("expected a generated user id")
	}
}

func TestRegisterSecondAdmin(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, nil, registerReq("Root", "root@x.com", "admin", "pass123")); !errors.Is(err, ErrAdminOnlyRole) {
		t.Fatalf("self-registered admin error = %v, want %v", err, ErrAdminOnlyRole)
	}

	// Seed the one allowed admin directly, then try to add another while
	// logged in as that admin.
	admin := &models.Session{UserID: "1", Name: "Root", Email: "root@x.com", Role: models.RoleAdmin}
	if _, err := svc.Register(ctx, admin, registerReq("Root", "root@x.com", "admin", "pass123")); err != nil {
		t.Fatalf("first admin registration failed: %v", err)
	}
	_, err := svc.Register(ctx, admin, registerReq("Second", "second@x.com", "admin", "pass123"))
	if !errors.Is(err, ErrAdminAlreadyExists) {
		t.Fatalf("second admin error = %v, want %v", err, ErrAdminAlreadyExists)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, nil, registerReq("Alice", "alice@x.com", "student", "pass123")); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.Register(ctx, nil, registerReq("Alice Again", "alice@x.com", "student", "pass456"))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate registration error = %v, want %v", err, ErrDuplicateEmail)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	req := registerReq("Alice", "alice@x.com", "student", "pass123")
	req.Confirm = "different"
	_, err := svc.Register(context.Background(), nil, req)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("mismatched passwords error = %v, want *ValidationError", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _, sessions := newUserServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, nil, registerReq("Alice", "alice@x.com", "student", "pass123")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	// Wrong password: InvalidCredentials and no session file is created.
	_, err := svc.Login(ctx, LoginRequest{Email: "alice@x.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
	if sess, err := sessions.Load(); err != nil || sess != nil {
		t.Fatalf("session after failed login = %v, %v; want nil, nil", sess, err)
	}

	// Unknown user.
	if _, err := svc.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "pass123"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user error = %v, want %v", err, ErrUserNotFound)
	}

	// Correct password: session persisted with the student role.
	sess, err := svc.Login(ctx, LoginRequest{Email: "alice@x.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Role != models.RoleStudent || sess.Email != "alice@x.com" {
		t.Errorf("session = %+v, want student alice@x.com", sess)
	}
	loaded, err := sessions.Load()
	if err != nil || loaded == nil {
		t.Fatalf("session not persisted: %v, %v", loaded, err)
	}
	if *loaded != *sess {
		t.Errorf("persisted session = %+v, want %+v", loaded, sess)
	}

	// Logout then logout again: the second is a no-op.
	existed, err := svc.Logout(ctx)
	if err != nil || !existed {
		t.Fatalf("logout = %v, %v; want true, nil", existed, err)
	}
	if sess, _ := sessions.Load(); sess != nil {
		t.Fatal("session still present after logout")
	}
	existed, err = svc.Logout(ctx)
	if err != nil || existed {
		t.Fatalf("second logout = %v, %v; want false, nil", existed, err)
	}
}

func TestLoginLeavesExistingSessionOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := newFakeRepo()
	sessions := session.NewStore(path)
	svc := NewUserService(repo, sessions, testLogger(), validator.New())
	ctx := context.Background()

	if _, err := svc.Register(ctx, nil, registerReq("Alice", "alice@x.com", "student", "pass123")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "alice@x.com", Password: "pass123"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read session file: %v", err)
	}

	if _, err := svc.Login(ctx, LoginRequest{Email: "alice@x.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("session file missing after failed login: %v", err)
	}
	if string(before) != string(after) {
		t.Error("failed login modified the session file")
	}
}
