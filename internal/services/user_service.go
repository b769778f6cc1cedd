package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/repositories"
	"github.com/SAP-F-2025/doccli/internal/session"
	"github.com/SAP-F-2025/doccli/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	sessions  *session.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, sessions *session.Store, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		sessions:  sessions,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Register(ctx context.Context, sess *models.Session, req RegisterRequest) (*models.User, error) {
	if errs := s.validator.Validate(&req); errs != nil {
		return nil, NewValidationError(errs[0].Field, errs[0].Message, errs[0].Value)
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, NewValidationError("role", "must be one of admin, teacher, student", req.Role)
	}

	// Self-registration is restricted to the student role. Only a logged-in
	// admin may create teacher or admin accounts. This check is enforced
	// here in addition to the command gate.
	if !sess.IsAdmin() && role != models.RoleStudent {
		return nil, ErrAdminOnlyRole
	}

	if req.Password != req.Confirm {
		return nil, NewValidationError("password", "passwords do not match", nil)
	}

	// At most one admin may ever exist, regardless of who is registering.
	if role == models.RoleAdmin {
		count, err := s.repo.User().CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to count admin users: %w", err)
		}
		if count > 0 {
			return nil, ErrAdminAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.logger.Info("user registered", "email", user.Email, "role", user.Role)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := &models.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	if err := s.sessions.Save(sess); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "email", user.Email, "role", user.Role)
	return sess, nil
}

func (s *userService) Logout(ctx context.Context) (bool, error) {
	existed, err := s.sessions.Clear()
	if err != nil {
		return false, err
	}
	if existed {
		s.logger.Info("user logged out")
	}
	return existed, nil
}
