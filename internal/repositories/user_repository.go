package repositories

import (
	"context"

	"github.com/SAP-F-2025/doccli/internal/models"
)

// UserRepository persists user records. Lifecycle is create-only: there are
// no update or delete operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
