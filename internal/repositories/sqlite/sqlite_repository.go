package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/repositories"
)

// SQLiteRepository implements the main Repository interface on a local
// SQLite database.
type SQLiteRepository struct {
	db *gorm.DB

	user     repositories.UserRepository
	document repositories.DocumentRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewSQLiteRepository creates a repository manager with all sub-repositories.
func NewSQLiteRepository(config RepositoryConfig) *SQLiteRepository {
	return &SQLiteRepository{
		db:       config.DB,
		user:     NewUserSQLite(config.DB),
		document: NewDocumentSQLite(config.DB),
	}
}

// Initialize creates the schema if it does not exist yet.
func (r *SQLiteRepository) Initialize() error {
	if err := r.db.AutoMigrate(&models.User{}, &models.Document{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) User() repositories.UserRepository {
	return r.user
}

func (r *SQLiteRepository) Document() repositories.DocumentRepository {
	return r.document
}
