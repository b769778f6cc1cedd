package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/repositories"
)

type documentSQLite struct {
	db *gorm.DB
}

func NewDocumentSQLite(db *gorm.DB) repositories.DocumentRepository {
	return &documentSQLite{db: db}
}

func (r *documentSQLite) Create(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document record: %w", err)
	}
	return nil
}

func (r *documentSQLite) List(ctx context.Context) ([]*models.Document, error) {
	var docs []*models.Document
	err := r.db.WithContext(ctx).Order("id ASC").Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (r *documentSQLite) GetByName(ctx context.Context, name string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document %s: %w", name, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document by name: %w", err)
	}
	return &doc, nil
}

func (r *documentSQLite) UpdateSummary(ctx context.Context, id uint, summary string) error {
	err := r.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).
		Update("summary", summary).Error
	if err != nil {
		return fmt.Errorf("failed to update document summary: %w", err)
	}
	return nil
}

func (r *documentSQLite) DeleteByName(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Document{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document %s: %w", name, repositories.ErrNotFound)
	}
	return nil
}
