package repositories

import (
	"context"

	"github.com/SAP-F-2025/doccli/internal/models"
)

// DocumentRepository persists document metadata records.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]*models.Document, error)
	GetByName(ctx context.Context, name string) (*models.Document, error)

	UpdateSummary(ctx context.Context, id uint, summary string) error
	DeleteByName(ctx context.Context, name string) error
}
