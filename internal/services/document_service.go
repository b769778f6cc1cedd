package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/repositories"
)

type documentService struct {
	repo      repositories.Repository
	extractor Extractor
	generator Generator
	paths     Paths
	logger    *slog.Logger
}

func NewDocumentService(repo repositories.Repository, extractor Extractor, generator Generator, paths Paths, logger *slog.Logger) DocumentService {
	return &documentService{
		repo:      repo,
		extractor: extractor,
		generator: generator,
		paths:     paths,
		logger:    logger,
	}
}

func (s *documentService) Upload(ctx context.Context, sess *models.Session, path string) (*models.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".txt" {
		return nil, ErrUnsupportedFile
	}

	name := filepath.Base(path)
	dest := filepath.Join(s.paths.DocsDir, name)
	if err := copyFile(path, dest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}

	doc := &models.Document{
		Name:      name,
		Owner:     sess.Email,
		Timestamp: time.Now().UTC(),
		Type:      ext,
	}
	if err := s.repo.Document().Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document uploaded", "name", name, "owner", sess.Email, "type", ext)
	return doc, nil
}

func (s *documentService) Summarize(ctx context.Context, sess *models.Session, docName string) (string, error) {
	path := filepath.Join(s.paths.DocsDir, docName)
	if _, err := os.Stat(path); err != nil {
		return "", ErrDocumentNotFound
	}

	text, err := s.extractor.Text(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract document text: %w", err)
	}

	prompt := fmt.Sprintf("Summarize this for a teacher:\n\n%s", text)
	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &ExternalServiceError{Service: "generation service", Err: err}
	}

	// Best effort: keep the stored metadata in sync when a record exists.
	// Documents placed in the docs directory out of band have none.
	if doc, err := s.repo.Document().GetByName(ctx, docName); err == nil {
		if err := s.repo.Document().UpdateSummary(ctx, doc.ID, summary); err != nil {
			s.logger.Warn("failed to store summary", "name", docName, "error", err)
		}
	}

	return summary, nil
}

func (s *documentService) List(ctx context.Context) ([]*models.Document, error) {
	return s.repo.Document().List(ctx)
}

func (s *documentService) Delete(ctx context.Context, sess *models.Session, name string) error {
	doc, err := s.repo.Document().GetByName(ctx, name)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrDocumentNotFound
		}
		return err
	}

	// Ownership check, evaluated after fetching the record: an admin may
	// delete anything, a teacher only their own uploads.
	if !sess.IsAdmin() && doc.Owner != sess.Email {
		return ErrNotOwner
	}

	if err := s.repo.Document().DeleteByName(ctx, name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.paths.DocsDir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("failed to remove document file", "name", name, "error", err)
	}

	s.logger.Info("document deleted", "name", name, "by", sess.Email)
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
