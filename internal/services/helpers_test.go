package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ===== IN-MEMORY REPOSITORY =====

type fakeRepo struct {
	users *fakeUserRepo
	docs  *fakeDocRepo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: &fakeUserRepo{byEmail: make(map[string]*models.User)},
		docs:  &fakeDocRepo{},
	}
}

func (r *fakeRepo) User() repositories.UserRepository {
	return r.users
}

func (r *fakeRepo) Document() repositories.DocumentRepository {
	return r.docs
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return fmt.Errorf("user %s: %w", user.Email, repositories.ErrDuplicate)
	}
	copied := *user
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, repositories.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.UserRole) (int64, error) {
	var count int64
	for _, user := range r.byEmail {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakeDocRepo struct {
	nextID uint64
	docs   []*models.Document
}

func (r *fakeDocRepo) Create(_ context.Context, doc *models.Document) error {
	doc.ID = uint(atomic.AddUint64(&r.nextID, 1))
	copied := *doc
	r.docs = append(r.docs, &copied)
	return nil
}

func (r *fakeDocRepo) List(_ context.Context) ([]*models.Document, error) {
	out := make([]*models.Document, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

func (r *fakeDocRepo) GetByName(_ context.Context, name string) (*models.Document, error) {
	for _, doc := range r.docs {
		if doc.Name == name {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", name, repositories.ErrNotFound)
}

func (r *fakeDocRepo) UpdateSummary(_ context.Context, id uint, summary string) error {
	for _, doc := range r.docs {
		if doc.ID == id {
			s := summary
			doc.Summary = &s
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeDocRepo) DeleteByName(_ context.Context, name string) error {
	for i, doc := range r.docs {
		if doc.Name == name {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("document %s: %w", name, repositories.ErrNotFound)
}

// ===== FAKE EXTERNAL CAPABILITIES =====

type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) Text(string) (string, error) {
	return e.text, e.err
}

type fakeGenerator struct {
	output string
	err    error
	prompt string // last prompt seen
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.output, g.err
}
