package services

import (
	"context"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use validator DTO types for commands with validated input.
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest

// QuizResult is the outcome of generating a quiz from a document.
type QuizResult struct {
	Questions     string
	AnswerKey     string
	QuizPath      string
	AnswerKeyPath string
}

// QuestionResult is one graded answer, in question order.
type QuestionResult struct {
	Number   int
	Given    string
	Expected string // last letter of the stored key token
	Correct  bool
}

// StudentResult is the graded outcome for one response line.
type StudentResult struct {
	Student   string
	Score     int
	Total     int
	Breakdown []QuestionResult
}

// ===== EXTERNAL CAPABILITIES =====

// Extractor pulls plain text out of a document file.
type Extractor interface {
	Text(path string) (string, error)
}

// Generator is the external text-generation capability. One blocking call,
// no retries.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ===== SERVICE INTERFACES =====

type UserService interface {
	// Register creates a new user. When no one is logged in only the
	// student role may be self-registered; a logged-in admin may register
	// any role. At most one admin may ever exist.
	Register(ctx context.Context, sess *models.Session, req RegisterRequest) (*models.User, error)

	// Login verifies credentials and persists the session. On failure the
	// session file is left untouched.
	Login(ctx context.Context, req LoginRequest) (*models.Session, error)

	// Logout removes the persisted session. It reports whether a session
	// existed.
	Logout(ctx context.Context) (bool, error)
}

type DocumentService interface {
	Upload(ctx context.Context, sess *models.Session, path string) (*models.Document, error)
	Summarize(ctx context.Context, sess *models.Session, docName string) (string, error)
	List(ctx context.Context) ([]*models.Document, error)
	Delete(ctx context.Context, sess *models.Session, name string) error
}

type QuizService interface {
	Generate(ctx context.Context, sess *models.Session, docName string, questionCount int) (*QuizResult, error)
	Grade(ctx context.Context, responsePath, answerKeyPath string) ([]StudentResult, error)
	ListQuizzes(ctx context.Context) ([]string, error)
	ReadQuiz(ctx context.Context, filename string) (string, error)
}

// ServiceManager aggregates the domain services.
type ServiceManager interface {
	User() UserService
	Document() DocumentService
	Quiz() QuizService
}
