package services

import (
	"log/slog"

	"github.com/SAP-F-2025/doccli/internal/repositories"
	"github.com/SAP-F-2025/doccli/internal/session"
	"github.com/SAP-F-2025/doccli/internal/validator"
)

// Paths holds the filesystem layout the document workflow writes into.
type Paths struct {
	DocsDir      string
	QuizDir      string
	AnswerKeyDir string
}

type serviceManager struct {
	userService     UserService
	documentService DocumentService
	quizService     QuizService
}

// NewServiceManager wires the domain services with their dependencies.
func NewServiceManager(
	repo repositories.Repository,
	sessions *session.Store,
	extractor Extractor,
	generator Generator,
	paths Paths,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	return &serviceManager{
		userService:     NewUserService(repo, sessions, logger, validator),
		documentService: NewDocumentService(repo, extractor, generator, paths, logger),
		quizService:     NewQuizService(extractor, generator, paths, logger),
	}
}

func (sm *serviceManager) User() UserService {
	return sm.userService
}

func (sm *serviceManager) Document() DocumentService {
	return sm.documentService
}

func (sm *serviceManager) Quiz() QuizService {
	return sm.quizService
}
