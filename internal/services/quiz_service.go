package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SAP-F-2025/doccli/internal/models"
)

type quizService struct {
	extractor Extractor
	generator Generator
	paths     Paths
	logger    *slog.Logger
}

func NewQuizService(extractor Extractor, generator Generator, paths Paths, logger *slog.Logger) QuizService {
	return &quizService{
		extractor: extractor,
		generator: generator,
		paths:     paths,
		logger:    logger,
	}
}

func (s *quizService) Generate(ctx context.Context, sess *models.Session, docName string, questionCount int) (*QuizResult, error) {
	path := filepath.Join(s.paths.DocsDir, docName)
	if _, err := os.Stat(path); err != nil {
		return nil, ErrDocumentNotFound
	}

	text, err := s.extractor.Text(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document text: %w", err)
	}

	prompt := fmt.Sprintf(
		"Create %d quiz questions (with multiple-choice options) based on the following content, along with an easily formatted answer key:\n\n%s",
		questionCount, text)
	output, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &ExternalServiceError{Service: "generation service", Err: err}
	}

	questions, answerKey := splitQuiz(output)

	result := &QuizResult{
		Questions: questions,
		AnswerKey: answerKey,
		QuizPath:  filepath.Join(s.paths.QuizDir, quizFileName(docName)),
	}
	if err := writeFile(result.QuizPath, questions); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}
	if answerKey != "" {
		result.AnswerKeyPath = filepath.Join(s.paths.AnswerKeyDir, answerKeyFileName(docName))
		if err := writeFile(result.AnswerKeyPath, answerKey); err != nil {
			return nil, fmt.Errorf("failed to save answer key: %w", err)
		}
	}

	s.logger.Info("quiz generated", "document", docName, "questions", questionCount, "by", sess.Email)
	return result, nil
}

func (s *quizService) Grade(ctx context.Context, responsePath, answerKeyPath string) ([]StudentResult, error) {
	keyText, err := os.ReadFile(answerKeyPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read answer key: %w", err)
	}
	responseText, err := os.ReadFile(responsePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}

	keys := parseAnswerKey(string(keyText))
	return gradeResponses(keys, string(responseText)), nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.paths.QuizDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *quizService) ReadQuiz(ctx context.Context, filename string) (string, error) {
	// The argument is a bare file name from list-quizzes; strip any path.
	data, err := os.ReadFile(filepath.Join(s.paths.QuizDir, filepath.Base(filename)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrQuizNotFound
		}
		return "", fmt.Errorf("failed to read quiz: %w", err)
	}
	return string(data), nil
}

func quizFileName(docName string) string {
	return docName + "_quiz.txt"
}

func answerKeyFileName(docName string) string {
	return docName + "_answer_key.txt"
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
