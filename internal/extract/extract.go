// Package extract pulls plain text out of uploaded documents. Plain text
// files are returned verbatim; PDFs go through a pure-Go extraction library.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType is returned for extensions other than .pdf and .txt.
var ErrUnsupportedType = errors.New("unsupported file type")

// Service implements text extraction for the document workflow commands.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return pdfText(path)
	default:
		return "", fmt.Errorf("%s: %w", filepath.Ext(path), ErrUnsupportedType)
	}
}

func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}
