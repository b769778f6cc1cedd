package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/SAP-F-2025/doccli/internal/models"
)

func (a *App) runUpload(ctx context.Context, sess *models.Session, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "upload <file>"}
	}

	doc, err := a.services.Document().Upload(ctx, sess, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Uploaded %s and metadata recorded.\n", filepath.Join(a.cfg.DocsDir, doc.Name))
	return nil
}

func (a *App) runSummarize(ctx context.Context, sess *models.Session, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "summarize <docname>"}
	}

	summary, err := a.services.Document().Summarize(ctx, sess, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, summary)
	return nil
}

func (a *App) runListDocs(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 0 {
		return &usageError{usage: "list-docs"}
	}

	docs, err := a.services.Document().List(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		fmt.Fprintf(a.stdout, "%d | %s | %s | %s @ %s\n",
			doc.ID, doc.Name, doc.Owner, doc.Type, doc.Timestamp.Format(time.RFC3339))
	}
	return nil
}

func (a *App) runDeleteDoc(ctx context.Context, sess *models.Session, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "delete-doc <name>"}
	}

	if err := a.services.Document().Delete(ctx, sess, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Deleted %s.\n", args[0])
	return nil
}
