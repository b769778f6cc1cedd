package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/SAP-F-2025/doccli/internal/config"
	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/services"
	"github.com/SAP-F-2025/doccli/internal/session"
)

// App wires the registry, the session store and the domain services into a
// dispatchable command-line application.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	sessions *session.Store
	services services.ServiceManager
	registry *Registry

	stdout io.Writer
	stderr io.Writer

	// readPassword prompts for a secret; overridable in tests.
	readPassword func(prompt string) (string, error)
}

func NewApp(cfg *config.Config, logger *slog.Logger, sessions *session.Store, sm services.ServiceManager, stdout, stderr io.Writer) *App {
	a := &App{
		cfg:          cfg,
		logger:       logger,
		sessions:     sessions,
		services:     sm,
		registry:     NewRegistry(),
		stdout:       stdout,
		stderr:       stderr,
		readPassword: promptPassword,
	}
	a.registerCommands()
	return a
}

func (a *App) registerCommands() {
	teacherOrAdmin := []models.UserRole{models.RoleTeacher, models.RoleAdmin}

	a.registry.Register(&Descriptor{
		Name: CmdRegister, Usage: "register <name> <email> <role>",
		Summary: "Register a new user",
		Run:     a.runRegister,
	})
	a.registry.Register(&Descriptor{
		Name: CmdLogin, Usage: "login <email>",
		Summary: "Log in as an existing user",
		Run:     a.runLogin,
	})
	a.registry.Register(&Descriptor{
		Name: CmdLogout, Usage: "logout",
		Summary: "Log out the current user",
		Run:     a.runLogout,
	})
	a.registry.Register(&Descriptor{
		Name: CmdUpload, Usage: "upload <file>",
		Summary:      "Upload a document (PDF or plaintext)",
		AllowedRoles: teacherOrAdmin,
		Run:          a.runUpload,
	})
	a.registry.Register(&Descriptor{
		Name: CmdSummarize, Usage: "summarize <docname>",
		Summary:       "Generate a summary of an uploaded document",
		RequiresLogin: true,
		Run:           a.runSummarize,
	})
	a.registry.Register(&Descriptor{
		Name: CmdQuiz, Usage: "quiz <docname> [--n N]",
		Summary:      "Auto-generate a quiz from a document",
		AllowedRoles: teacherOrAdmin,
		Run:          a.runQuiz,
	})
	a.registry.Register(&Descriptor{
		Name: CmdGrade, Usage: "grade <response_file> <answer_key_file>",
		Summary:      "Grade quiz responses against an answer key locally",
		AllowedRoles: teacherOrAdmin,
		Run:          a.runGrade,
	})
	a.registry.Register(&Descriptor{
		Name: CmdListDocs, Usage: "list-docs",
		Summary:       "List uploaded documents",
		RequiresLogin: true,
		Run:           a.runListDocs,
	})
	a.registry.Register(&Descriptor{
		Name: CmdListQuizzes, Usage: "list-quizzes",
		Summary:       "List saved quizzes",
		RequiresLogin: true,
		Run:           a.runListQuizzes,
	})
	a.registry.Register(&Descriptor{
		Name: CmdReadQuiz, Usage: "read-quiz <filename>",
		Summary:       "Print a saved quiz",
		RequiresLogin: true,
		Run:           a.runReadQuiz,
	})
	a.registry.Register(&Descriptor{
		Name: CmdDeleteDoc, Usage: "delete-doc <name>",
		Summary:      "Delete a document you own (admin: any)",
		AllowedRoles: teacherOrAdmin,
		Run:          a.runDeleteDoc,
	})
}

// Registry exposes the operation table, mainly for tests.
func (a *App) Registry() *Registry {
	return a.registry
}

// Run dispatches one command line and returns the process exit code. The
// session is loaded exactly once per invocation and threaded through the
// gate and the command handler.
func (a *App) Run(ctx context.Context, args []string) int {
	sess, err := a.sessions.Load()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	if len(args) == 0 || args[0] == CmdHelp || args[0] == "--help" {
		a.printHelp(sess)
		return 0
	}

	d, ok := a.registry.Get(args[0])
	if !ok {
		fmt.Fprintf(a.stderr, "Unknown command %q. Run `doccli help` for usage.\n", args[0])
		return 1
	}

	if err := Authorize(d, sess); err != nil {
		a.reportError(err)
		return 1
	}

	if err := d.Run(ctx, sess, args[1:]); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *App) printHelp(sess *models.Session) {
	fmt.Fprintln(a.stdout, "Document Analyzer CLI")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Usage: doccli <command> [arguments]")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Commands:")
	w := tabwriter.NewWriter(a.stdout, 2, 4, 2, ' ', 0)
	for _, d := range a.registry.Visible(sess) {
		fmt.Fprintf(w, "  %s\t%s\n", d.Usage, d.Summary)
	}
	w.Flush()
}

// reportError turns a service or gate error into one user-facing line.
func (a *App) reportError(err error) {
	var usage *usageError
	var roleErr *services.InsufficientRoleError
	var valErr *services.ValidationError
	var extErr *services.ExternalServiceError

	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(a.stderr, "Usage: doccli %s\n", usage.usage)
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.stderr, "Not logged in. Please `login` first.")
	case errors.As(err, &roleErr):
		fmt.Fprintln(a.stderr, roleErr.Error())
	case errors.As(err, &valErr):
		fmt.Fprintln(a.stderr, valErr.Error())
	case errors.As(err, &extErr):
		fmt.Fprintf(a.stderr, "External service error: %v\n", extErr)
	default:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
}

// usageError reports a malformed invocation of a known command.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}
