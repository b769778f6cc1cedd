// Package cli holds the command registry and the session/role gate that
// decides which commands are visible and invocable for the current session.
package cli

import (
	"context"

	"github.com/SAP-F-2025/doccli/internal/models"
)

// Command names. The gate special-cases the session lifecycle commands.
const (
	CmdRegister    = "register"
	CmdLogin       = "login"
	CmdLogout      = "logout"
	CmdUpload      = "upload"
	CmdSummarize   = "summarize"
	CmdQuiz        = "quiz"
	CmdGrade       = "grade"
	CmdListDocs    = "list-docs"
	CmdListQuizzes = "list-quizzes"
	CmdReadQuiz    = "read-quiz"
	CmdDeleteDoc   = "delete-doc"
	CmdHelp        = "help"
)

// Handler executes a command with the session loaded for this invocation.
type Handler func(ctx context.Context, sess *models.Session, args []string) error

// Descriptor is the static metadata for one operation: its name, usage and
// its login/role requirements. Descriptors are defined once at startup and
// never mutated.
type Descriptor struct {
	Name    string
	Usage   string
	Summary string

	// RequiresLogin hides and rejects the command when logged out. An
	// AllowedRoles set implies it, since a role is only known post-login.
	RequiresLogin bool
	AllowedRoles  []models.UserRole

	Run Handler
}

func (d *Descriptor) requiresLogin() bool {
	return d.RequiresLogin || len(d.AllowedRoles) > 0
}
