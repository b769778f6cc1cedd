package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/SAP-F-2025/doccli/internal/models"
)

func (a *App) runQuiz(ctx context.Context, sess *models.Session, args []string) error {
	flags := pflag.NewFlagSet(CmdQuiz, pflag.ContinueOnError)
	flags.SetOutput(a.stderr)
	n := flags.IntP("n", "n", 5, "Number of quiz questions")
	if err := flags.Parse(args); err != nil {
		return &usageError{usage: "quiz <docname> [--n N]"}
	}
	if flags.NArg() != 1 {
		return &usageError{usage: "quiz <docname> [--n N]"}
	}
	docName := flags.Arg(0)

	fmt.Fprintf(a.stdout, "Generating %d quiz questions for %s...\n", *n, docName)

	result, err := a.services.Quiz().Generate(ctx, sess, docName, *n)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, result.Questions)
	fmt.Fprintf(a.stdout, "Quiz saved to %s\n", result.QuizPath)
	if result.AnswerKeyPath != "" {
		fmt.Fprintf(a.stdout, "Answer key saved to %s\n", result.AnswerKeyPath)
	}
	return nil
}

func (a *App) runGrade(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 2 {
		return &usageError{usage: "grade <response_file> <answer_key_file>"}
	}

	results, err := a.services.Quiz().Grade(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprintf(a.stdout, "Student: %s\n", result.Student)
		fmt.Fprintf(a.stdout, "Score: %d/%d\n", result.Score, result.Total)
		fmt.Fprintln(a.stdout, "Question breakdown:")
		for _, q := range result.Breakdown {
			status := "Correct"
			if !q.Correct {
				status = fmt.Sprintf("Incorrect (Correct: %s)", q.Expected)
			}
			fmt.Fprintf(a.stdout, " %d. Your: %s | %s\n", q.Number, q.Given, status)
		}
		fmt.Fprintln(a.stdout, strings.Repeat("-", 40))
	}
	return nil
}

func (a *App) runListQuizzes(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 0 {
		return &usageError{usage: "list-quizzes"}
	}

	names, err := a.services.Quiz().ListQuizzes(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func (a *App) runReadQuiz(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "read-quiz <filename>"}
	}

	content, err := a.services.Quiz().ReadQuiz(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(a.stdout)
	}
	return nil
}
