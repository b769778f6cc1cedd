package cli

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/services"
)

func (a *App) runRegister(ctx context.Context, sess *models.Session, args []string) error {
	if len(args) != 3 {
		return &usageError{usage: "register <name> <email> <role>"}
	}

	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := a.readPassword("Confirm Password: ")
	if err != nil {
		return err
	}

	req := services.RegisterRequest{
		Name:     args[0],
		Email:    args[1],
		Role:     args[2],
		Password: password,
		Confirm:  confirm,
	}
	user, err := a.services.User().Register(ctx, sess, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "User %s (%s) registered.\n", user.Name, user.Role)
	return nil
}

func (a *App) runLogin(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 1 {
		return &usageError{usage: "login <email>"}
	}

	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	sess, err := a.services.User().Login(ctx, services.LoginRequest{Email: args[0], Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Logged in as %s (%s).\n", sess.Name, sess.Role)
	return nil
}

func (a *App) runLogout(ctx context.Context, _ *models.Session, args []string) error {
	if len(args) != 0 {
		return &usageError{usage: "logout"}
	}

	existed, err := a.services.User().Logout(ctx)
	if err != nil {
		return err
	}
	if existed {
		fmt.Fprintln(a.stdout, "Logged out.")
	} else {
		fmt.Fprintln(a.stdout, "Not logged in.")
	}
	return nil
}
