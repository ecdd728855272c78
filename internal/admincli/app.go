// Package admincli implements an interactive terminal tool for account
// administration: creating accounts, resetting passwords, and deleting
// accounts directly against the database.
package admincli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/server/config"
	"github.com/catcurious/catcurious/internal/server/repositories/repomanager"
	"github.com/catcurious/catcurious/internal/server/services"
)

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// accountOps is the account surface the commands need.
// Implemented by services.UserService.
type accountOps interface {
	CreateAccount(ctx context.Context, username, password string) (int64, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
	DeleteAccount(ctx context.Context, username string) error
	GetUserID(ctx context.Context, username string) (int64, error)
}

// App is the admin CLI application.
type App struct {
	users accountOps
	in    *bufio.Reader
	out   io.Writer
}

// NewApp opens the database from config and wires the account service.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	us := services.NewUserService(db, m)

	return &App{users: us, in: bufio.NewReader(in), out: out}, nil
}

// Run dispatches the subcommand. Recognized commands: create-account,
// update-password, delete-account, user-id.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "create-account":
		return a.createAccount(ctx)
	case "update-password":
		return a.updatePassword(ctx)
	case "delete-account":
		return a.deleteAccount(ctx)
	case "user-id":
		return a.userID(ctx)
	default:
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "Usage: catcurious-admin <command>")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  create-account   register a new account")
	fmt.Fprintln(a.out, "  update-password  set a new password for an account")
	fmt.Fprintln(a.out, "  delete-account   remove an account")
	fmt.Fprintln(a.out, "  user-id          look up an account id")
}

// promptNewPassword reads a password twice and checks both entries match.
func (a *App) promptNewPassword() ([]byte, error) {
	pw, err := GetPassword("Enter password: ", a.out)
	if err != nil {
		return nil, err
	}
	confirm, err := GetPassword("Repeat password: ", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(pw) != string(confirm) {
		common.WipeByteArray(pw)
		return nil, errors.New("passwords do not match")
	}
	return pw, nil
}

func (a *App) createAccount(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return err
	}

	pw, err := a.promptNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	id, err := a.users.CreateAccount(ctx, username, string(pw))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created, id %d\n", id)
	return nil
}

// updatePassword sets a new password without checking the old one. This is
// an operator reset path, not the self-service flow.
func (a *App) updatePassword(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return err
	}

	pw, err := a.promptNewPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.users.UpdatePassword(ctx, username, string(pw)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password updated")
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetSimpleText(a.in, fmt.Sprintf("Delete account %q? (y/n)", username), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}

	if err := a.users.DeleteAccount(ctx, username); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

func (a *App) userID(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return err
	}

	id, err := a.users.GetUserID(ctx, username)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User id: %d\n", id)
	return nil
}
