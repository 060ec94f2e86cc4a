package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secret-notes/internal/adapter"
	"github.com/MKhiriev/go-secret-notes/internal/app"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/models"
)

// maxLoginAttempts bounds the password prompts of one command.
const maxLoginAttempts = 3

const usage = `Usage: notes [global flags] COMMAND [ARGS]

Commands:
  password state       show whether a master password is set
  password set         set the master password
  password validate    check a password against the strength rules
  list                 list notes
  add [flags] [TEXT]   add a note, TEXT is read from the prompt when omitted
  open ID [--copy]     decrypt and show a note
  rm ID                delete a note
`

// App runs one CLI command per Run call.
type App struct {
	notes     adapter.NotesAdapter
	prompt    Prompter
	clipboard Clipboard
	out       io.Writer

	logger *logger.Logger
}

func NewApp(notes adapter.NotesAdapter, prompt Prompter, clipboard Clipboard, out io.Writer, logger *logger.Logger) *App {
	return &App{
		notes:     notes,
		prompt:    prompt,
		clipboard: clipboard,
		out:       out,
		logger:    logger,
	}
}

// Run dispatches args[0]. Unknown commands print the usage and fail with
// ErrUnknownCommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Msg("running command")

	switch command {
	case "password":
		return a.password(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "add":
		return a.add(ctx, rest)
	case "open":
		return a.open(ctx, rest)
	case "rm":
		return a.remove(ctx, rest)
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// withSession logs in, runs fn with the accepted master password and logs
// out whatever fn returns.
func (a *App) withSession(ctx context.Context, fn func(ctx context.Context, password string) error) error {
	password, err := a.login(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.notes.Logout(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.withSession").Msg("logout failed")
		}
	}()

	return fn(ctx, password)
}

func (a *App) login(ctx context.Context) (string, error) {
	state, err := a.notes.PasswordState(ctx)
	if err != nil {
		return "", err
	}
	if state != models.PasswordSet {
		fmt.Fprintln(a.out, app.MsgPasswordNotSet)
		return "", service.ErrPasswordNotSet
	}

	for range maxLoginAttempts {
		if err = a.waitLockout(ctx); err != nil {
			return "", err
		}

		password, err := a.prompt.ReadPassword("Master password: ")
		if err != nil {
			return "", err
		}

		err = a.notes.Login(ctx, password)
		var wrong *service.WrongPasswordError
		switch {
		case err == nil:
			return password, nil
		case errors.As(err, &wrong):
			if wrong.Seconds() > 0 {
				fmt.Fprintf(a.out, app.MsgWrongPasswordRetryIn, wrong.Seconds())
			} else {
				fmt.Fprintln(a.out, app.MsgWrongPassword)
			}
		case errors.Is(err, service.ErrRateLimited):
			// another client started a lockout between the check and the attempt
		default:
			return "", err
		}
	}

	return "", ErrTooManyAttempts
}

func (a *App) waitLockout(ctx context.Context) error {
	remaining, err := a.notes.Lockout(ctx)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		return nil
	}

	fmt.Fprintf(a.out, app.MsgLoginLocked, ceilSeconds(remaining))
	return a.notes.WaitLockout(ctx)
}
