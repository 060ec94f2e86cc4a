package client

import (
	"context"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-secret-notes/internal/app"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
)

func (a *App) password(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: password state|set|validate", ErrMissingArgument)
	}

	switch args[0] {
	case "state":
		state, err := a.notes.PasswordState(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, state)
		return nil
	case "set":
		return a.setPassword(ctx)
	case "validate":
		password, err := a.prompt.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		result, err := a.notes.ValidatePassword(ctx, password)
		if err != nil {
			return err
		}
		a.printValidation(result)
		return nil
	default:
		return fmt.Errorf("%w: password %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) setPassword(ctx context.Context) error {
	password, err := a.prompt.ReadPassword("New master password: ")
	if err != nil {
		return err
	}

	result, err := a.notes.ValidatePassword(ctx, password)
	if err != nil {
		return err
	}
	if result.Result != models.Valid.String() {
		a.printValidation(result)
		return validators.ErrWeakPassword
	}

	confirm, err := a.prompt.ReadPassword("Repeat master password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		return ErrPasswordMismatch
	}

	if err = a.notes.SetPassword(ctx, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, app.MsgPasswordSet)
	return nil
}

func (a *App) printValidation(result models.ValidationResponse) {
	if result.Reason != "" {
		fmt.Fprintf(a.out, "%s: %s\n", result.Result, result.Reason)
	} else {
		fmt.Fprintln(a.out, result.Result)
	}
	if result.Hint != "" {
		fmt.Fprintln(a.out, result.Hint)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	if _, err := a.parseFlags("list", args); err != nil {
		return err
	}

	return a.withSession(ctx, func(ctx context.Context, _ string) error {
		notes, err := a.notes.ListNotes(ctx)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Fprintln(a.out, app.MsgNoNotes)
			return nil
		}

		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tTITLE")
		for _, note := range notes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", note.ID, note.CreatedAt.Local().Format(time.DateTime), titleOf(note.PublicTitle))
		}
		return w.Flush()
	})
}

func (a *App) add(ctx context.Context, args []string) error {
	var publicTitle, privateTitle string
	fs := a.newFlagSet("add")
	fs.StringVarP(&publicTitle, "public-title", "t", "", "Unencrypted title shown by list")
	fs.StringVarP(&privateTitle, "private-title", "T", "", "Encrypted title shown by open")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var draft models.NoteDraft
	if fs.Changed("public-title") {
		draft.PublicTitle = &publicTitle
	}
	if fs.Changed("private-title") {
		draft.PrivateTitle = &privateTitle
	}

	return a.withSession(ctx, func(ctx context.Context, password string) error {
		draft.Content = strings.Join(fs.Args(), " ")
		if draft.Content == "" {
			content, err := a.prompt.ReadLine("Content: ")
			if err != nil {
				return err
			}
			draft.Content = content
		}

		note, err := a.notes.CreateNote(ctx, password, draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, app.MsgNoteCreated, note.ID)
		return nil
	})
}

func (a *App) open(ctx context.Context, args []string) error {
	var copyContent bool
	fs := a.newFlagSet("open")
	fs.BoolVarP(&copyContent, "copy", "c", false, "Copy the content to the clipboard instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: open ID", ErrMissingArgument)
	}
	id := fs.Arg(0)

	return a.withSession(ctx, func(ctx context.Context, password string) error {
		note, err := a.notes.OpenNote(ctx, id, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "ID:      %s\n", note.ID)
		fmt.Fprintf(a.out, "Created: %s\n", note.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(a.out, "Title:   %s\n", titleOf(note.PublicTitle))
		if note.PrivateTitle != nil {
			fmt.Fprintf(a.out, "Private: %s\n", *note.PrivateTitle)
		}

		if copyContent {
			if err = a.clipboard.WriteAll(note.Content); err != nil {
				return fmt.Errorf("copy note content: %w", err)
			}
			fmt.Fprintln(a.out, app.MsgContentCopied)
			return nil
		}

		fmt.Fprintf(a.out, "\n%s\n", note.Content)
		return nil
	})
}

func (a *App) remove(ctx context.Context, args []string) error {
	fs, err := a.parseFlags("rm", args)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: rm ID", ErrMissingArgument)
	}
	id := fs.Arg(0)

	return a.withSession(ctx, func(ctx context.Context, _ string) error {
		if err := a.notes.DeleteNote(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, app.MsgNoteDeleted, id)
		return nil
	})
}

func (a *App) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) parseFlags(name string, args []string) (*pflag.FlagSet, error) {
	fs := a.newFlagSet(name)
	return fs, fs.Parse(args)
}

func titleOf(title *string) string {
	if title == nil || *title == "" {
		return "-"
	}
	return *title
}

func ceilSeconds(d time.Duration) int64 {
	return int64(math.Ceil(d.Seconds()))
}
