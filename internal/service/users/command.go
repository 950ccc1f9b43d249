package users

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okuznetsov/hotel-desk/internal/auth"
	"github.com/okuznetsov/hotel-desk/internal/config"
	"github.com/okuznetsov/hotel-desk/internal/logger"
)

// AddOptions controls operator registration.
type AddOptions struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// UsersFile overrides the registry location from settings.
	UsersFile string
	// Name is the login name to register.
	Name string
	// MayBook grants the new operator the booking privilege.
	MayBook bool
	// Password skips interactive prompting when provided. Empty means
	// prompt twice on the terminal.
	Password string
}

// ListOptions controls registry listing.
type ListOptions struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// UsersFile overrides the registry location from settings.
	UsersFile string
	// Out receives the listing; defaults to stdout.
	Out io.Writer
}

// errPasswordMismatch is returned when the two password prompts disagree.
var errPasswordMismatch = errors.New("passwords do not match")

// RunAdd registers one operator in the registry, creating the file when it
// does not exist yet.
func RunAdd(ctx context.Context, opts *AddOptions) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "hotel-desk-users")

	usersFile, err := resolveUsersFile(opts.ConfigPath, opts.UsersFile)
	if err != nil {
		return err
	}

	registry, err := auth.LoadRegistry(usersFile)
	if err != nil {
		return err
	}

	password := opts.Password
	if password == "" {
		password, err = promptPasswordTwice()
		if err != nil {
			return err
		}
	}

	if err := registry.Add(opts.Name, password, opts.MayBook); err != nil {
		return err
	}

	if err := registry.Save(); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Operator registered",
		"name", opts.Name, "may_book", opts.MayBook, "users_file", usersFile)

	return nil
}

// RunList prints the registered operators and their booking privilege.
func RunList(ctx context.Context, opts *ListOptions) error {
	ctx = logger.WithName(ctx, "hotel-desk-users")

	usersFile, err := resolveUsersFile(opts.ConfigPath, opts.UsersFile)
	if err != nil {
		return err
	}

	registry, err := auth.LoadRegistry(usersFile)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	entries := registry.Users()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no operators registered")

		return nil
	}

	for _, user := range entries {
		if user.MayBook {
			fmt.Fprintf(out, "%s (may book)\n", user.Name)
		} else {
			fmt.Fprintln(out, user.Name)
		}
	}

	logger.DebugKV(ctx, "Listed operators", "count", len(entries), "users_file", usersFile)

	return nil
}

// resolveUsersFile applies the settings-then-override resolution.
func resolveUsersFile(configPath, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}

	return cfg.UsersFile, nil
}

// promptPasswordTwice reads and confirms the password on the terminal.
func promptPasswordTwice() (string, error) {
	first, err := auth.ReadPassword(os.Stdin, os.Stdout, "password: ")
	if err != nil {
		return "", err
	}

	second, err := auth.ReadPassword(os.Stdin, os.Stdout, "repeat password: ")
	if err != nil {
		return "", err
	}

	if first != second {
		return "", errPasswordMismatch
	}

	return first, nil
}
