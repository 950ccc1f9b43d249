package desk

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/okuznetsov/hotel-desk/internal/audit"
	"github.com/okuznetsov/hotel-desk/internal/auth"
	"github.com/okuznetsov/hotel-desk/internal/booking"
	"github.com/okuznetsov/hotel-desk/internal/config"
	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
	"github.com/okuznetsov/hotel-desk/internal/logger"
)

// Options controls the desk session process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// AuditFile overrides the audit trail location from settings.
	AuditFile string
	// UsersFile overrides the user registry location from settings.
	UsersFile string
	// RoomCount overrides the managed room count from settings.
	RoomCount int
	// Username skips the login name prompt when provided.
	Username string
	// Force skips the concurrent-session check. Meant for containers and
	// tests where the process scan is unreliable.
	Force bool
}

var (
	// errAlreadyRunning is returned when a second desk session is detected.
	errAlreadyRunning = errors.New("another hotel-desk session is already running")
	// errNoUsersRegistered is returned when the registry has no users to log in.
	errNoUsersRegistered = errors.New("user registry is empty; add an operator with `hotel-desk users add`")
)

// Run starts one desk session and blocks until the operator ends it.
// Loads configuration first, then logs the operator in and wires the booking
// chain over a fresh hotel.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "hotel-desk")

	// Load configuration first to get desk settings.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	} else {
		logger.WarnKV(ctx, "Unknown log level in settings, keeping default", "log_level", cfg.LogLevel)
	}

	// Command line options override settings.
	auditFile := cfg.AuditLog
	if opts.AuditFile != "" {
		auditFile = opts.AuditFile
	}

	usersFile := cfg.UsersFile
	if opts.UsersFile != "" {
		usersFile = opts.UsersFile
	}

	roomCount := cfg.RoomCount
	if opts.RoomCount > 0 {
		roomCount = opts.RoomCount
	}

	// One desk session at a time.
	if !opts.Force {
		running, err := isAnotherDeskRunning(ctx)
		if err != nil {
			return err
		}

		if running {
			return errAlreadyRunning
		}
	}

	// Load the operator registry and log in.
	registry, err := auth.LoadRegistry(usersFile)
	if err != nil {
		return err
	}

	if len(registry.Users()) == 0 {
		return errNoUsersRegistered
	}

	principal, err := login(registry, opts.Username)
	if err != nil {
		return err
	}

	sess := auth.NewSession(principal)
	ctx = logger.WithKV(ctx, "session_id", sess.ID)
	ctx = auth.WithPrincipal(ctx, principal)

	logger.InfoKV(ctx, "Desk session started",
		"operator", principal.Name, "room_count", roomCount, "audit_file", auditFile)

	// Build the hotel and the composed booking operation.
	h, err := hotel.New(roomCount)
	if err != nil {
		return fmt.Errorf("initialise hotel: %w", err)
	}

	sink := audit.NewFileSink(auditFile)
	chain := booking.NewChain(h, registry, sink)

	// Session start and end lines bracket the per-attempt records.
	if err := sink.Append(fmt.Sprintf("session %s started, operator %s", sess.ID, principal.Name)); err != nil {
		return err
	}

	runErr := newSession(chain, os.Stdin, os.Stdout).run(ctx)

	if err := sink.Append(fmt.Sprintf("session %s ended, operator %s", sess.ID, principal.Name)); err != nil {
		return errors.Join(runErr, err)
	}

	logger.Info(ctx, "Desk session ended")

	return runErr
}

// login resolves the operator name and verifies their password.
func login(registry *auth.Registry, username string) (auth.Principal, error) {
	var err error

	if username == "" {
		username, err = auth.ReadLine(os.Stdin, os.Stdout, "login: ")
		if err != nil {
			return auth.Principal{}, err
		}
	}

	password, err := auth.ReadPassword(os.Stdin, os.Stdout, "password: ")
	if err != nil {
		return auth.Principal{}, err
	}

	principal, err := registry.Authenticate(username, password)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("login %q: %w", username, err)
	}

	return principal, nil
}
