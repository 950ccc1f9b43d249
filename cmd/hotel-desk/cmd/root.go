package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okuznetsov/hotel-desk/internal/config"
	"github.com/okuznetsov/hotel-desk/internal/service/desk"
	"github.com/okuznetsov/hotel-desk/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// auditFile path of the append-only audit trail.
	auditFile string
	// usersFile path of the operator registry.
	usersFile string
	// roomCount overrides the managed room count.
	roomCount int
	// username skips the interactive login name prompt.
	username string
	// force skips the concurrent-session check.
	force bool

	// rootCmd represents the base command for running the desk session.
	rootCmd = &cobra.Command{
		Use:   "hotel-desk",
		Short: "Run an interactive hotel reception desk session.",
		Long: `Starts an interactive reception desk session for booking hotel rooms by week.

The operator logs in against the user registry first; only operators holding
the booking privilege may reserve rooms. When every room is taken for a week,
the request is placed in the overflow queue instead of failing. Every attempt
is recorded on the append-only audit trail.

Session commands: r <week> <name> to book, l to list reservations, q to list
the overflow queue, ? for help, . to end the session.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &desk.Options{
				ConfigPath: configPath,
				AuditFile:  auditFile,
				UsersFile:  usersFile,
				RoomCount:  roomCount,
				Username:   username,
				Force:      force,
			}

			return desk.Run(ctx, options)
		},
	}
)

// Execute runs the hotel-desk CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&auditFile, "audit-file", "a", "", "path to the audit trail file")
	rootCmd.Flags().StringVarP(&usersFile, "users-file", "u", "", "path to the operator registry")
	rootCmd.Flags().IntVarP(&roomCount, "rooms", "r", 0, "number of rooms the desk manages")
	rootCmd.Flags().StringVar(&username, "user", "", "login name, prompted when empty")
	rootCmd.Flags().BoolVar(&force, "force", false, "skip the concurrent-session check")
}
