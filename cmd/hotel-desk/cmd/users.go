package cmd

import (
	"github.com/spf13/cobra"

	"github.com/okuznetsov/hotel-desk/internal/service/users"
)

var (
	// usersConfigPath to the configuration YAML file for registry commands.
	usersConfigPath string
	// usersRegistryFile overrides the operator registry location.
	usersRegistryFile string
	// mayBook grants the booking privilege to the operator being added.
	mayBook bool

	// usersCmd groups the registry management subcommands.
	usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage the operator registry.",
	}

	// usersAddCmd registers one operator.
	usersAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Register an operator, prompting for a password.",
		Long: `Registers an operator in the user registry, creating the registry file when
it does not exist yet. The password is prompted twice without echo and stored
as a bcrypt hash. The --may-book flag grants the booking privilege; without
it the operator can log in and inspect reservations but not book.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &users.AddOptions{
				ConfigPath: usersConfigPath,
				UsersFile:  usersRegistryFile,
				Name:       args[0],
				MayBook:    mayBook,
			}

			return users.RunAdd(cmd.Context(), options)
		},
	}

	// usersListCmd prints the registered operators.
	usersListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered operators and their booking privilege.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := &users.ListOptions{
				ConfigPath: usersConfigPath,
				UsersFile:  usersRegistryFile,
				Out:        cmd.OutOrStdout(),
			}

			return users.RunList(cmd.Context(), options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	usersAddCmd.Flags().BoolVar(&mayBook, "may-book", false, "grant the booking privilege")

	usersCmd.PersistentFlags().StringVarP(&usersConfigPath, "config", "c",
		"", "path to configuration file")
	usersCmd.PersistentFlags().StringVarP(&usersRegistryFile, "users-file", "u",
		"", "path to the operator registry")

	usersCmd.AddCommand(usersAddCmd, usersListCmd)
	rootCmd.AddCommand(usersCmd)
}
