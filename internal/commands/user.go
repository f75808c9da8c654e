package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
)

func newCreateUserCommand(load serviceLoader) *cobra.Command {
	var req dto.CreateUserRequest
	var role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a staff user, prompting for the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = domain.Role(role)
			if !req.Role.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			password, err := readPassword(cmd.InOrStdin())
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			if n := len(strings.TrimSpace(password)); n < minPasswordLength || len(password) > maxPasswordLength {
				return fmt.Errorf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength)
			}
			req.Password = password

			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			user, err := svc.User.CreateUser(cmd.Context(), req, "")
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %s created with ID %s (role %s)\n", user.Username, user.UserID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "display name (required)")
	_ = cmd.MarkFlagRequired("full-name")
	cmd.Flags().StringVar(&role, "role", "", "one of admin, financial, sales, customer_service, operations (required)")
	_ = cmd.MarkFlagRequired("role")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")

	return cmd
}
