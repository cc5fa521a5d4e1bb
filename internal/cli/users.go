package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(cmd); err != nil {
			return err
		}
		users, err := a.api.Users(cmd.Context())
		if err != nil {
			return err
		}
		renderIdentities(cmd.OutOrStdout(), users)
		return nil
	},
}

var usersAgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List support agents available for assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(cmd); err != nil {
			return err
		}
		agents, err := a.api.SupportAgents(cmd.Context())
		if err != nil {
			return err
		}
		renderIdentities(cmd.OutOrStdout(), agents)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account with an explicit role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(cmd); err != nil {
			return err
		}

		req := apiclient.CreateUserRequest{}
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		role, _ := cmd.Flags().GetString("role")
		req.Role = domain.Role(strings.ToUpper(role))

		if req.Username == "" || req.Email == "" {
			return fmt.Errorf("--username and --email are required")
		}
		if !req.Role.Valid() {
			return fmt.Errorf("invalid role %q (USER, SUPPORT_AGENT, ADMIN)", role)
		}
		if req.Password == "" {
			var err error
			req.Password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		identity, err := a.api.CreateUser(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account %s created with role %s.\n", identity.Username, identity.Role)
		return nil
	},
}

var usersRoleCmd = &cobra.Command{
	Use:   "role <id> <role>",
	Short: "Change an account's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(cmd); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		role := domain.Role(strings.ToUpper(args[1]))
		if !role.Valid() {
			return fmt.Errorf("invalid role %q (USER, SUPPORT_AGENT, ADMIN)", args[1])
		}

		identity, err := a.api.UpdateUserRole(cmd.Context(), id, role)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account %s is now %s.\n", identity.Username, identity.Role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(cmd); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := a.api.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account %d deleted.\n", id)
		return nil
	},
}

func requireAdmin(cmd *cobra.Command) error {
	identity, err := requireSession(cmd)
	if err != nil {
		return err
	}
	if !authz.CanManageUsers(identity) {
		return fmt.Errorf("user management requires the ADMIN role")
	}
	return nil
}

func init() {
	usersCreateCmd.Flags().String("username", "", "account username")
	usersCreateCmd.Flags().String("password", "", "account password (prompted when omitted)")
	usersCreateCmd.Flags().String("email", "", "contact email")
	usersCreateCmd.Flags().String("first-name", "", "given name")
	usersCreateCmd.Flags().String("last-name", "", "family name")
	usersCreateCmd.Flags().String("role", "USER", "USER, SUPPORT_AGENT, or ADMIN")

	usersCmd.AddCommand(usersListCmd, usersAgentsCmd, usersCreateCmd, usersRoleCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
