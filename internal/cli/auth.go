package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			return fmt.Errorf("--username is required")
		}
		if password == "" {
			var err error
			password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		identity, err := a.sessions.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", identity.Username, identity.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a.sessions.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}
		renderIdentity(cmd.OutOrStdout(), identity)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := apiclient.SignupRequest{}
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")

		if req.Username == "" || req.Email == "" {
			return fmt.Errorf("--username and --email are required")
		}
		if req.Password == "" {
			var err error
			req.Password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		identity, err := a.api.Signup(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Run `helpdesk login` to start a session.\n", identity.Username)
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "account username")
	loginCmd.Flags().StringP("password", "p", "", "account password (prompted when omitted)")

	signupCmd.Flags().String("username", "", "account username")
	signupCmd.Flags().String("password", "", "account password (prompted when omitted)")
	signupCmd.Flags().String("email", "", "contact email")
	signupCmd.Flags().String("first-name", "", "given name")
	signupCmd.Flags().String("last-name", "", "family name")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, signupCmd)
}
