package auth

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/crucial707/codepad/cmd/cli/client"
	"github.com/crucial707/codepad/cmd/cli/config"
	"github.com/spf13/cobra"
)

// InitAuth registers the account commands on the root command.
func InitAuth(rootCmd *cobra.Command) {
	rootCmd.AddCommand(registerCmd(), loginCmd(), logoutCmd(), whoamiCmd())
}

// ==========================
// Register
// ==========================
func registerCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long:  "Register a new account. Missing values are prompted for.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			username = promptIfEmpty(in, out, "Username", username)
			email = promptIfEmpty(in, out, "Email", email)
			password = promptIfEmpty(in, out, "Password", password)

			payload := map[string]string{
				"username": username,
				"email":    email,
				"password": password,
			}
			if err := client.New("").Do(cmd.Context(), "POST", "/register", payload, nil); err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Fprintln(out, "Registered. You can now run `codepad login`.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password")

	return cmd
}

// ==========================
// Login
// ==========================
func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the token locally",
		Long:  "Authenticate with the codepad API and store the token in ~/.codepad_token for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			email = promptIfEmpty(in, out, "Email", email)
			password = promptIfEmpty(in, out, "Password", password)

			var loginResp struct {
				Token string `json:"token"`
			}
			payload := map[string]string{"email": email, "password": password}
			if err := client.New("").Do(cmd.Context(), "POST", "/login", payload, &loginResp); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}
			if loginResp.Token == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}

			if err := config.SaveToken(loginResp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintln(out, "Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password")

	return cmd
}

// ==========================
// Logout
// ==========================
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := config.RemoveToken()
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "No user logged in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully.")
			return nil
		},
	}
}

// ==========================
// Whoami
// ==========================
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var me struct {
				ID       string `json:"id"`
				Username string `json:"username"`
				Email    string `json:"email"`
			}
			if err := c.Do(cmd.Context(), "GET", "/me", nil, &me); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", me.Username, me.Email, me.ID)
			return nil
		},
	}
}

func promptIfEmpty(in *bufio.Reader, out io.Writer, label, value string) string {
	if value != "" {
		return value
	}
	fmt.Fprintf(out, "%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
