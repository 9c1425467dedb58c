package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive-mcp/internal/google"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Google Drive",
		Long: `Run the OAuth2 authorization flow for Google Drive.

Prints a consent URL to open in a browser. After approving read-only
Drive access, paste the authorization code back into the terminal. The
resulting token is stored locally and refreshed automatically from then
on.

The OAuth client key file is read from the path in GDRIVE_OAUTH_PATH,
falling back to gcp-oauth.keys.json in the user config directory. The
token is written to the path in GDRIVE_CREDENTIALS_PATH, falling back
to credentials.json next to the key file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd)
		},
	}
	return cmd
}

func runAuth(cmd *cobra.Command) error {
	authURL, err := google.GetAuthURL()
	if err != nil {
		return fmt.Errorf("failed to start authorization: %w", err)
	}

	cmd.Println("Open the following URL in a browser to authorize Google Drive access:")
	cmd.Println()
	cmd.Println(authURL)
	cmd.Println()
	cmd.Print("Enter the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("authorization code is required")
	}

	if err := google.SaveToken(cmd.Context(), code); err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	cmd.Printf("Authorization successful. Token saved to %s\n", google.CredentialsPath())
	return nil
}
