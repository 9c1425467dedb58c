package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gdrive-mcp application
var rootCmd = &cobra.Command{
	Use:   "gdrive-mcp",
	Short: "MCP server for searching and reading Google Drive files",
	Long: `gdrive-mcp exposes Google Drive to AI assistants through the
Model Context Protocol (MCP).

It provides read-only access: a search tool, a file reading tool that
converts Google Workspace documents to LLM-friendly formats, and Drive
files listed as MCP resources under the gdrive:/// URI scheme.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gdrive-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
