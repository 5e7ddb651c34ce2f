package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the job portal API server.
var rootCmd = &cobra.Command{
	Use:   "apiserver",
	Short: "Job portal backend API server",
	Long: `Job portal backend API server.

Provides user registration and login, job posting CRUD, job application
tracking, and the supporting migrate commands.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
