package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "bumdes",
	Short: "BUMDes Desa Sale backend",
	Long:  "Backend API for the BUMDes Desa Sale village cooperative website.",
}

// Execute runs the CLI. Called once from main.
func Execute() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
