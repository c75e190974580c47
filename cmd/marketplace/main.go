package main

import (
	"os"

	"github.com/spf13/cobra"

	"marketplace/internal/interfaces/cli/migrate"
	"marketplace/internal/interfaces/cli/server"
)

// @title Marketplace API
// @version 1.0
// @description REST API of the marketplace backend.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Marketplace - accounts, subscriptions and store catalog API",
		Long:  `Marketplace serves the HTTP API and ships the database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
