package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reelhub/reelhub/internal/interfaces/cli/migrate"
	"github.com/reelhub/reelhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reelhub",
		Short: "ReelHub - video catalog admin backend",
		Long:  `ReelHub is the admin backend for the video catalog, with a built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
