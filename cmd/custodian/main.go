package main

import (
	"os"

	"github.com/spf13/cobra"

	"custodian/internal/interfaces/cli/migrate"
	"custodian/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "custodian",
		Short: "Custodian - forensic case management",
		Long:  `Custodian manages forensic cases, tasks, evidence and chain of custody, with role-based permissions throughout.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
