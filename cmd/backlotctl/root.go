package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var serverFlag string
	var tokenFlag string

	rootCmd := &cobra.Command{
		Use:           "backlotctl",
		Short:         "Admin CLI for the backlot submission service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", defaultServer(), "Base URL of the backlot server")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", os.Getenv("BACKLOT_TOKEN"), "Bearer token issued by the identity provider")

	client := &apiClient{base: &serverFlag, token: &tokenFlag}

	rootCmd.AddCommand(newListCommand(client))
	rootCmd.AddCommand(newShowCommand(client))
	rootCmd.AddCommand(newSetStatusCommand(client))
	rootCmd.AddCommand(newExportCommand(client))

	return rootCmd
}

func defaultServer() string {
	if s := os.Getenv("BACKLOT_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}
