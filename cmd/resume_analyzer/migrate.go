package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateDBURL string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables if they do not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		database, err := connectDB(cmd.Context(), migrateDBURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDBURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	rootCmd.AddCommand(migrateCmd)
}
