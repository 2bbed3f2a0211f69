package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walterairs/just-remember/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "just-remember",
	Short: "Spaced-repetition trainer for Japanese grammar",
	Long:  "just-remember — terminal spaced-repetition trainer that schedules Japanese grammar reviews on a WaniKani-style stage ladder.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JUST_REMEMBER_DB env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(makeDueCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JUST_REMEMBER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
