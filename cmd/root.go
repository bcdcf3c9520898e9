package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prepwise/backend/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepwise",
	Short: "Exam-prep scoring and planning service",
	Long:  "Prepwise — attempt scoring, mastery tracking, and adaptive study-plan generation for exam prep.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPWISE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, fromEnv string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromEnv != "" {
		return fromEnv, store.EnsureDir(fromEnv)
	}
	return store.DefaultDBPath()
}
