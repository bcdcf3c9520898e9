package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepwise/backend/internal/config"
	"github.com/prepwise/backend/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored state for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to delete data for %q without --yes", userID)
		}

		dbPath, err := resolveDBPath(cmd, config.Load().DBPath)
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.DeleteUserData(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("reset user: %w", err)
		}
		fmt.Printf("Deleted %d rows for %s\n", n, userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "User id to reset")
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
