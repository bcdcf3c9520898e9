package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepwise/backend/internal/config"
	"github.com/prepwise/backend/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's skill and construct state",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
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

		ctx := cmd.Context()
		skills, err := st.Repos().Skills.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		constructs, err := st.Repos().Constructs.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		fmt.Printf("Skills (%d):\n", len(skills))
		for _, s := range skills {
			fmt.Printf("  %-24s %-10s %5.1f%% accuracy, %d attempts\n",
				s.SkillID, s.Level, s.Accuracy, s.AttemptCount)
		}
		fmt.Printf("Constructs (%d):\n", len(constructs))
		for _, c := range constructs {
			fmt.Printf("  %-24s %5.1f score, %4.1f confidence, %s\n",
				c.Construct, c.Score, c.Confidence, c.Trend)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "User id to report on")
}
