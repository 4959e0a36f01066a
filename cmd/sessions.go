package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/numsense/internal/engine"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions with their current classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, _ := cmd.Flags().GetBool("snapshot")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		eng := engine.New(engine.Config{
			Events:    s.EventRepo(),
			Snapshots: s.SnapshotRepo(),
		})

		ctx := context.Background()
		if err := eng.LoadFromEvents(ctx); err != nil {
			return fmt.Errorf("replay event log: %w", err)
		}

		ids := eng.SessionIDs()
		if len(ids) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		sort.Strings(ids)

		fmt.Printf("%-38s  %8s  %-28s  %6s  %5s\n",
			"Session", "Attempts", "Pattern", "Score", "Prob")
		fmt.Println(strings.Repeat("─", 94))

		for _, id := range ids {
			sess, err := eng.Session(id)
			if err != nil {
				continue
			}
			rep, _ := eng.ScoreSession(id)
			pred, _, _ := eng.Classify(id)

			fmt.Printf("%-38s  %8d  %-28s  %6.1f  %5.2f\n",
				id, sess.AttemptCount(), rep.Pattern, rep.Score, pred.Probability)
		}

		if snapshot {
			if err := eng.SaveSnapshot(ctx, 0); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			fmt.Println("\nSnapshot saved.")
		}

		return nil
	},
}

func init() {
	sessionsCmd.Flags().Bool("snapshot", false, "Save an analysis snapshot after listing")
}
