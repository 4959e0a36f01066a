package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/numsense/internal/engine"
	"github.com/spf13/cobra"
)

var flashCmd = &cobra.Command{
	Use:   "flash <session-id>",
	Short: "Compute the next flash stimulus duration for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		eng := engine.New(engine.Config{Events: s.EventRepo()})
		if err := eng.LoadFromEvents(context.Background()); err != nil {
			return fmt.Errorf("replay event log: %w", err)
		}

		duration := eng.NextStimulusDuration(args[0], difficulty)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(duration)
		}

		fmt.Printf("Duration:  %dms\n", duration.DurationMs)
		fmt.Printf("Base:      %dms\n", duration.BaseDurationMs)
		if duration.PerformancePct != nil {
			fmt.Printf("Accuracy:  %.1f%%\n", *duration.PerformancePct)
		}
		fmt.Printf("Reason:    %s\n", duration.Reason)
		return nil
	},
}

func init() {
	flashCmd.Flags().IntP("difficulty", "d", 3, "Difficulty level (1-10)")
	flashCmd.Flags().Bool("json", false, "Emit the result as JSON")
}
