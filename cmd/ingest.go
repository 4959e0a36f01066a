package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/numsense/internal/engine"
	"github.com/abhisek/numsense/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ingestDocument is the accepted input shape: a full session recording.
type ingestDocument struct {
	SessionID        string            `json:"session_id"`
	Attempts         []session.Attempt `json:"attempts"`
	Exposures        []session.Record  `json:"exposures"`
	StressIndicators []session.Record  `json:"stress_indicators"`
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Record a session's attempts into the event log",
	Long: "Reads a JSON document with attempts, exposures and stress indicators\n" +
		"and appends everything to the event log. Reads stdin when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			r = f
		}

		var doc ingestDocument
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return fmt.Errorf("decode input: %w", err)
		}

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = doc.SessionID
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		eng := engine.New(engine.Config{Events: s.EventRepo()})
		ctx := context.Background()

		for _, a := range doc.Attempts {
			eng.RecordAttempt(ctx, sessionID, a)
		}
		for _, r := range doc.Exposures {
			eng.RecordExposure(ctx, sessionID, r)
		}
		for _, r := range doc.StressIndicators {
			eng.RecordStressIndicator(ctx, sessionID, r)
		}

		fmt.Printf("Session %s: recorded %d attempts, %d exposures, %d stress indicators\n",
			sessionID, len(doc.Attempts), len(doc.Exposures), len(doc.StressIndicators))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringP("session", "s", "", "Session ID (defaults to the document's, then a new UUID)")
}
