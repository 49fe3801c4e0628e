package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/atlas/internal/pipeline"
	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/ui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <session-id>",
	Short: "Show mastery progress for an active session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p := pipeline.FromStore(st, nil)
		if _, err := p.Resume(ctx, args[0]); err != nil {
			return err
		}

		sum, err := p.Tracker().Summarize(args[0])
		if err != nil {
			return err
		}
		current, _ := p.Tracker().CurrentTopic(args[0])
		fmt.Print(ui.ProgressSummary(sum, current))
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <session-id> <node-id> <outcome>",
	Short: "Record a learning-activity outcome against a topic",
	Long: "Record the outcome of a learning activity. Outcome is one of: correct,\n" +
		"incorrect, too_easy, confused.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome := progress.Outcome(args[2])
		if !progress.ValidOutcome(outcome) {
			return fmt.Errorf("unknown outcome %q", args[2])
		}

		eventID, _ := cmd.Flags().GetString("event-id")
		if eventID == "" {
			eventID = uuid.New().String()
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p := pipeline.FromStore(st, nil)
		if _, err := p.Resume(ctx, args[0]); err != nil {
			return err
		}

		rec, err := p.Apply(ctx, progress.ActivityEvent{
			EventID:   eventID,
			SessionID: args[0],
			NodeID:    args[1],
			Outcome:   outcome,
			At:        time.Now(),
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: mastery %.2f (%s)\n", rec.NodeID, rec.MasteryLevel, rec.State)

		sum, err := p.Tracker().Summarize(args[0])
		if err != nil {
			return err
		}
		current, _ := p.Tracker().CurrentTopic(args[0])
		fmt.Print(ui.ProgressSummary(sum, current))
		return nil
	},
}

func init() {
	applyCmd.Flags().String("event-id", "", "Client-assigned event id (defaults to a random UUID)")
}
