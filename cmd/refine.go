package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/atlas/internal/pipeline"
	"github.com/abhisek/atlas/internal/profile"
	"github.com/abhisek/atlas/internal/refine"
	"github.com/abhisek/atlas/internal/ui"
	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine <session-id>",
	Short: "Partition the graph into keep, confirm and drop buckets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := thresholdsFromFlags(cmd)
		if err != nil {
			return err
		}

		var prof *profile.Signals
		if path, _ := cmd.Flags().GetString("profile"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read profile file: %w", err)
			}
			prof, err = profile.Parse(raw)
			if err != nil {
				return err
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := pipeline.FromStore(st, nil)
		report, err := p.Refine(cmd.Context(), args[0], prof, th)
		if err != nil {
			return err
		}

		if report.ProfileStale != nil {
			fmt.Println(ui.Warn(report.ProfileStale.Error()))
		}
		fmt.Print(ui.Buckets(report.Result))

		confirm := report.Result.InBucket(refine.BucketConfirm)
		if len(confirm) > 0 {
			fmt.Println(ui.Dim("confirm nodes with: atlas plan " + args[0] + " --confirm <node-id>"))
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <session-id>",
	Short: "Sequence the retained concepts into a lesson plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := thresholdsFromFlags(cmd)
		if err != nil {
			return err
		}

		confirmedIDs, _ := cmd.Flags().GetStringSlice("confirm")
		confirmed := make(map[string]bool, len(confirmedIDs))
		for _, id := range confirmedIDs {
			confirmed[id] = true
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p := pipeline.FromStore(st, nil)
		plan, err := p.Plan(ctx, args[0], confirmed, th)
		if err != nil {
			return err
		}

		g, _, err := p.Graph(ctx, args[0])
		if err != nil {
			return err
		}
		_, dropped, err := st.PlanRepo().Latest(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Print(ui.PlanView(plan, g, dropped))
		fmt.Println(ui.OK("session is now active"))
		return nil
	},
}

func thresholdsFromFlags(cmd *cobra.Command) (refine.Thresholds, error) {
	th := refine.DefaultThresholds()
	if v, _ := cmd.Flags().GetFloat64("low"); v != 0 {
		th.Low = v
	}
	if v, _ := cmd.Flags().GetFloat64("high"); v != 0 {
		th.High = v
	}
	return th, nil
}

func init() {
	refineCmd.Flags().String("profile", "", "Path to a profile-signals JSON document")
	refineCmd.Flags().Float64("low", 0, "Keep/confirm boundary on the composite score (default 0.3)")
	refineCmd.Flags().Float64("high", 0, "Confirm/drop boundary on the composite score (default 0.75)")

	planCmd.Flags().StringSlice("confirm", nil, "Node ids from the confirm bucket to treat as known")
	planCmd.Flags().Float64("low", 0, "Keep/confirm boundary on the composite score (default 0.3)")
	planCmd.Flags().Float64("high", 0, "Confirm/drop boundary on the composite score (default 0.75)")
}
