package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Printf("%-24s  %-10s  %-19s  %s\n", "Session", "Status", "Created", "Goal")
		fmt.Println(strings.Repeat("─", 90))
		for _, s := range sessions {
			goal := s.Goal
			if len(goal) > 40 {
				goal = goal[:37] + "..."
			}
			fmt.Printf("%-24s  %-10s  %-19s  %s\n",
				s.SessionID, s.Status, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), goal)
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Delete a session and everything derived from it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes the session's graph, plan, mastery and activity history; re-run with --force to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SessionRepo().Reset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("session %q deleted\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
