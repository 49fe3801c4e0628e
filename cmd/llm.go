package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/atlas/internal/llm"
	"github.com/abhisek/atlas/internal/store"
	"github.com/abhisek/atlas/internal/ui"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM call events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		calls, err := st.EventRepo().QueryLLMCalls(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query calls: %w", err)
		}
		if len(calls) == 0 {
			fmt.Println("No LLM calls recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-18s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, c := range calls {
			if purpose != "" && c.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !c.Success {
				ok = "✗"
			}
			model := c.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-18s  %-28s  %-6d  %-6d  %-7d  %s\n",
				c.Sequence,
				c.Timestamp.Local().Format("2006-01-02 15:04:05"),
				c.Purpose,
				model,
				c.InputTokens,
				c.OutputTokens,
				c.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		usage, err := st.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Print(ui.UsageTable(usage))

		calls, err := st.EventRepo().QueryLLMCalls(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query calls: %w", err)
		}
		printCostEstimate(calls)
		return nil
	},
}

type modelUsage struct {
	calls int
	in    int
	out   int
}

// printCostEstimate groups calls by model and prices them against the
// published per-million-token rates. Models without a known rate are
// listed but excluded from the total.
func printCostEstimate(calls []store.LLMCall) {
	byModel := make(map[string]*modelUsage)
	for _, c := range calls {
		mu := byModel[c.Model]
		if mu == nil {
			mu = &modelUsage{}
			byModel[c.Model] = mu
		}
		mu.calls++
		mu.in += c.InputTokens
		mu.out += c.OutputTokens
	}

	models := make([]string, 0, len(byModel))
	for m := range byModel {
		models = append(models, m)
	}
	sort.Strings(models)

	fmt.Println()
	fmt.Println("Estimated cost (USD)")
	fmt.Printf("  %-32s %6s %10s %10s %10s\n", "model", "calls", "in tok", "out tok", "cost")

	var total float64
	var unknown []string
	for _, m := range models {
		mu := byModel[m]
		cost := llm.LookupCost(m)
		if cost == nil {
			unknown = append(unknown, m)
			fmt.Printf("  %-32s %6d %10d %10d %10s\n", truncate(m, 32), mu.calls, mu.in, mu.out, "?")
			continue
		}
		c := cost.Cost(mu.in, mu.out)
		total += c
		fmt.Printf("  %-32s %6d %10d %10d %10s\n", truncate(m, 32), mu.calls, mu.in, mu.out, formatCost(c))
	}

	label := "total"
	if len(unknown) > 0 {
		label = "total (partial)"
	}
	fmt.Printf("  %-32s %6s %10s %10s %10s\n", label, "", "", "", formatCost(total))
	if len(unknown) > 0 {
		fmt.Printf("  pricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. graph-extraction, profile-analysis)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
