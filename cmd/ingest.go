package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/atlas/internal/extract"
	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/llm"
	"github.com/abhisek/atlas/internal/pipeline"
	"github.com/abhisek/atlas/internal/ui"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <session-id> <material-file>...",
	Short: "Extract a knowledge graph from learning material and start a session",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		if strings.TrimSpace(goal) == "" {
			return fmt.Errorf("--goal is required")
		}

		sessionID := args[0]
		materials, err := readMaterials(args[1:])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		p := pipeline.FromStore(st, extract.New(provider, extract.DefaultConfig()))
		report, err := p.Ingest(ctx, sessionID, goal, materials)
		if err != nil {
			return withRegenerateHint(err)
		}

		g, meta, err := p.Graph(ctx, sessionID)
		if err != nil {
			return err
		}

		fmt.Print(ui.GraphSummary(g, meta))
		fmt.Println(ui.Dim(fmt.Sprintf("  %d input / %d output tokens (%s)",
			report.Usage.InputTokens, report.Usage.OutputTokens, report.Model)))
		fmt.Println(ui.OK(fmt.Sprintf("session %q created", report.SessionID)))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <session-id> <graph-file>",
	Short: "Start a session from an externally produced graph document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		if strings.TrimSpace(goal) == "" {
			return fmt.Errorf("--goal is required")
		}

		raw, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read graph file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := pipeline.FromStore(st, nil)
		g, err := p.Import(cmd.Context(), args[0], goal, raw)
		if err != nil {
			return withRegenerateHint(err)
		}

		fmt.Print(ui.GraphSummary(g, nil))
		fmt.Println(ui.OK(fmt.Sprintf("session %q created", args[0])))
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <session-id>",
	Short: "Show the session's knowledge graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := pipeline.FromStore(st, nil)
		g, meta, err := p.Graph(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Print(ui.GraphSummary(g, meta))
		return nil
	},
}

// withRegenerateHint translates graph-validation failures into actionable
// guidance. The diagnostics stay attached for anyone who wants the detail.
func withRegenerateHint(err error) error {
	var verr *knowledge.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("the knowledge map is inconsistent, please regenerate it: %w", err)
	}
	return err
}

// readMaterials loads each file as one source material. The file's base
// name (without extension) becomes the material id the extractor cites in
// source_material_ids.
func readMaterials(paths []string) ([]extract.Material, error) {
	materials := make([]extract.Material, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read material %s: %w", path, err)
		}
		base := filepath.Base(path)
		id := strings.TrimSuffix(base, filepath.Ext(base))
		materials = append(materials, extract.Material{
			ID:      id,
			Title:   base,
			Content: string(content),
		})
	}
	return materials, nil
}

func init() {
	ingestCmd.Flags().String("goal", "", "Learning goal the curriculum should serve")
	importCmd.Flags().String("goal", "", "Learning goal the curriculum should serve")
}
