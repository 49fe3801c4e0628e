// Package ui renders pipeline output for the terminal. Atlas is
// non-interactive; lesson delivery lives elsewhere, so this is styled
// printing, not a screen loop.
package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/atlas/internal/knowledge"
	"github.com/abhisek/atlas/internal/progress"
	"github.com/abhisek/atlas/internal/refine"
	"github.com/abhisek/atlas/internal/sequence"
	"github.com/abhisek/atlas/internal/store"
)

// Color palette
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	teal    = lipgloss.Color("#14B8A6")
	orange  = lipgloss.Color("#F97316")
	green   = lipgloss.Color("#22C55E")
	rose    = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	keepStyle  = lipgloss.NewStyle().Foreground(green).Bold(true)
	askStyle   = lipgloss.NewStyle().Foreground(orange).Bold(true)
	dropStyle  = lipgloss.NewStyle().Foreground(dim)
	warnStyle  = lipgloss.NewStyle().Foreground(rose).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(green)
	barFilled  = lipgloss.NewStyle().Foreground(teal)
)

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Warn renders an attention-grabbing notice.
func Warn(s string) string {
	return warnStyle.Render(s)
}

// OK renders a success notice.
func OK(s string) string {
	return okStyle.Render(s)
}

// Dim renders de-emphasized text.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// GraphSummary renders the shape of a stored knowledge graph.
func GraphSummary(g *knowledge.Graph, meta *store.GraphMeta) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Knowledge graph"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  concepts: %d   edges: %d   max depth: %d\n", g.Len(), len(g.Edges()), g.MaxNodeDepth())

	counts := g.RelationshipCounts()
	fmt.Fprintf(&b, "  requires: %d   builds_on: %d   related: %d\n",
		counts[knowledge.RelRequires], counts[knowledge.RelBuildsOn], counts[knowledge.RelRelated])

	if meta != nil && meta.Model != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  extracted by %s at %s", meta.Model, meta.CreatedAt.Format("2006-01-02 15:04"))))
		b.WriteString("\n")
	}

	roots := g.Roots()
	if len(roots) > 0 {
		b.WriteString("  domains: ")
		labels := make([]string, 0, len(roots))
		for _, r := range roots {
			labels = append(labels, r.Label)
		}
		b.WriteString(strings.Join(labels, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

// Buckets renders a refinement result grouped by bucket.
func Buckets(r *refine.Result) string {
	var b strings.Builder

	if r.LowConfidence {
		b.WriteString(warnStyle.Render("low confidence: profile signals stale or missing, using extraction priors"))
		b.WriteString("\n\n")
	}

	sections := []struct {
		bucket refine.Bucket
		style  lipgloss.Style
		label  string
	}{
		{refine.BucketKeep, keepStyle, "KEEP (will be studied)"},
		{refine.BucketConfirm, askStyle, "CONFIRM (your call)"},
		{refine.BucketDrop, dropStyle, "DROP (treated as known)"},
	}

	for _, sec := range sections {
		decisions := r.InBucket(sec.bucket)
		b.WriteString(sec.style.Render(fmt.Sprintf("%s — %d", sec.label, len(decisions))))
		b.WriteString("\n")
		for _, d := range decisions {
			fmt.Fprintf(&b, "  %-28s %.2f  %s\n", d.Label, d.Composite, dimStyle.Render(d.Reasoning))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PlanView renders a sequenced lesson plan.
func PlanView(plan *sequence.Plan, g *knowledge.Graph, dropped []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lesson plan"))
	b.WriteString("\n")

	for _, e := range plan.Entries {
		label := e.NodeID
		if g != nil {
			if n, err := g.Node(e.NodeID); err == nil {
				label = n.Label
			}
		}
		fmt.Fprintf(&b, "  %2d. %s\n", e.OrderIndex+1, label)
	}

	if len(dropped) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  skipped as already known: %s", strings.Join(dropped, ", "))))
		b.WriteString("\n")
	}
	return b.String()
}

// ProgressSummary renders session progress with a completion bar.
func ProgressSummary(sum *progress.Summary, current string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Progress"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %d/%d topics mastered (%.0f%%)\n",
		bar(sum.ProgressPercentage, 24), sum.CompletedTopics, sum.TotalTopics, sum.ProgressPercentage)
	fmt.Fprintf(&b, "  average mastery: %.2f\n", sum.AverageMastery)

	switch {
	case sum.CourseComplete:
		b.WriteString(okStyle.Render("  course complete"))
		b.WriteString("\n")
	case current != "":
		fmt.Fprintf(&b, "  current topic: %s\n", current)
	}
	return b.String()
}

// UsageTable renders LLM usage grouped by purpose.
func UsageTable(rows []store.PurposeUsage) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LLM usage"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-20s %6s %6s %10s %10s\n", "purpose", "calls", "fails", "in tok", "out tok")
	for _, u := range rows {
		fmt.Fprintf(&b, "  %-20s %6d %6d %10d %10d\n", u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens)
	}
	return b.String()
}

// bar renders a fixed-width completion bar for pct in [0,100].
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return barFilled.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
