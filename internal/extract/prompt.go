package extract

import (
	"fmt"
	"strings"
)

// maxMaterialChars bounds how much of each material goes into the
// prompt. Long PDFs get truncated rather than blowing the token budget.
const maxMaterialChars = 24000

const systemPrompt = `You are a curriculum designer decomposing learning material into a knowledge graph.

Rules:
- Extract the concepts a learner must master to reach the stated goal, using only what the source materials actually cover.
- Every node needs a stable snake_case id, a short human label, and a type: "domain" (broad area), "concept" (single idea), "method" (procedure or technique), "theory" (formal result), "tool" (software or instrument), or "foundation" (assumed background).
- Assign each node a depth from 0 to 6. Depth 0 is a top-level domain; each level below is more specific. Never exceed depth 6.
- Estimate mastery_likelihood in [0,1]: the probability a typical learner at this goal level already knows the concept.
- List the ids of the source materials that evidence each node in source_material_ids. Do not invent concepts the materials never mention.
- Connect nodes with edges: "requires" (hard prerequisite, must be learned first), "builds_on" (soft prerequisite, helpful but not mandatory), "related" (lateral connection, no ordering).
- Most edges should be "requires" or "builds_on". Use "related" sparingly.
- Every "requires" and "builds_on" edge needs a one-sentence reasoning explaining the dependency.
- A "requires" edge must point from a shallower or equal-depth node to a deeper one. Never create dependency cycles.
- Top-level domains must not require each other.`

// buildUserMessage assembles the goal and materials into the user turn.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learning goal: %s\n", input.Goal)
	fmt.Fprintf(&b, "\nSource materials (%d):\n", len(input.Materials))

	for _, m := range input.Materials {
		fmt.Fprintf(&b, "\n--- material id=%s title=%q ---\n", m.ID, m.Title)
		b.WriteString(clip(m.Content, maxMaterialChars))
		b.WriteString("\n")
	}

	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n[... truncated ...]"
}
