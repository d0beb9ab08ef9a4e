package graph

import (
	"fmt"
	"strings"

	"sysdrill/pkg/level"
)

// Overlay contains session progress to visualize on the graph.
type Overlay struct {
	CompletedLevels []string
	CurrentLevel    string
}

// Campaign produces a Mermaid flowchart syntax string for a catalog.
// It applies semantic styling:
// - Start/Finish: ((Circle))
// - Level: [Rectangle]
// - Step: [[Subroutine]]
// The XP reward labels the edge out of each step. It also applies
// overlay styles (Completed/Current) if provided.
func Campaign(catalog *level.Catalog, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    start((\"Start\"))\n")

	prev := "start"
	prevXP := 0
	edge := func(to string) {
		if prevXP > 0 {
			sb.WriteString(fmt.Sprintf("    %s -- \"+%d XP\" --> %s\n", prev, prevXP, to))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, to))
		}
	}

	for i := range catalog.Levels {
		lvl := &catalog.Levels[i]
		safeID := sanitizeMermaidID(lvl.ID)

		sb.WriteString(fmt.Sprintf("    %s[\"%d. %s\"]\n", safeID, i+1, escapeLabel(lvl.Title)))
		edge(safeID)
		prev, prevXP = safeID, 0

		for j := range lvl.Steps {
			stepID := fmt.Sprintf("%s_s%d", safeID, j+1)
			sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", stepID, escapeLabel(lvl.Steps[j].Task)))
			edge(stepID)
			prev, prevXP = stepID, lvl.Steps[j].Success.XP
		}
	}

	sb.WriteString(fmt.Sprintf("    finish((\"%d XP\"))\n", catalog.TotalXP()))
	edge("finish")

	if overlay != nil {
		sb.WriteString("\n    %% Progress Styles\n")
		sb.WriteString("    classDef completed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.CompletedLevels {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s completed;\n", safeID))
			}
		}
		if overlay.CurrentLevel != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentLevel)))
		}
	}

	return sb.String()
}

// escapeLabel rewrites double quotes so a string stays inside one
// quoted Mermaid label.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
