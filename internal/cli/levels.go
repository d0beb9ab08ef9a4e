package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"sysdrill/internal/graph"
	"sysdrill/pkg/level"
)

// LevelsOptions contains the configuration for the levels command.
type LevelsOptions struct {
	LevelsPath string // catalog override, empty uses the built-in campaign
	Export     bool   // dump the built-in catalog as YAML instead
	Graph      bool   // render the campaign as a Mermaid flowchart instead
	Out        io.Writer
}

// RunLevels prints a summary table of the campaign. With Export it
// writes the built-in catalog YAML, ready to be edited and passed back
// via --levels. With Graph it renders the catalog as a Mermaid
// flowchart.
func RunLevels(opts LevelsOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.Export {
		_, err := out.Write(level.DefaultYAML())
		return err
	}

	catalog, err := loadCatalog(opts.LevelsPath)
	if err != nil {
		return err
	}

	if opts.Graph {
		_, err := io.WriteString(out, graph.Campaign(catalog, nil))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE\tSTEPS\tXP")
	for i := range catalog.Levels {
		lvl := &catalog.Levels[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i+1, lvl.ID, lvl.Title, len(lvl.Steps), lvl.TotalXP())
	}
	fmt.Fprintf(w, "\t\t\t\t%d total\n", catalog.TotalXP())
	return w.Flush()
}
