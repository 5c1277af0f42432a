package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gapmapdev/gapmap/internal/curriculum"
	"github.com/gapmapdev/gapmap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gapmap",
	Short: "Learner skill-gap diagnosis engine",
	Long: "Gapmap diagnoses a learner's foundational skill gaps by reasoning over a\n" +
		"prerequisite graph of curriculum nodes, running adaptive diagnostic sessions\n" +
		"and merging multi-source evidence into one gap profile per learner.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GAPMAP_DB env var)")
	rootCmd.PersistentFlags().String("graph", "", "Path to the graph pack JSON file (overrides GAPMAP_GRAPH env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GAPMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

// resolveGraph loads the graph pack from --graph or GAPMAP_GRAPH.
func resolveGraph(cmd *cobra.Command) (*curriculum.Graph, error) {
	p, _ := cmd.Flags().GetString("graph")
	if p == "" {
		p = os.Getenv("GAPMAP_GRAPH")
	}
	if p == "" {
		return nil, fmt.Errorf("no graph pack: pass --graph or set GAPMAP_GRAPH")
	}
	return curriculum.LoadFile(p)
}
