package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gapmapdev/gapmap/internal/curriculum"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.json>",
	Short: "Validate a graph pack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := curriculum.LoadFile(args[0])
		if err != nil {
			var verr *curriculum.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("Graph pack invalid (%d problems):\n", len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Printf("  - %s\n", p)
				}
			}
			return fmt.Errorf("validate %s: %w", args[0], err)
		}

		fmt.Printf("Graph pack OK: %d nodes, %d cascades\n", len(g.Nodes()), len(g.Cascades()))
		return nil
	},
}
