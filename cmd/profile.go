package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gapmapdev/gapmap/internal/profile"
	"github.com/gapmapdev/gapmap/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile <learner-id>",
	Short: "Show a learner's current gap profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]
		showHistory, _ := cmd.Flags().GetInt("history")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.ProfileRepo()

		p, err := repo.LoadCurrent(ctx, learnerID)
		if errors.Is(err, profile.ErrNotFound) {
			fmt.Printf("No profile for learner %s yet.\n", learnerID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		printProfile(p)

		if showHistory > 0 {
			history, err := repo.History(ctx, learnerID, showHistory)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			fmt.Println()
			fmt.Println("History")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-4s  %-19s  %-20s  %-14s  %5s  %4s\n",
				"Ver", "Updated", "Source", "Primary Gap", "Gaps", "Conf")
			fmt.Println(strings.Repeat("─", 72))
			for _, v := range history {
				fmt.Printf("%-4d  %-19s  %-20s  %-14s  %5d  %.2f\n",
					v.Version,
					v.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
					v.Source,
					v.PrimaryGap,
					len(v.Gap),
					v.Confidence)
			}
		}
		return nil
	},
}

func printProfile(p *profile.Profile) {
	fmt.Printf("Learner:     %s (version %d, updated %s)\n",
		p.LearnerID, p.Version, p.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Source:      %s\n", p.Source)
	fmt.Printf("Confidence:  %.2f\n", p.Confidence)
	if p.PrimaryGap != "" {
		fmt.Printf("Primary gap: %s\n", p.PrimaryGap)
	}
	if p.CascadeLabel != "" {
		fmt.Printf("Cascade:     %s\n", p.CascadeLabel)
	}
	fmt.Printf("Tested:      %s\n", joinOrNone(p.Tested))
	fmt.Printf("Gaps:        %s\n", joinOrNone(p.Gap))
	fmt.Printf("Mastered:    %s\n", joinOrNone(p.Mastered))
}

func joinOrNone(codes []string) string {
	if len(codes) == 0 {
		return "(none)"
	}
	return strings.Join(codes, ", ")
}

func init() {
	profileCmd.Flags().Int("history", 0, "Also show the N most recent profile versions")
}
