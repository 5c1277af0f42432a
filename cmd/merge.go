package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gapmapdev/gapmap/internal/logging"
	"github.com/gapmapdev/gapmap/internal/profile"
	"github.com/gapmapdev/gapmap/internal/store"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <learner-id> <delta.json>",
	Short: "Merge an observation delta into a learner's gap profile",
	Long: "Folds a delta (tested/gap/mastered node sets, confidence) from any\n" +
		"observation source into the learner's current profile. The delta file is\n" +
		"JSON with keys: tested, gap, mastered, confidence.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]
		source, _ := cmd.Flags().GetString("source")

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read delta file: %w", err)
		}
		var delta profile.Delta
		if err := json.Unmarshal(data, &delta); err != nil {
			return fmt.Errorf("parse delta file: %w", err)
		}

		graph, err := resolveGraph(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		log, err := logging.New(logging.ConfigFromEnv())
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer log.Sync()

		merger := profile.NewMerger(graph, s.ProfileRepo(), s.EventRepo(), log)
		summary, err := merger.Merge(context.Background(), learnerID, profile.Source(source), delta)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		fmt.Printf("Merged %s delta into profile for %s (now version %d).\n",
			summary.Source, summary.LearnerID, summary.Version)
		fmt.Printf("Gaps: %d, mastered: %d, confidence: %.2f\n",
			summary.GapCount, summary.MasteredCount, summary.Confidence)
		if summary.PrimaryGap != "" {
			fmt.Printf("Primary gap: %s\n", summary.PrimaryGap)
		}
		if summary.CascadeLabel != "" {
			fmt.Printf("Cascade: %s\n", summary.CascadeLabel)
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().String("source", string(profile.SourceExerciseBook),
		"Observation source tag (diagnostic_session, exercise_book, teacher_observation, engagement_signal)")
}
