package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gapmapdev/gapmap/internal/classify"
	"github.com/gapmapdev/gapmap/internal/logging"
	"github.com/gapmapdev/gapmap/internal/profile"
	"github.com/gapmapdev/gapmap/internal/session"
	"github.com/gapmapdev/gapmap/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive diagnostic session",
	Long: "Starts an adaptive diagnostic session for a learner: screening probes at\n" +
		"the entry grade, backward tracing along prerequisite chains when a gap is\n" +
		"found, and a cross-check probe when several cascade patterns fit. The\n" +
		"resulting delta is merged into the learner's gap profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		grade, _ := cmd.Flags().GetInt("grade")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		clsCfg := classify.ConfigFromEnv()
		if err := clsCfg.Validate(); err != nil {
			discovered, ok := classify.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no classifier configured: %w", err)
			}
			clsCfg = discovered
		}
		classifier, err := classify.New(ctx, clsCfg, s.EventRepo(), log)
		if err != nil {
			return fmt.Errorf("init classifier: %w", err)
		}

		sessCfg := session.ConfigFromEnv()
		if err := sessCfg.Validate(); err != nil {
			return fmt.Errorf("session config: %w", err)
		}
		engine := session.NewEngine(graph, classifier, s.SessionRepo(), s.EventRepo(), log, sessCfg)

		step, err := engine.CreateSession(ctx, learnerID, grade)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		sessionID := step.SessionID
		fmt.Printf("Session %s started for %s (grade %d, classifier %s).\n",
			sessionID, learnerID, grade, classifier.ModelID())
		fmt.Println("For each probe, enter the question you posed, then the learner's answer.")
		fmt.Println("Ctrl-D to abandon.")

		in := bufio.NewScanner(os.Stdin)
		for step.NextProbe != nil {
			probe := step.NextProbe
			fmt.Printf("\n[%s] probe %s (grade %d)\n", probe.Phase, probe.NodeCode, probe.Grade)

			question, ok := readLine(in, "question> ")
			if !ok {
				if err := in.Err(); err != nil {
					return fmt.Errorf("read question: %w", err)
				}
				return abandonSession(ctx, engine, sessionID)
			}
			answer, ok := readLine(in, "answer>   ")
			if !ok {
				if err := in.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				return abandonSession(ctx, engine, sessionID)
			}

			step, err = engine.SubmitProbeResponse(ctx, sessionID, question, answer)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return abandonSession(context.Background(), engine, sessionID)
				}
				return fmt.Errorf("submit response: %w", err)
			}
		}

		if step.Phase != session.PhaseComplete || step.Delta == nil {
			fmt.Printf("Session ended in phase %s with no delta.\n", step.Phase)
			return nil
		}

		merger := profile.NewMerger(graph, s.ProfileRepo(), s.EventRepo(), log)
		summary, err := merger.Merge(context.Background(), learnerID, profile.SourceSession, *step.Delta)
		if err != nil {
			return fmt.Errorf("merge session delta: %w", err)
		}

		fmt.Printf("\nSession complete. Profile for %s is now version %d.\n",
			learnerID, summary.Version)
		fmt.Printf("Tested %d nodes: %d gaps, %d mastered (confidence %.2f).\n",
			len(step.Delta.Tested), summary.GapCount, summary.MasteredCount, summary.Confidence)
		if summary.PrimaryGap != "" {
			fmt.Printf("Primary gap: %s\n", summary.PrimaryGap)
		}
		if summary.CascadeLabel != "" {
			fmt.Printf("Cascade: %s\n", summary.CascadeLabel)
		}
		return nil
	},
}

// readLine prompts until a non-empty line arrives. Returns false on EOF.
func readLine(in *bufio.Scanner, prompt string) (string, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return "", false
		}
		if line := strings.TrimSpace(in.Text()); line != "" {
			return line, true
		}
	}
}

// abandonSession marks the session abandoned and reports the partial
// evidence without merging it.
func abandonSession(ctx context.Context, engine *session.Engine, sessionID string) error {
	sess, err := engine.Abandon(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	fmt.Printf("\nSession abandoned after %d probes (%d gaps found, not merged).\n",
		len(sess.Probes), len(sess.Gap))
	return nil
}

func init() {
	runCmd.Flags().String("learner", "", "Learner identifier (required)")
	runCmd.Flags().Int("grade", 4, "Entry grade for screening")
}
