package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/adixit/intervue/internal/readiness"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the latest readiness report",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")

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
		var rep *readiness.Report
		if sessionID != "" {
			rep, err = s.ReportRepo().BySession(ctx, sessionID)
		} else {
			rep, err = s.ReportRepo().Latest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load report: %w", err)
		}
		if rep == nil {
			if sessionID != "" {
				return fmt.Errorf("no report found for session %q", sessionID)
			}
			fmt.Println("No reports yet. Run an interview first.")
			return nil
		}

		printReport(rep)
		return nil
	},
}

func printReport(rep *readiness.Report) {
	verdictText := "Needs more preparation"
	if rep.Verdict == readiness.VerdictReady {
		verdictText = "Ready for interviews"
	}

	fmt.Printf("Session:      %s\n", rep.SessionID)
	fmt.Printf("Verdict:      %s\n", verdictText)
	if rep.Terminated {
		fmt.Println("              (interview ended early)")
	}
	fmt.Printf("Score:        %d\n", rep.Score)
	fmt.Printf("Skill match:  %d%%\n", rep.MatchPct)
	fmt.Printf("Confidence:   %s\n", rep.Confidence)
	fmt.Printf("Avg response: %.1fs\n", rep.AvgTime.Seconds())
	fmt.Printf("Strikes:      %d\n", rep.Strikes)

	if len(rep.SkillScore) > 0 {
		fmt.Println()
		fmt.Println("Skill performance")
		fmt.Println(strings.Repeat("─", 40))

		tags := make([]skills.Tag, 0, len(rep.SkillScore))
		for tag := range rep.SkillScore {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

		for _, tag := range tags {
			count := rep.SkillScore[tag]
			fmt.Printf("  %-20s %s %d\n", tag, strings.Repeat("●", count), count)
		}
	}

	if len(rep.Plan) > 0 {
		fmt.Println()
		fmt.Println("Improvement plan")
		fmt.Println(strings.Repeat("─", 40))
		for _, item := range rep.Plan {
			fmt.Printf("  • %s\n", item)
		}
	}
}

func init() {
	reportCmd.Flags().StringP("session", "s", "", "Session ID (defaults to the most recent report)")
}
