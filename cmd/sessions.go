package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adixit/intervue/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List past interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.EventRepo().ListSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No interviews yet. Run `intervue` to start one.")
			return nil
		}

		// Header.
		fmt.Printf("%-8s  %-19s  %-11s  %5s  %9s  %7s  %5s\n",
			"Session", "When", "Outcome", "Score", "Questions", "Correct", "Match")
		fmt.Println(strings.Repeat("─", 80))

		for _, ss := range sessions {
			fmt.Printf("%-8s  %-19s  %-11s  %5d  %9d  %7d  %4d%%\n",
				shortID(ss.SessionID),
				ss.Timestamp.Local().Format("2006-01-02 15:04:05"),
				outcomeLabel(ss.Action),
				ss.Score,
				ss.QuestionsServed,
				ss.CorrectAnswers,
				ss.SkillMatchPct,
			)
		}

		fmt.Printf("\n%d sessions\n", len(sessions))
		return nil
	},
}

// shortID truncates a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func outcomeLabel(action string) string {
	switch action {
	case "completed":
		return "completed"
	case "terminated":
		return "ended early"
	case "abandoned":
		return "abandoned"
	default:
		return "in progress"
	}
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
