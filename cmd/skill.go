package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the interview skill vocabulary",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills with question counts and historical accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		b := bank.Default()
		counts := make(map[skills.Tag]map[bank.Difficulty]int)
		for _, d := range bank.AllDifficulties() {
			qs, err := b.QuestionsFor(d)
			if err != nil {
				continue
			}
			for _, q := range qs {
				if counts[q.Skill] == nil {
					counts[q.Skill] = make(map[bank.Difficulty]int)
				}
				counts[q.Skill][d]++
			}
		}

		ctx := context.Background()
		repo := s.EventRepo()

		// Header.
		fmt.Printf("%-16s  %4s  %6s  %4s  %8s\n",
			"Skill", "Easy", "Medium", "Hard", "Accuracy")
		fmt.Println(strings.Repeat("─", 48))

		vocabulary := skills.DefaultVocabulary()
		for _, tag := range vocabulary {
			acc, err := repo.SkillAccuracy(ctx, string(tag))
			if err != nil {
				return fmt.Errorf("skill accuracy for %s: %w", tag, err)
			}
			fmt.Printf("%-16s  %4d  %6d  %4d  %7.0f%%\n",
				tag,
				counts[tag][bank.Easy],
				counts[tag][bank.Medium],
				counts[tag][bank.Hard],
				acc*100,
			)
		}

		fmt.Printf("\n%d skills, %d questions\n", len(vocabulary), b.Size())
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
}
