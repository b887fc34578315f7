package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/interview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Practice bank questions for one tier (no database)",
	Long: `Answer questions from the catalog at a fixed difficulty tier.

This is a stateless developer tool — no database, no adaptive difficulty, no
events. Useful for evaluating question quality and testing custom catalogs.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("tier", "easy", "Difficulty tier: easy, medium, or hard")
	previewCmd.Flags().String("skill", "", "Only show questions for this skill tag")
	previewCmd.Flags().Int("count", 5, "Number of questions to ask")
	previewCmd.Flags().String("catalog", "", "Path to a JSON question catalog (defaults to the built-in bank)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tierVal, _ := cmd.Flags().GetString("tier")
	skillVal, _ := cmd.Flags().GetString("skill")
	count, _ := cmd.Flags().GetInt("count")
	catalogPath, _ := cmd.Flags().GetString("catalog")

	var tier bank.Difficulty
	switch strings.ToLower(tierVal) {
	case "easy":
		tier = bank.Easy
	case "medium":
		tier = bank.Medium
	case "hard":
		tier = bank.Hard
	default:
		return fmt.Errorf("invalid tier %q: must be easy, medium, or hard", tierVal)
	}

	b := bank.Default()
	if catalogPath != "" {
		loaded, err := bank.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		b = loaded
	}

	questions, err := b.QuestionsFor(tier)
	if err != nil {
		return fmt.Errorf("tier %s: %w", tier, err)
	}
	if skillVal != "" {
		var filtered []bank.Question
		for _, q := range questions {
			if string(q.Skill) == skillVal {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no %s questions for skill %q", tier, skillVal)
		}
		questions = filtered
	}
	if count > len(questions) {
		count = len(questions)
	}

	cfg := interview.DefaultConfig()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Tier: %s — %d questions\n\n", tier.DisplayName(), count)

	var correct int
	for i := 0; i < count; i++ {
		q := questions[i]

		fmt.Printf("── Question %d/%d ── [%s]\n", i+1, count, q.Skill)
		fmt.Println(q.Text)
		if q.Format == bank.FormatMultipleChoice {
			for j, opt := range q.Options {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}
		}

		start := time.Now()
		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		elapsed := time.Since(start)
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if q.Format == bank.FormatMultipleChoice {
			selected := answer
			if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Options) {
				selected = q.Options[n-1]
			}
			if cfg.ScoreMultipleChoice(selected, q.Answer) > 0 {
				correct++
				fmt.Println("✓ Correct!")
			} else {
				fmt.Printf("✗ Wrong. Answer: %s\n", q.Answer)
			}
		} else {
			quality := cfg.ScoreFreeText(answer, q.Keyword, elapsed)
			if quality >= cfg.FreeTextPassMark {
				correct++
				fmt.Printf("✓ Quality %d/100 (pass)\n", quality)
			} else {
				fmt.Printf("✗ Quality %d/100 — expected to mention: %s\n", quality, q.Keyword)
			}
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
