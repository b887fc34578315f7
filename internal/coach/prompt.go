package coach

import (
	"fmt"
	"strings"
)

const feedbackSystemPrompt = `You are an experienced technical interviewer reviewing a candidate's answer from a timed mock interview. Be direct, specific, and constructive.`

func buildFeedbackUserMessage(input FeedbackInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %s\n", input.QuestionText))
	b.WriteString(fmt.Sprintf("Skill under test: %s\n", input.Skill))
	b.WriteString(fmt.Sprintf("Expected topic keyword: %s\n", input.Keyword))
	b.WriteString(fmt.Sprintf("Time taken: %.0f seconds\n", input.ElapsedSecs))
	b.WriteString(fmt.Sprintf("Heuristic quality score: %d/100\n", input.Quality))

	b.WriteString("\nCandidate answer:\n")
	if strings.TrimSpace(input.Answer) == "" {
		b.WriteString("(empty)\n")
	} else {
		b.WriteString(input.Answer + "\n")
	}

	b.WriteString(`
Instructions:
Assess the answer as an interviewer would:
1. Write a 2-3 sentence assessment of the substance. Judge the content, not the heuristic score.
2. List 1-3 concrete strengths. If the answer is empty, say so plainly.
3. List 1-3 concrete gaps, focusing on what the expected topic keyword suggests was missing.
4. Give one sentence describing how a strong candidate would structure this answer.
Use plain text, no markdown.`)

	return b.String()
}
