package interview

import (
	"strings"
	"time"
)

// ScoreMultipleChoice returns the flat reward when the selected option matches
// the expected answer, zero otherwise. Comparison ignores case and surrounding
// whitespace.
func (c Config) ScoreMultipleChoice(selected, answer string) int {
	if strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(answer)) {
		return c.FlatReward
	}
	return 0
}

// ScoreFreeText grades a free-text answer with three additive heuristics:
//
//	+40 if the trimmed answer is longer than 20 characters
//	+40 if the answer contains the expected keyword (case-insensitive)
//	+20 if the answer arrived within 40% of the free-text time limit
//
// The result is a quality score in [0, 100].
func (c Config) ScoreFreeText(answer, keyword string, elapsed time.Duration) int {
	quality := 0
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) > 20 {
		quality += 40
	}
	if keyword != "" && strings.Contains(strings.ToLower(trimmed), strings.ToLower(keyword)) {
		quality += 40
	}
	if elapsed < c.FreeTextLimit*2/5 {
		quality += 20
	}
	return quality
}
