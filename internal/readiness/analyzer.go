// Package readiness turns a finished interview session into a readiness
// report: confidence index, skill gap, improvement plan, and hiring verdict.
package readiness

import (
	"fmt"
	"strings"
	"time"

	"github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/skills"
)

// Confidence classifies the candidate's average response time.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Verdict is the final hiring-readiness judgment.
type Verdict string

const (
	VerdictReady    Verdict = "ready"
	VerdictNotReady Verdict = "not_ready"
)

// Config holds the analyzer thresholds.
type Config struct {
	// HighUnder and MediumUnder bound the confidence tiers: an average
	// response time below HighUnder is High, below MediumUnder is Medium,
	// anything else is Low.
	HighUnder   time.Duration
	MediumUnder time.Duration

	// PassScore is the total score at which the verdict flips to ready.
	PassScore int
}

// DefaultConfig returns the standard analyzer thresholds.
func DefaultConfig() Config {
	return Config{
		HighUnder:   10 * time.Second,
		MediumUnder: 20 * time.Second,
		PassScore:   50,
	}
}

// Report is the final output of a session, rendered by the report screen and
// persisted alongside the session events.
type Report struct {
	SessionID  string             `json:"session_id"`
	Score      int                `json:"score"`
	Strikes    int                `json:"strikes"`
	Terminated bool               `json:"terminated"`
	MatchPct   int                `json:"skill_match_pct"`
	Confidence Confidence         `json:"confidence"`
	AvgTime    time.Duration      `json:"avg_response_time"`
	SkillScore map[skills.Tag]int `json:"skill_scoreboard"`
	Plan       []string           `json:"improvement_plan"`
	Verdict    Verdict            `json:"verdict"`
}

// Analyze derives the readiness report from a finished session. It is a pure
// computation; the session state is not modified.
func Analyze(s *interview.State, cfg Config) *Report {
	avg := averageResponse(s.ResponseTimes)
	// An empty response log has no average to classify; Low is the
	// documented default rather than a division by zero.
	conf := ConfidenceLow
	if len(s.ResponseTimes) > 0 {
		conf = classify(avg, cfg)
	}
	return &Report{
		SessionID:  s.SessionID,
		Score:      s.Score,
		Strikes:    s.Strikes,
		Terminated: s.Phase == interview.PhaseTerminated,
		MatchPct:   s.SkillMatchPct,
		Confidence: conf,
		AvgTime:    avg,
		SkillScore: s.SkillScore,
		Plan:       improvementPlan(s.JDSkills, s.ResumeSkills, s.SkillScore, conf, s.Score),
		Verdict:    verdict(s.Score, cfg),
	}
}

// averageResponse returns the mean of the response log, or zero when the log
// is empty. The empty case never divides.
func averageResponse(log []time.Duration) time.Duration {
	if len(log) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range log {
		total += d
	}
	return total / time.Duration(len(log))
}

// classify maps an average response time to a confidence tier.
func classify(avg time.Duration, cfg Config) Confidence {
	switch {
	case avg < cfg.HighUnder:
		return ConfidenceHigh
	case avg < cfg.MediumUnder:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func verdict(score int, cfg Config) Verdict {
	if score >= cfg.PassScore {
		return VerdictReady
	}
	return VerdictNotReady
}

// improvementPlan builds the ordered advisory list. Each entry is appended
// only when its condition holds, always in the same order: missing skills,
// weak skills, confidence tip, score tip.
func improvementPlan(jd, resume skills.Set, scoreboard map[skills.Tag]int, conf Confidence, score int) []string {
	var plan []string

	if missing := jd.Minus(resume); len(missing) > 0 {
		plan = append(plan, "Learn missing job-required skills: "+joinTags(missing))
	}

	var weak []skills.Tag
	for _, tag := range jd.Sorted() {
		if scoreboard[tag] == 0 {
			weak = append(weak, tag)
		}
	}
	if len(weak) > 0 {
		plan = append(plan, "Improve weak skills through practice: "+joinTags(weak))
	}

	switch conf {
	case ConfidenceLow:
		plan = append(plan, "Practice timed mock interviews to improve confidence under pressure")
	case ConfidenceMedium:
		plan = append(plan, "Work on faster problem-solving and decision making")
	}

	switch {
	case score < 40:
		plan = append(plan, "Focus on fundamentals and revise core concepts daily")
	case score < 60:
		plan = append(plan, "Solve medium-level interview questions consistently")
	default:
		plan = append(plan, "Maintain performance and practice advanced interview scenarios")
	}

	return plan
}

func joinTags(tags []skills.Tag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ", ")
}

// Summary returns a one-line rendering of the verdict for logs and the CLI.
func (r *Report) Summary() string {
	verdictText := "needs more preparation"
	if r.Verdict == VerdictReady {
		verdictText = "ready for interviews"
	}
	return fmt.Sprintf("score %d, confidence %s, match %d%%: %s", r.Score, r.Confidence, r.MatchPct, verdictText)
}
