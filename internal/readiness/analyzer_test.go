package readiness

import (
	"strings"
	"testing"
	"time"

	"github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/skills"
)

func finishedState() *interview.State {
	s := interview.NewState("sess-1")
	s.Phase = interview.PhaseReport
	s.Score = 60
	s.SkillMatchPct = 50
	s.ResumeSkills = skills.Set{"python": true}
	s.JDSkills = skills.Set{"python": true, "sql": true, "java": true}
	s.SkillScore = map[skills.Tag]int{"python": 2}
	s.ResponseTimes = []time.Duration{8 * time.Second, 6 * time.Second}
	return s
}

func TestAnalyze_ConfidenceTiers(t *testing.T) {
	cases := []struct {
		name string
		log  []time.Duration
		want Confidence
	}{
		{"fast answers", []time.Duration{4 * time.Second, 8 * time.Second}, ConfidenceHigh},
		{"moderate answers", []time.Duration{12 * time.Second, 18 * time.Second}, ConfidenceMedium},
		{"slow answers", []time.Duration{25 * time.Second, 40 * time.Second}, ConfidenceLow},
		{"boundary: exactly 10s average", []time.Duration{10 * time.Second}, ConfidenceMedium},
		{"boundary: exactly 20s average", []time.Duration{20 * time.Second}, ConfidenceLow},
		{"empty log defaults to Low", nil, ConfidenceLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := finishedState()
			s.ResponseTimes = tc.log
			r := Analyze(s, DefaultConfig())
			if r.Confidence != tc.want {
				t.Errorf("confidence = %s, want %s", r.Confidence, tc.want)
			}
		})
	}
}

func TestAnalyze_Verdict(t *testing.T) {
	s := finishedState()

	s.Score = 50
	if r := Analyze(s, DefaultConfig()); r.Verdict != VerdictReady {
		t.Errorf("verdict at score 50 = %s, want ready", r.Verdict)
	}

	s.Score = 49
	if r := Analyze(s, DefaultConfig()); r.Verdict != VerdictNotReady {
		t.Errorf("verdict at score 49 = %s, want not_ready", r.Verdict)
	}

	cfg := DefaultConfig()
	cfg.PassScore = 60
	s.Score = 55
	if r := Analyze(s, cfg); r.Verdict != VerdictNotReady {
		t.Errorf("verdict at score 55 with threshold 60 = %s, want not_ready", r.Verdict)
	}
}

func TestImprovementPlan_OrderAndConditions(t *testing.T) {
	s := finishedState()
	s.Score = 30
	s.SkillScore = map[skills.Tag]int{}
	s.ResponseTimes = []time.Duration{30 * time.Second}

	plan := Analyze(s, DefaultConfig()).Plan
	if len(plan) != 4 {
		t.Fatalf("plan has %d entries, want 4: %v", len(plan), plan)
	}
	if !strings.Contains(plan[0], "missing job-required skills") || !strings.Contains(plan[0], "java, sql") {
		t.Errorf("plan[0] = %q, want missing skills java and sql", plan[0])
	}
	if !strings.Contains(plan[1], "weak skills") || !strings.Contains(plan[1], "java") ||
		!strings.Contains(plan[1], "python") || !strings.Contains(plan[1], "sql") {
		t.Errorf("plan[1] = %q, want all unscored jd skills listed as weak", plan[1])
	}
	if !strings.Contains(plan[2], "timed mock interviews") {
		t.Errorf("plan[2] = %q, want the low-confidence tip", plan[2])
	}
	if !strings.Contains(plan[3], "fundamentals") {
		t.Errorf("plan[3] = %q, want the fundamentals tip", plan[3])
	}
}

func TestImprovementPlan_SkipsSatisfiedConditions(t *testing.T) {
	s := finishedState()
	s.Score = 80
	s.ResumeSkills = skills.Set{"python": true, "sql": true, "java": true}
	s.SkillScore = map[skills.Tag]int{"python": 1, "sql": 1, "java": 2}
	s.ResponseTimes = []time.Duration{5 * time.Second}

	plan := Analyze(s, DefaultConfig()).Plan
	// No gaps, high confidence: only the score tip remains.
	if len(plan) != 1 {
		t.Fatalf("plan = %v, want a single advanced-practice entry", plan)
	}
	if !strings.Contains(plan[0], "advanced interview scenarios") {
		t.Errorf("plan[0] = %q, want the advanced-practice tip", plan[0])
	}
}

func TestImprovementPlan_ScoreTiers(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{39, "fundamentals"},
		{40, "medium-level"},
		{59, "medium-level"},
		{60, "advanced interview scenarios"},
	}

	for _, tc := range cases {
		s := finishedState()
		s.Score = tc.score
		plan := Analyze(s, DefaultConfig()).Plan
		last := plan[len(plan)-1]
		if !strings.Contains(last, tc.want) {
			t.Errorf("score %d: last entry = %q, want it to mention %q", tc.score, last, tc.want)
		}
	}
}

func TestAnalyze_TerminatedFlag(t *testing.T) {
	s := finishedState()
	s.Phase = interview.PhaseTerminated
	s.Strikes = 2

	r := Analyze(s, DefaultConfig())
	if !r.Terminated {
		t.Error("Terminated = false, want true for a struck-out session")
	}
	if r.Strikes != 2 {
		t.Errorf("strikes = %d, want 2", r.Strikes)
	}
}
