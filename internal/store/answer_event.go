package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, session_id, skill, difficulty, question_text, answer_format,
			 expected_answer, candidate_answer, correct, timed_out, points, quality, time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Skill, data.Difficulty, data.QuestionText,
		data.AnswerFormat, data.ExpectedAnswer, data.CandidateAnswer,
		data.Correct, data.TimedOut, data.Points, data.Quality, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skill string) (float64, error) {
	var total, correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events WHERE skill = ?`,
		skill,
	).Scan(&total, &correct)
	if err != nil {
		return 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(correct) / float64(total), nil
}
