package store

import (
	"context"
	"database/sql"
	"fmt"
)

// eventRepo implements EventRepo on raw SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, session_id, action, phase, score, strikes,
			 questions_served, correct_answers, skill_match_pct, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Action, data.Phase, data.Score, data.Strikes,
		data.QuestionsServed, data.CorrectAnswers, data.SkillMatchPct, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}

	// One row per session: the lifecycle event with the highest id.
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, timestamp, action, phase, score, strikes,
			questions_served, correct_answers, skill_match_pct
		 FROM session_events e
		 WHERE e.id = (SELECT MAX(id) FROM session_events WHERE session_id = e.session_id)
		 ORDER BY e.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		err := rows.Scan(&s.SessionID, &s.Timestamp, &s.Action, &s.Phase, &s.Score,
			&s.Strikes, &s.QuestionsServed, &s.CorrectAnswers, &s.SkillMatchPct)
		if err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}
