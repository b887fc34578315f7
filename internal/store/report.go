package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adixit/intervue/internal/readiness"
)

// ReportRepo persists readiness reports as JSON rows.
type ReportRepo interface {
	// Save stores a report for its session.
	Save(ctx context.Context, report *readiness.Report) error

	// Latest returns the most recent report, or nil if none exist.
	Latest(ctx context.Context) (*readiness.Report, error)

	// BySession returns the report for a session, or nil if none exists.
	BySession(ctx context.Context, sessionID string) (*readiness.Report, error)

	// Prune deletes all but the N most recent reports.
	Prune(ctx context.Context, keep int) error
}

type reportRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *reportRepo) Save(ctx context.Context, report *readiness.Report) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO reports (sequence, session_id, data) VALUES (?, ?, ?)`,
		seqNum, report.SessionID, string(data),
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func (r *reportRepo) Latest(ctx context.Context) (*readiness.Report, error) {
	return r.queryOne(ctx, `SELECT data FROM reports ORDER BY id DESC LIMIT 1`)
}

func (r *reportRepo) BySession(ctx context.Context, sessionID string) (*readiness.Report, error) {
	return r.queryOne(ctx,
		`SELECT data FROM reports WHERE session_id = ? ORDER BY id DESC LIMIT 1`,
		sessionID,
	)
}

func (r *reportRepo) queryOne(ctx context.Context, query string, args ...any) (*readiness.Report, error) {
	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}

	var report readiness.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &report, nil
}

func (r *reportRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM reports WHERE id NOT IN (SELECT id FROM reports ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("prune reports: %w", err)
	}
	return nil
}
