package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jvkuechen/secguard/internal/db"
	"github.com/jvkuechen/secguard/internal/domain"
)

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) Load(ctx context.Context) (*domain.DashboardState, error) {
	state := domain.NewDashboardState()

	rows, err := r.db.QueryContext(ctx, `SELECT question_id, value FROM answers`)
	if err != nil {
		return nil, fmt.Errorf("loading answers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		state.Answers[id] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}

	marks, err := r.db.QueryContext(ctx, `SELECT task_id, mark FROM task_marks`)
	if err != nil {
		return nil, fmt.Errorf("loading task marks: %w", err)
	}
	defer marks.Close()
	for marks.Next() {
		var id, mark string
		if err := marks.Scan(&id, &mark); err != nil {
			return nil, fmt.Errorf("scanning task mark: %w", err)
		}
		switch mark {
		case "completed":
			state.CompletedTasks[id] = true
		case "dismissed":
			state.DismissedTasks[id] = true
		}
	}
	if err := marks.Err(); err != nil {
		return nil, fmt.Errorf("iterating task marks: %w", err)
	}

	if mode, ok := r.metaValue(ctx, "assessment_mode"); ok {
		if m := domain.AssessmentMode(mode); m == domain.ModeQuick || m == domain.ModeFull {
			state.Mode = m
		}
	}
	if raw, ok := r.metaValue(ctx, "last_assessment"); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			state.LastAssessment = &t
		}
	}

	return state, nil
}

// metaValue reads a single meta row. Malformed or missing values read as
// absent; persisted-state damage must never crash a load.
func (r *SQLiteStateRepo) metaValue(ctx context.Context, key string) (string, bool) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *SQLiteStateRepo) SetAnswer(ctx context.Context, questionID, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO answers (question_id, value, updated_at) VALUES (?, ?, ?)`,
		questionID, value, now)
	if err != nil {
		return fmt.Errorf("storing answer %s: %w", questionID, err)
	}
	return nil
}

func (r *SQLiteStateRepo) ClearAnswer(ctx context.Context, questionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE question_id = ?`, questionID)
	if err != nil {
		return fmt.Errorf("clearing answer %s: %w", questionID, err)
	}
	return nil
}

func (r *SQLiteStateRepo) SetMode(ctx context.Context, mode domain.AssessmentMode) error {
	return r.setMeta(ctx, "assessment_mode", string(mode))
}

func (r *SQLiteStateRepo) MarkCompleted(ctx context.Context, taskID string) error {
	return r.setMark(ctx, taskID, "completed")
}

func (r *SQLiteStateRepo) MarkDismissed(ctx context.Context, taskID string) error {
	return r.setMark(ctx, taskID, "dismissed")
}

func (r *SQLiteStateRepo) ClearMark(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM task_marks WHERE task_id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("clearing mark for %s: %w", taskID, err)
	}
	return nil
}

func (r *SQLiteStateRepo) SetLastAssessment(ctx context.Context, t time.Time) error {
	return r.setMeta(ctx, "last_assessment", t.UTC().Format(time.RFC3339))
}

// Reset wipes answers, task marks, and the mode/timestamp meta rows. The
// schema version row is preserved.
func (r *SQLiteStateRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answers`); err != nil {
		return fmt.Errorf("resetting answers: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_marks`); err != nil {
		return fmt.Errorf("resetting task marks: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM meta WHERE key IN ('assessment_mode', 'last_assessment')`); err != nil {
		return fmt.Errorf("resetting meta: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepo) setMark(ctx context.Context, taskID, mark string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO task_marks (task_id, mark, marked_at) VALUES (?, ?, ?)`,
		taskID, mark, now)
	if err != nil {
		return fmt.Errorf("marking task %s %s: %w", taskID, mark, err)
	}
	return nil
}

func (r *SQLiteStateRepo) setMeta(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("storing meta %s: %w", key, err)
	}
	return nil
}

var _ StateRepo = (*SQLiteStateRepo)(nil)
