package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jvkuechen/secguard/internal/db"
	"github.com/jvkuechen/secguard/internal/domain"
)

const assessmentColumns = `id, mode, percentage, level_key, answered, taken_at`

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Record(ctx context.Context, s *domain.AssessmentSnapshot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessments (`+assessmentColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, string(s.Mode), s.Percentage, s.LevelKey, s.Answered,
		s.TakenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) Latest(ctx context.Context) (*domain.AssessmentSnapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+assessmentColumns+` FROM assessments ORDER BY taken_at DESC, id DESC LIMIT 1`)
	s, err := scanAssessment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning latest assessment: %w", err)
	}
	return s, nil
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context, limit int) ([]*domain.AssessmentSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+assessmentColumns+` FROM assessments ORDER BY taken_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var out []*domain.AssessmentSnapshot
	for rows.Next() {
		s, err := scanAssessment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}
	return out, nil
}

func (r *SQLiteAssessmentRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessments`); err != nil {
		return fmt.Errorf("clearing assessments: %w", err)
	}
	return nil
}

func scanAssessment(scan func(...any) error) (*domain.AssessmentSnapshot, error) {
	var s domain.AssessmentSnapshot
	var mode, takenAt string
	if err := scan(&s.ID, &mode, &s.Percentage, &s.LevelKey, &s.Answered, &takenAt); err != nil {
		return nil, err
	}
	s.Mode = domain.AssessmentMode(mode)
	if t, err := time.Parse(time.RFC3339, takenAt); err == nil {
		s.TakenAt = t
	}
	return &s, nil
}

var _ AssessmentRepo = (*SQLiteAssessmentRepo)(nil)
