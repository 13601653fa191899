package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studytimer/internal/modules/stats/domain"

	_ "modernc.org/sqlite"
)

// completedAtLayout is fixed-width UTC so completed_at sorts lexically.
const completedAtLayout = "2006-01-02T15:04:05.000000000Z"

type SQLiteCompletionProjector struct {
	db *sql.DB
}

func NewSQLiteCompletionProjector(dbPath string) (*SQLiteCompletionProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCompletionProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCompletionProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS completions (
  id TEXT PRIMARY KEY,
  study_minutes INTEGER NOT NULL,
  weekday INTEGER NOT NULL,
  completed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS completions_completed_at ON completions (completed_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create completions table: %w", err)
	}
	return nil
}

func (s *SQLiteCompletionProjector) Append(ctx context.Context, completion domain.Completion) error {
	const stmt = `
INSERT INTO completions (id, study_minutes, weekday, completed_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  study_minutes=excluded.study_minutes,
  weekday=excluded.weekday,
  completed_at=excluded.completed_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		completion.ID,
		completion.StudyMinutes,
		int(completion.Weekday()),
		completion.CompletedAt.UTC().Format(completedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	return nil
}

// Recent returns the newest completions first, in UTC.
func (s *SQLiteCompletionProjector) Recent(ctx context.Context, limit int) ([]domain.Completion, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, study_minutes, completed_at FROM completions ORDER BY completed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	var out []domain.Completion
	for rows.Next() {
		var (
			item domain.Completion
			raw  string
		)
		if err := rows.Scan(&item.ID, &item.StudyMinutes, &raw); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		item.CompletedAt, err = time.Parse(completedAtLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at %q: %w", raw, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}
	return out, nil
}

func (s *SQLiteCompletionProjector) Close() error {
	return s.db.Close()
}
