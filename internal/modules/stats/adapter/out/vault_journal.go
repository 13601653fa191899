package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studytimer/internal/modules/stats/domain"
	statsout "studytimer/internal/modules/stats/port/out"
	"studytimer/internal/platform/markdown"
	"studytimer/internal/platform/slug"
)

const journalSchemaVersion = 1

// VaultJournal writes one markdown note per completed study phase, laid out
// as <dir>/YYYY/MM/DD/HHMMSS-<slug>.md.
type VaultJournal struct {
	dir string
}

func NewVaultJournal(dir string) statsout.Journal {
	return &VaultJournal{dir: dir}
}

func (j *VaultJournal) Write(_ context.Context, completion domain.Completion, agg domain.Aggregates) (string, error) {
	at := completion.CompletedAt
	dir := filepath.Join(j.dir, at.Format("2006"), at.Format("01"), at.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	title := fmt.Sprintf("Study %d min", completion.StudyMinutes)
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", at.Format("150405"), slug.Make(title)))

	meta := map[string]any{
		"schema_version":     journalSchemaVersion,
		"id":                 completion.ID,
		"completed_at":       at.Format(time.RFC3339),
		"weekday":            completion.Weekday().String(),
		"study_minutes":      completion.StudyMinutes,
		"cumulative_minutes": agg.CumulativeMinutes,
		"weekly_minutes":     agg.WeeklyMinutes,
		"daily_minutes":      agg.DailyMinutes[completion.Weekday()],
	}
	body := fmt.Sprintf("# %s\n\n- Completed: %s\n- Today: %d minutes\n- This week: %d minutes\n- All time: %d minutes\n",
		title,
		at.Format("Mon 2006-01-02 15:04"),
		agg.DailyMinutes[completion.Weekday()],
		agg.WeeklyMinutes,
		agg.CumulativeMinutes,
	)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}
