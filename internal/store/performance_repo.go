package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpal/ent"
	"github.com/abhisek/mathpal/ent/performancelog"
	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/trend"
)

type performanceRepo struct {
	client *ent.Client
}

func (r *performanceRepo) Append(ctx context.Context, entry trend.LogEntry) error {
	return r.AppendBatch(ctx, []trend.LogEntry{entry})
}

func (r *performanceRepo) AppendBatch(ctx context.Context, entries []trend.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builders := make([]*ent.PerformanceLogCreate, len(entries))
	for i, e := range entries {
		ts := e.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		builders[i] = r.client.PerformanceLog.Create().
			SetUserID(e.UserID).
			SetModuleName(e.ModuleName).
			SetSessionID(e.SessionID).
			SetQuestionType(e.QuestionType).
			SetIsCorrect(e.IsCorrect).
			SetResponseTimeMs(e.ResponseTimeMs).
			SetDifficulty(string(e.DifficultyLevel)).
			SetHintsUsed(e.HintsUsed).
			SetConceptTags(e.ConceptTags).
			SetTimestamp(ts.UTC())
	}

	if err := r.client.PerformanceLog.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("append performance logs: %w", err)
	}
	return nil
}

func (r *performanceRepo) Since(ctx context.Context, userID, moduleName string, cutoff time.Time) ([]trend.LogEntry, error) {
	rows, err := r.client.PerformanceLog.Query().
		Where(
			performancelog.UserID(userID),
			performancelog.ModuleName(moduleName),
			performancelog.TimestampGTE(cutoff.UTC()),
		).
		Order(ent.Asc(performancelog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance logs: %w", err)
	}
	return toLogEntries(rows), nil
}

func (r *performanceRepo) Recent(ctx context.Context, userID, moduleName string, limit int) ([]trend.LogEntry, error) {
	q := r.client.PerformanceLog.Query().
		Where(performancelog.UserID(userID))
	if moduleName != "" {
		q = q.Where(performancelog.ModuleName(moduleName))
	}
	rows, err := q.
		Order(ent.Desc(performancelog.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent performance logs: %w", err)
	}
	return toLogEntries(rows), nil
}

func (r *performanceRepo) BySession(ctx context.Context, sessionID string) ([]trend.LogEntry, error) {
	rows, err := r.client.PerformanceLog.Query().
		Where(performancelog.SessionID(sessionID)).
		Order(ent.Asc(performancelog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session performance logs: %w", err)
	}
	return toLogEntries(rows), nil
}

func toLogEntries(rows []*ent.PerformanceLog) []trend.LogEntry {
	out := make([]trend.LogEntry, len(rows))
	for i, row := range rows {
		out[i] = trend.LogEntry{
			UserID:          row.UserID,
			ModuleName:      row.ModuleName,
			SessionID:       row.SessionID,
			QuestionType:    row.QuestionType,
			IsCorrect:       row.IsCorrect,
			ResponseTimeMs:  row.ResponseTimeMs,
			DifficultyLevel: difficulty.Level(row.Difficulty),
			HintsUsed:       row.HintsUsed,
			ConceptTags:     row.ConceptTags,
			Timestamp:       row.Timestamp,
		}
	}
	return out
}
