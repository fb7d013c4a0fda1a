package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/mathpal/ent"
	"github.com/abhisek/mathpal/ent/progress"
	entschema "github.com/abhisek/mathpal/ent/schema"
	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/mastery"
)

// progressRepo serializes read-modify-write cycles per (user, module)
// with an in-process mutex per key. SQLite has no row-level locking,
// and a lost update here would silently drop a session's worth of
// progress. The lock map grows with the number of distinct
// (user, module) pairs and is never pruned.
type progressRepo struct {
	client *ent.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newProgressRepo(client *ent.Client) *progressRepo {
	return &progressRepo{
		client: client,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (r *progressRepo) lockFor(userID, moduleName string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userID + "\x00" + moduleName
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *progressRepo) Get(ctx context.Context, userID, moduleName string) (*mastery.Record, error) {
	row, err := r.client.Progress.Query().
		Where(
			progress.UserID(userID),
			progress.ModuleName(moduleName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return toRecord(row), nil
}

func (r *progressRepo) List(ctx context.Context, userID string) ([]*mastery.Record, error) {
	rows, err := r.client.Progress.Query().
		Where(progress.UserID(userID)).
		Order(ent.Asc(progress.FieldModuleName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	out := make([]*mastery.Record, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

func (r *progressRepo) Update(ctx context.Context, userID, moduleName string, fn func(*mastery.Record) error) (*mastery.Record, error) {
	l := r.lockFor(userID, moduleName)
	l.Lock()
	defer l.Unlock()

	row, err := r.client.Progress.Query().
		Where(
			progress.UserID(userID),
			progress.ModuleName(moduleName),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	var rec *mastery.Record
	if row == nil {
		rec = mastery.NewRecord(userID, moduleName)
	} else {
		rec = toRecord(row)
	}

	if err := fn(rec); err != nil {
		return nil, err
	}

	if row == nil {
		created, err := r.create(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("create progress: %w", err)
		}
		return toRecord(created), nil
	}

	updated, err := r.save(ctx, row, rec)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}
	return toRecord(updated), nil
}

func (r *progressRepo) create(ctx context.Context, rec *mastery.Record) (*ent.Progress, error) {
	b := r.client.Progress.Create().
		SetUserID(rec.UserID).
		SetModuleName(rec.ModuleName).
		SetAccuracyPct(rec.AccuracyPct).
		SetMasteryLevel(string(rec.MasteryLevel)).
		SetCompletedSessions(rec.CompletedSessions).
		SetTotalQuestions(rec.TotalQuestions).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetCurrentDifficulty(string(rec.CurrentDifficulty)).
		SetStrengths(toSchemaStats(rec.Strengths)).
		SetWeakAreas(toSchemaStats(rec.WeakAreas)).
		SetAverageResponseMs(rec.AverageResponseTimeMs).
		SetTotalTimeSecs(rec.TotalTimeSpentSecs)
	if !rec.LastSessionAt.IsZero() {
		b = b.SetLastSessionAt(rec.LastSessionAt.UTC())
	}
	return b.Save(ctx)
}

func (r *progressRepo) save(ctx context.Context, row *ent.Progress, rec *mastery.Record) (*ent.Progress, error) {
	b := row.Update().
		SetAccuracyPct(rec.AccuracyPct).
		SetMasteryLevel(string(rec.MasteryLevel)).
		SetCompletedSessions(rec.CompletedSessions).
		SetTotalQuestions(rec.TotalQuestions).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetCurrentDifficulty(string(rec.CurrentDifficulty)).
		SetStrengths(toSchemaStats(rec.Strengths)).
		SetWeakAreas(toSchemaStats(rec.WeakAreas)).
		SetAverageResponseMs(rec.AverageResponseTimeMs).
		SetTotalTimeSecs(rec.TotalTimeSpentSecs).
		SetTimestamp(time.Now().UTC())
	if !rec.LastSessionAt.IsZero() {
		b = b.SetLastSessionAt(rec.LastSessionAt.UTC())
	}
	return b.Save(ctx)
}

func toRecord(row *ent.Progress) *mastery.Record {
	rec := &mastery.Record{
		UserID:                row.UserID,
		ModuleName:            row.ModuleName,
		AccuracyPct:           row.AccuracyPct,
		MasteryLevel:          mastery.Level(row.MasteryLevel),
		CompletedSessions:     row.CompletedSessions,
		TotalQuestions:        row.TotalQuestions,
		CorrectAnswers:        row.CorrectAnswers,
		CurrentDifficulty:     difficulty.Level(row.CurrentDifficulty),
		Strengths:             toDomainStats(row.Strengths),
		WeakAreas:             toDomainStats(row.WeakAreas),
		AverageResponseTimeMs: row.AverageResponseMs,
		TotalTimeSpentSecs:    row.TotalTimeSecs,
	}
	if row.LastSessionAt != nil {
		rec.LastSessionAt = *row.LastSessionAt
	}
	return rec
}

func toSchemaStats(stats []mastery.ConceptStat) []entschema.ConceptStat {
	out := make([]entschema.ConceptStat, len(stats))
	for i, s := range stats {
		out[i] = entschema.ConceptStat{
			Concept:     s.Concept,
			AccuracyPct: s.AccuracyPct,
			Attempts:    s.Attempts,
		}
	}
	return out
}

func toDomainStats(stats []entschema.ConceptStat) []mastery.ConceptStat {
	out := make([]mastery.ConceptStat, len(stats))
	for i, s := range stats {
		out[i] = mastery.ConceptStat{
			Concept:     s.Concept,
			AccuracyPct: s.AccuracyPct,
			Attempts:    s.Attempts,
		}
	}
	return out
}
