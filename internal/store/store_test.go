package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleEvent(userID, sessionID string, typ telemetry.EventType, at time.Time) telemetry.Event {
	return telemetry.Event{
		UserID:     userID,
		SessionID:  sessionID,
		ModuleName: "addition",
		Type:       typ,
		Timestamp:  at,
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt := int64(1500)
	correct := true
	ev := sampleEvent("u1", "s1", telemetry.TypeAnswerSelected, base.Add(2*time.Second))
	ev.Payload.ReactionTime = &rt
	ev.Payload.IsCorrect = &correct

	events := []telemetry.Event{
		sampleEvent("u1", "s1", telemetry.TypeQuestionDisplayed, base),
		ev,
		sampleEvent("u1", "s2", telemetry.TypeMouseMove, base.Add(time.Minute)),
		sampleEvent("u2", "s3", telemetry.TypeMouseMove, base),
	}
	if err := repo.AppendBatch(ctx, events); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.BySession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Type != telemetry.TypeQuestionDisplayed {
		t.Errorf("events not ordered oldest first: got %s", got[0].Type)
	}
	answer, ok := got[1].Answer()
	if !ok || answer.ReactionTimeMs != 1500 || !answer.Correct {
		t.Errorf("payload did not round-trip: %+v ok=%v", answer, ok)
	}

	byUser, err := repo.ByUser(ctx, "u1", "addition", 0)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 3 {
		t.Fatalf("got %d events for u1, want 3", len(byUser))
	}
	if !byUser[0].Timestamp.After(byUser[2].Timestamp) {
		t.Error("by-user events not ordered newest first")
	}
}

func TestEventRepo_PruneOlderThan(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	events := []telemetry.Event{
		sampleEvent("u1", "s1", telemetry.TypeMouseMove, base.AddDate(0, 0, -100)),
		sampleEvent("u1", "s1", telemetry.TypeMouseMove, base),
	}
	if err := repo.AppendBatch(ctx, events); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := repo.PruneOlderThan(ctx, base.AddDate(0, 0, -90))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Fatalf("pruned %d events, want 1", n)
	}

	remaining, err := repo.BySession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("got %d events after prune, want 1", len(remaining))
	}
}

func TestPerformanceRepo_AppendAndWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.PerformanceRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := []trend.LogEntry{
		{
			UserID: "u1", ModuleName: "addition", SessionID: "s1",
			QuestionType: "multiple-choice", IsCorrect: true,
			ResponseTimeMs: 4000, DifficultyLevel: difficulty.Easy,
			ConceptTags: []string{"carrying"},
			Timestamp:   base.AddDate(0, 0, -10),
		},
		{
			UserID: "u1", ModuleName: "addition", SessionID: "s2",
			QuestionType: "multiple-choice", IsCorrect: false,
			ResponseTimeMs: 6000, DifficultyLevel: difficulty.Easy,
			Timestamp: base.AddDate(0, 0, -1),
		},
	}
	if err := repo.AppendBatch(ctx, entries); err != nil {
		t.Fatalf("append: %v", err)
	}

	within, err := repo.Since(ctx, "u1", "addition", base.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(within) != 1 {
		t.Fatalf("got %d entries in window, want 1", len(within))
	}
	if within[0].SessionID != "s2" {
		t.Errorf("wrong entry in window: %s", within[0].SessionID)
	}

	recent, err := repo.Recent(ctx, "u1", "addition", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "s2" {
		t.Errorf("recent = %d entries, first %s; want 2 entries, first s2",
			len(recent), recent[0].SessionID)
	}
	if recent[1].ConceptTags[0] != "carrying" {
		t.Errorf("concept tags did not round-trip: %v", recent[1].ConceptTags)
	}
}

func TestPerformanceRepo_BySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.PerformanceRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := []trend.LogEntry{
		{
			UserID: "u1", ModuleName: "addition", SessionID: "s1",
			QuestionType: "multiple-choice", IsCorrect: false,
			ResponseTimeMs: 6000, DifficultyLevel: difficulty.Easy,
			Timestamp: base.Add(time.Minute),
		},
		{
			UserID: "u1", ModuleName: "addition", SessionID: "s1",
			QuestionType: "multiple-choice", IsCorrect: true,
			ResponseTimeMs: 4000, DifficultyLevel: difficulty.Easy,
			Timestamp: base,
		},
		{
			UserID: "u1", ModuleName: "addition", SessionID: "s2",
			QuestionType: "multiple-choice", IsCorrect: true,
			ResponseTimeMs: 3000, DifficultyLevel: difficulty.Easy,
			Timestamp: base,
		},
	}
	if err := repo.AppendBatch(ctx, entries); err != nil {
		t.Fatalf("append: %v", err)
	}

	logs, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d entries for s1, want 2", len(logs))
	}
	if !logs[0].Timestamp.Before(logs[1].Timestamp) {
		t.Errorf("entries not in ascending timestamp order")
	}

	none, err := repo.BySession(ctx, "missing")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d entries for unknown session, want 0", len(none))
	}
}

func TestProgressRepo_GetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec, err := repo.Get(context.Background(), "nobody", "addition")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for unknown learner, got %+v", rec)
	}
}

func TestProgressRepo_UpdateCreatesAndPersists(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec, err := repo.Update(ctx, "u1", "addition", func(r *mastery.Record) error {
		r.ApplySession(mastery.SessionSummary{
			Correct: 8, Total: 10,
			AverageResponseTimeMs: 4000,
			Difficulty:            difficulty.Easy,
			TimeSpentSecs:         300,
			Concepts: []mastery.ConceptOutcome{
				{Name: "carrying", Correct: true},
			},
		}, now)
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.AccuracyPct != 80 || rec.CompletedSessions != 1 {
		t.Errorf("record = %d%% over %d sessions, want 80%% over 1",
			rec.AccuracyPct, rec.CompletedSessions)
	}

	// Read back through a fresh Get.
	got, err := repo.Get(ctx, "u1", "addition")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("record not persisted")
	}
	if got.AccuracyPct != 80 || len(got.Strengths) != 1 {
		t.Errorf("persisted record = %d%%, %d strengths; want 80%%, 1",
			got.AccuracyPct, len(got.Strengths))
	}
	if got.MasteryLevel != mastery.Proficient {
		t.Errorf("mastery = %s, want proficient", got.MasteryLevel)
	}
}

func TestProgressRepo_ConcurrentUpdatesAllCounted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	const sessions = 8
	var wg sync.WaitGroup
	errs := make(chan error, sessions)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "u1", "addition", func(r *mastery.Record) error {
				r.ApplySession(mastery.SessionSummary{
					Correct: 5, Total: 10,
					Difficulty: difficulty.Easy,
				}, now)
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent update: %v", err)
		}
	}

	rec, err := repo.Get(ctx, "u1", "addition")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.CompletedSessions != sessions {
		t.Fatalf("completed sessions = %d, want %d (lost update)", rec.CompletedSessions, sessions)
	}
	if rec.TotalQuestions != sessions*10 {
		t.Fatalf("total questions = %d, want %d", rec.TotalQuestions, sessions*10)
	}
}

func TestProgressRepo_List(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now()
	for _, module := range []string{"subtraction", "addition"} {
		_, err := repo.Update(ctx, "u1", module, func(r *mastery.Record) error {
			r.ApplySession(mastery.SessionSummary{Correct: 5, Total: 10, Difficulty: difficulty.Easy}, now)
			return nil
		})
		if err != nil {
			t.Fatalf("update %s: %v", module, err)
		}
	}

	records, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ModuleName != "addition" {
		t.Errorf("records not sorted by module: first is %s", records[0].ModuleName)
	}
}
