package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/difficulty"
	"github.com/abhisek/mathpal/internal/encourage"
	"github.com/abhisek/mathpal/internal/feedback"
	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeEventRepo is an in-memory EventRepo.
type fakeEventRepo struct {
	mu     sync.Mutex
	events []telemetry.Event
	err    error
}

func (f *fakeEventRepo) AppendBatch(_ context.Context, events []telemetry.Event) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeEventRepo) BySession(_ context.Context, userID, sessionID string) ([]telemetry.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []telemetry.Event
	for _, ev := range f.events {
		if ev.UserID == userID && ev.SessionID == sessionID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ByUser(_ context.Context, userID, moduleName string, limit int) ([]telemetry.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []telemetry.Event
	for _, ev := range f.events {
		if ev.UserID == userID && (moduleName == "" || ev.ModuleName == moduleName) {
			out = append(out, ev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventRepo) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []telemetry.Event
	pruned := 0
	for _, ev := range f.events {
		if ev.Timestamp.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, ev)
	}
	f.events = kept
	return pruned, nil
}

// fakePerfRepo is an in-memory PerformanceRepo.
type fakePerfRepo struct {
	mu      sync.Mutex
	entries []trend.LogEntry
	err     error
}

func (f *fakePerfRepo) Append(ctx context.Context, entry trend.LogEntry) error {
	return f.AppendBatch(ctx, []trend.LogEntry{entry})
}

func (f *fakePerfRepo) AppendBatch(_ context.Context, entries []trend.LogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakePerfRepo) Since(_ context.Context, userID, moduleName string, cutoff time.Time) ([]trend.LogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []trend.LogEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.ModuleName == moduleName && !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePerfRepo) Recent(_ context.Context, userID, moduleName string, limit int) ([]trend.LogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []trend.LogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := f.entries[i]
		if e.UserID == userID && (moduleName == "" || e.ModuleName == moduleName) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePerfRepo) BySession(_ context.Context, sessionID string) ([]trend.LogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []trend.LogEntry
	for _, e := range f.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeProgressRepo is an in-memory ProgressRepo.
type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[string]*mastery.Record
	err     error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]*mastery.Record{}}
}

func (f *fakeProgressRepo) Get(_ context.Context, userID, moduleName string) (*mastery.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[userID+"/"+moduleName]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeProgressRepo) List(_ context.Context, userID string) ([]*mastery.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*mastery.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) Update(_ context.Context, userID, moduleName string, fn func(*mastery.Record) error) (*mastery.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID + "/" + moduleName
	rec, ok := f.records[key]
	if !ok {
		rec = mastery.NewRecord(userID, moduleName)
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	f.records[key] = rec
	cp := *rec
	return &cp, nil
}

func newTestService(events *fakeEventRepo, logs *fakePerfRepo, progress *fakeProgressRepo, opts ...Option) *Service {
	opts = append(opts, WithClock(func() time.Time { return testNow }))
	return New(events, logs, progress, zap.NewNop(), opts...)
}

func answerEvent(userID, sessionID string, reactionMs int64, correct bool) telemetry.Event {
	return telemetry.Event{
		UserID:    userID,
		SessionID: sessionID,
		Type:      telemetry.TypeAnswerSelected,
		Payload: telemetry.Payload{
			ReactionTime: &reactionMs,
			IsCorrect:    &correct,
		},
		Timestamp: testNow,
	}
}

func TestIngestEvents_SkipsMalformed(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestService(events, &fakePerfRepo{}, newFakeProgressRepo())

	batch := []telemetry.Event{
		answerEvent("u1", "s1", 1500, true),
		{UserID: "u1", SessionID: "s1", Type: "bogus_type", Timestamp: testNow},
		{UserID: "", SessionID: "s1", Type: telemetry.TypeMouseMove, Timestamp: testNow},
	}

	stored, skipped, err := svc.IngestEvents(context.Background(), batch)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if stored != 1 || skipped != 2 {
		t.Errorf("stored/skipped = %d/%d, want 1/2", stored, skipped)
	}
	if len(events.events) != 1 {
		t.Errorf("repo holds %d events, want 1", len(events.events))
	}
}

func TestBehaviorProfile_ReportsSkippedStoredEvents(t *testing.T) {
	events := &fakeEventRepo{
		events: []telemetry.Event{
			answerEvent("u1", "s1", 1500, true),
			{UserID: "u1", SessionID: "s1", Type: telemetry.TypeAnswerSelected, Timestamp: testNow},
		},
	}
	svc := newTestService(events, &fakePerfRepo{}, newFakeProgressRepo())

	profile, skipped, err := svc.BehaviorProfile(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("behavior profile: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if profile.Confidence != 1.0 {
		t.Errorf("Confidence = %f, want 1.0 from the one well-formed answer", profile.Confidence)
	}
}

func TestIngestEvents_StoreFailure(t *testing.T) {
	events := &fakeEventRepo{err: errors.New("disk full")}
	svc := newTestService(events, &fakePerfRepo{}, newFakeProgressRepo())

	_, _, err := svc.IngestEvents(context.Background(), []telemetry.Event{answerEvent("u1", "s1", 1500, true)})
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %T (%v)", err, err)
	}
}

func TestSessionMetrics_NoData(t *testing.T) {
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, newFakeProgressRepo())

	metrics, skipped, err := svc.SessionMetrics(context.Background(), "u1", "empty")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics != nil {
		t.Errorf("metrics = %+v, want nil for empty session", metrics)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestPerformanceTrend_UsesWindow(t *testing.T) {
	logs := &fakePerfRepo{}
	svc := newTestService(&fakeEventRepo{}, logs, newFakeProgressRepo())
	ctx := context.Background()

	// Ten answers inside the window: first half correct, second half wrong.
	for i := 0; i < 10; i++ {
		logs.entries = append(logs.entries, trend.LogEntry{
			UserID: "u1", ModuleName: "addition", SessionID: "s1",
			IsCorrect: i < 5,
			Timestamp: testNow.Add(time.Duration(i-60) * time.Minute),
		})
	}

	res, err := svc.PerformanceTrend(ctx, "u1", "addition", 0)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if res.Trend != trend.Declining {
		t.Errorf("trend = %s, want declining", res.Trend)
	}
	if res.SuggestedAction != trend.ActionReduce {
		t.Errorf("action = %q, want %q", res.SuggestedAction, trend.ActionReduce)
	}
}

func TestRecommendations_NewLearnerDefaults(t *testing.T) {
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, newFakeProgressRepo())

	rec, err := svc.Recommendations(context.Background(), "new-user", "addition")
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if rec.Difficulty != difficulty.Easy || !rec.HintsEnabled || !rec.GuidedMode {
		t.Errorf("unexpected defaults: %+v", rec)
	}
}

func TestRecommendations_StoreErrorIsNotNoData(t *testing.T) {
	progress := newFakeProgressRepo()
	progress.err = errors.New("connection reset")
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, progress)

	_, err := svc.Recommendations(context.Background(), "u1", "addition")
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %T (%v)", err, err)
	}
}

func TestRecordSession_UpdatesProgressAndLogs(t *testing.T) {
	logs := &fakePerfRepo{}
	progress := newFakeProgressRepo()
	svc := newTestService(&fakeEventRepo{}, logs, progress)
	ctx := context.Background()

	entries := []trend.LogEntry{
		{UserID: "u1", ModuleName: "addition", SessionID: "s1", IsCorrect: true, Timestamp: testNow},
		{UserID: "u1", ModuleName: "addition", SessionID: "s1", IsCorrect: false, Timestamp: testNow},
	}
	rec, err := svc.RecordSession(ctx, "u1", "addition", mastery.SessionSummary{
		Correct: 1, Total: 2, Difficulty: difficulty.Easy,
	}, entries)
	if err != nil {
		t.Fatalf("record session: %v", err)
	}
	if rec.CompletedSessions != 1 || rec.AccuracyPct != 50 {
		t.Errorf("record = %d sessions at %d%%, want 1 at 50%%", rec.CompletedSessions, rec.AccuracyPct)
	}
	if len(logs.entries) != 2 {
		t.Errorf("log entries = %d, want 2", len(logs.entries))
	}
}

func TestNudge_Storeless(t *testing.T) {
	svc := newTestService(&fakeEventRepo{err: errors.New("store is down")}, &fakePerfRepo{}, newFakeProgressRepo())

	dur := int64(12000)
	n := svc.Nudge([]telemetry.Event{{
		UserID:    "u1",
		SessionID: "s1",
		Type:      telemetry.TypeIdleDetected,
		Payload:   telemetry.Payload{Duration: &dur},
		Timestamp: testNow,
	}})
	if !n.ShouldEncourage {
		t.Error("nudge should work even when the store is down")
	}
}

func TestComprehensiveFeedback_CombinesBranches(t *testing.T) {
	events := &fakeEventRepo{}
	logs := &fakePerfRepo{}
	progress := newFakeProgressRepo()
	svc := newTestService(events, logs, progress)
	ctx := context.Background()

	// Session events: one fast correct answer, confident learner.
	events.events = append(events.events, answerEvent("u1", "s1", 1500, true))

	// Progress: proficient, past the hints cutoff.
	progress.records["u1/addition"] = &mastery.Record{
		UserID: "u1", ModuleName: "addition",
		AccuracyPct: 80, MasteryLevel: mastery.Proficient,
		CompletedSessions: 6, CurrentDifficulty: difficulty.Medium,
	}

	// Log history: improving.
	for i := 0; i < 10; i++ {
		logs.entries = append(logs.entries, trend.LogEntry{
			UserID: "u1", ModuleName: "addition",
			IsCorrect: i >= 5,
			Timestamp: testNow.Add(time.Duration(i-60) * time.Minute),
		})
	}

	fb, err := svc.ComprehensiveFeedback(ctx, "u1", "addition", "s1")
	if err != nil {
		t.Fatalf("comprehensive feedback: %v", err)
	}
	if fb.PerformanceTrend != trend.Improving {
		t.Errorf("trend = %s, want improving", fb.PerformanceTrend)
	}
	if fb.HintsEnabled {
		t.Error("hints should be off at 80% accuracy")
	}
	// Fast correct answer: confidence 1.0, low hesitation, fast pace.
	if fb.PaceAdjustment != feedback.PaceFaster {
		t.Errorf("pace = %s, want faster", fb.PaceAdjustment)
	}
}

func TestComprehensiveFeedback_TrendBranchFallsBack(t *testing.T) {
	events := &fakeEventRepo{}
	logs := &fakePerfRepo{err: errors.New("query timeout")}
	progress := newFakeProgressRepo()
	svc := newTestService(events, logs, progress)

	fb, err := svc.ComprehensiveFeedback(context.Background(), "u1", "addition", "s1")
	if err != nil {
		t.Fatalf("comprehensive feedback: %v", err)
	}
	if fb.PerformanceTrend != trend.InsufficientData {
		t.Errorf("trend = %s, want insufficient-data fallback", fb.PerformanceTrend)
	}
}

func TestComprehensiveFeedback_ProgressFailureAborts(t *testing.T) {
	progress := newFakeProgressRepo()
	progress.err = errors.New("connection reset")
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, progress)

	_, err := svc.ComprehensiveFeedback(context.Background(), "u1", "addition", "s1")
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %T (%v)", err, err)
	}
}

func TestComprehensiveFeedback_IncludesEncouragement(t *testing.T) {
	gen, err := encourage.NewGenerator(nil, zap.NewNop())
	if err != nil {
		t.Fatalf("generator: %v", err)
	}
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, newFakeProgressRepo(), WithEncourager(gen))

	fb, err := svc.ComprehensiveFeedback(context.Background(), "u1", "addition", "s1")
	if err != nil {
		t.Fatalf("comprehensive feedback: %v", err)
	}
	if fb.Message == "" {
		t.Error("expected an encouragement message")
	}
}

func TestEnsureProgress_CreatesDefault(t *testing.T) {
	progress := newFakeProgressRepo()
	svc := newTestService(&fakeEventRepo{}, &fakePerfRepo{}, progress)
	ctx := context.Background()

	rec, err := svc.EnsureProgress(ctx, "u1", "subtraction")
	if err != nil {
		t.Fatalf("ensure progress: %v", err)
	}
	if rec.MasteryLevel != mastery.Beginner || rec.CurrentDifficulty != difficulty.Easy {
		t.Errorf("unexpected defaults: %+v", rec)
	}
	if _, ok := progress.records["u1/subtraction"]; !ok {
		t.Error("default record should be persisted")
	}
}

func TestSessionPerformance(t *testing.T) {
	logs := &fakePerfRepo{entries: []trend.LogEntry{
		{UserID: "u1", ModuleName: "addition", SessionID: "s1", IsCorrect: true, Timestamp: testNow},
		{UserID: "u1", ModuleName: "addition", SessionID: "s2", IsCorrect: false, Timestamp: testNow},
	}}
	svc := newTestService(&fakeEventRepo{}, logs, newFakeProgressRepo())

	got, err := svc.SessionPerformance(context.Background(), "s1")
	if err != nil {
		t.Fatalf("session performance: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "s1" {
		t.Errorf("got %d entries, want exactly the s1 entry", len(got))
	}
}

func TestPruneEvents(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestService(events, &fakePerfRepo{}, newFakeProgressRepo())

	old := answerEvent("u1", "s1", 1500, true)
	old.Timestamp = testNow.AddDate(0, 0, -100)
	events.events = append(events.events, old, answerEvent("u1", "s2", 1500, true))

	n, err := svc.PruneEvents(context.Background())
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned = %d, want 1", n)
	}
}
