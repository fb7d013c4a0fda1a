// Package engine wires the pure analysis packages to storage and
// exposes the adaptive feedback operations the server serves. All
// cross-signal orchestration (fan-out, timeouts, fallbacks) lives
// here; the analysis packages below stay storage-free.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/behavior"
	"github.com/abhisek/mathpal/internal/encourage"
	"github.com/abhisek/mathpal/internal/feedback"
	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

const (
	// defaultBranchTimeout bounds each signal branch of the
	// comprehensive feedback fan-out.
	defaultBranchTimeout = 2 * time.Second

	// eventRetentionDays bounds how long raw telemetry is kept.
	eventRetentionDays = 90
)

// Encourager produces a motivational message for a learner moment.
// Implementations must always return a message; failures are theirs to
// absorb.
type Encourager interface {
	Message(ctx context.Context, in encourage.Input) string
}

// Service implements the adaptive feedback operations.
type Service struct {
	events        store.EventRepo
	logs          store.PerformanceRepo
	progress      store.ProgressRepo
	encourager    Encourager // nil disables encouragement messages
	log           *zap.Logger
	branchTimeout time.Duration
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithEncourager attaches an encouragement message generator.
func WithEncourager(e Encourager) Option {
	return func(s *Service) { s.encourager = e }
}

// WithBranchTimeout overrides the per-branch timeout of the
// comprehensive feedback fan-out.
func WithBranchTimeout(d time.Duration) Option {
	return func(s *Service) { s.branchTimeout = d }
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(events store.EventRepo, logs store.PerformanceRepo, progress store.ProgressRepo, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		events:        events,
		logs:          logs,
		progress:      progress,
		log:           log,
		branchTimeout: defaultBranchTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestEvents validates and stores a batch of raw interaction events.
// Malformed events are skipped and counted, never fatal. Returns how
// many events were stored and how many were skipped.
func (s *Service) IngestEvents(ctx context.Context, events []telemetry.Event) (stored, skipped int, err error) {
	valid := make([]telemetry.Event, 0, len(events))
	for i := range events {
		ev := events[i]
		if !ev.WellFormed() || ev.UserID == "" || ev.SessionID == "" {
			skipped++
			continue
		}
		if ev.Timestamp.IsZero() {
			ev.Timestamp = s.now()
		}
		valid = append(valid, ev)
	}

	if skipped > 0 {
		s.log.Warn("skipped malformed events", zap.Int("skipped", skipped), zap.Int("total", len(events)))
	}

	if err := s.events.AppendBatch(ctx, valid); err != nil {
		return 0, skipped, &StoreError{Op: "append events", Err: err}
	}
	return len(valid), skipped, nil
}

// SessionEvents returns a session's stored events, oldest first.
func (s *Service) SessionEvents(ctx context.Context, userID, sessionID string) ([]telemetry.Event, error) {
	events, err := s.events.BySession(ctx, userID, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "query session events", Err: err}
	}
	return events, nil
}

// SessionMetrics aggregates a session's stored events. A nil result
// means the session has no interaction data, which is not an error.
func (s *Service) SessionMetrics(ctx context.Context, userID, sessionID string) (*telemetry.EngagementMetrics, int, error) {
	events, err := s.events.BySession(ctx, userID, sessionID)
	if err != nil {
		return nil, 0, &StoreError{Op: "query session events", Err: err}
	}
	metrics, skipped := telemetry.Aggregate(events)
	return metrics, skipped, nil
}

// BehaviorProfile scores a session's stored events into a behavioral
// profile. An empty session yields the neutral defaults. The count of
// stored events skipped as malformed is returned so callers can alert
// on corrupt data.
func (s *Service) BehaviorProfile(ctx context.Context, userID, sessionID string) (behavior.Profile, int, error) {
	events, err := s.events.BySession(ctx, userID, sessionID)
	if err != nil {
		return behavior.Profile{}, 0, &StoreError{Op: "query session events", Err: err}
	}
	profile, skipped := behavior.Score(events)
	if skipped > 0 {
		s.log.Warn("malformed stored events skipped while scoring behavior",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.Int("skipped", skipped))
	}
	return profile, skipped, nil
}

// PerformanceTrend analyzes a learner's trailing log window.
// windowDays <= 0 uses the default window.
func (s *Service) PerformanceTrend(ctx context.Context, userID, moduleName string, windowDays int) (trend.Result, error) {
	if windowDays <= 0 {
		windowDays = trend.DefaultWindowDays
	}
	now := s.now()
	cutoff := now.AddDate(0, 0, -windowDays)

	logs, err := s.logs.Since(ctx, userID, moduleName, cutoff)
	if err != nil {
		return trend.Result{}, &StoreError{Op: "query performance logs", Err: err}
	}
	return trend.Analyze(logs, now, windowDays), nil
}

// Recommendations derives the baseline recommendations from a
// learner's progress record. Missing progress yields the conservative
// new-learner defaults; a failed lookup is a StoreError.
func (s *Service) Recommendations(ctx context.Context, userID, moduleName string) (feedback.Recommendations, error) {
	rec, err := s.progress.Get(ctx, userID, moduleName)
	if err != nil {
		return feedback.Recommendations{}, &StoreError{Op: "query progress", Err: err}
	}
	return feedback.Recommend(rec), nil
}

// SessionParameters derives the next session's parameters from a
// learner's progress record.
func (s *Service) SessionParameters(ctx context.Context, userID, moduleName string) (feedback.Parameters, error) {
	rec, err := s.progress.Get(ctx, userID, moduleName)
	if err != nil {
		return feedback.Parameters{}, &StoreError{Op: "query progress", Err: err}
	}
	return feedback.SessionParameters(rec), nil
}

// Progress returns the learner's progress record for one module, or
// nil when there is no history.
func (s *Service) Progress(ctx context.Context, userID, moduleName string) (*mastery.Record, error) {
	rec, err := s.progress.Get(ctx, userID, moduleName)
	if err != nil {
		return nil, &StoreError{Op: "query progress", Err: err}
	}
	return rec, nil
}

// OverallProgress returns all of a learner's progress records.
func (s *Service) OverallProgress(ctx context.Context, userID string) ([]*mastery.Record, error) {
	records, err := s.progress.List(ctx, userID)
	if err != nil {
		return nil, &StoreError{Op: "list progress", Err: err}
	}
	return records, nil
}

// Nudge decides the realtime in-question intervention from the events
// the client sent along. Nothing is read from or written to storage.
func (s *Service) Nudge(recent []telemetry.Event) feedback.Nudge {
	return feedback.DecideNudge(recent, s.now())
}

// Patterns returns a learner's recent raw events with a coarse
// pattern summary.
func (s *Service) Patterns(ctx context.Context, userID, moduleName string, limit int) ([]telemetry.Event, feedback.PatternAnalysis, error) {
	events, err := s.events.ByUser(ctx, userID, moduleName, limit)
	if err != nil {
		return nil, feedback.PatternAnalysis{}, &StoreError{Op: "query user events", Err: err}
	}
	return events, feedback.AnalyzePatterns(events), nil
}

// conceptFetchLimit is how many recent log entries are pulled when
// assessing a concept; the assessor itself keeps only the last 20
// matching the tag.
const conceptFetchLimit = 200

// AssessConcept reports mastery of a single concept from the recent
// performance log.
func (s *Service) AssessConcept(ctx context.Context, userID, moduleName, concept string) (trend.ConceptAssessment, error) {
	logs, err := s.logs.Recent(ctx, userID, moduleName, conceptFetchLimit)
	if err != nil {
		return trend.ConceptAssessment{}, &StoreError{Op: "query performance logs", Err: err}
	}
	// Recent returns newest first; the assessor expects ascending.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return trend.AssessConcept(logs, concept), nil
}

// LogPerformance appends one answer outcome to the performance log.
// A zero timestamp is backfilled with the service clock.
func (s *Service) LogPerformance(ctx context.Context, entry trend.LogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return &StoreError{Op: "append performance log", Err: err}
	}
	return nil
}

// PerformanceHistory returns a learner's most recent answer log,
// newest first. moduleName narrows when non-empty.
func (s *Service) PerformanceHistory(ctx context.Context, userID, moduleName string, limit int) ([]trend.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	logs, err := s.logs.Recent(ctx, userID, moduleName, limit)
	if err != nil {
		return nil, &StoreError{Op: "query performance logs", Err: err}
	}
	return logs, nil
}

// SessionPerformance returns one session's answer log, oldest first.
// An empty slice means the session is unknown.
func (s *Service) SessionPerformance(ctx context.Context, sessionID string) ([]trend.LogEntry, error) {
	logs, err := s.logs.BySession(ctx, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "query session performance logs", Err: err}
	}
	return logs, nil
}

// EnsureProgress returns the learner's progress record for a module,
// creating and persisting the default record on first access.
func (s *Service) EnsureProgress(ctx context.Context, userID, moduleName string) (*mastery.Record, error) {
	rec, err := s.progress.Get(ctx, userID, moduleName)
	if err != nil {
		return nil, &StoreError{Op: "query progress", Err: err}
	}
	if rec != nil {
		return rec, nil
	}
	rec, err = s.progress.Update(ctx, userID, moduleName, func(*mastery.Record) error { return nil })
	if err != nil {
		return nil, &StoreError{Op: "create progress", Err: err}
	}
	return rec, nil
}

// RecordSession folds a completed session into the learner's progress
// record and appends the per-answer log entries. The progress
// read-modify-write is serialized per (user, module) by the repo.
func (s *Service) RecordSession(ctx context.Context, userID, moduleName string, summary mastery.SessionSummary, entries []trend.LogEntry) (*mastery.Record, error) {
	if len(entries) > 0 {
		if err := s.logs.AppendBatch(ctx, entries); err != nil {
			return nil, &StoreError{Op: "append performance logs", Err: err}
		}
	}

	now := s.now()
	rec, err := s.progress.Update(ctx, userID, moduleName, func(r *mastery.Record) error {
		r.ApplySession(summary, now)
		return nil
	})
	if err != nil {
		return nil, &StoreError{Op: "update progress", Err: err}
	}
	return rec, nil
}

// PruneEvents deletes raw telemetry older than the retention window.
func (s *Service) PruneEvents(ctx context.Context) (int, error) {
	cutoff := s.now().AddDate(0, 0, -eventRetentionDays)
	n, err := s.events.PruneOlderThan(ctx, cutoff)
	if err != nil {
		return 0, &StoreError{Op: "prune events", Err: err}
	}
	if n > 0 {
		s.log.Info("pruned old interaction events", zap.Int("count", n))
	}
	return n, nil
}

// ComprehensiveFeedback combines performance trend, behavioral profile
// and baseline recommendations into one adaptive feedback object. The
// three signal reads run concurrently, each under its own timeout.
// Trend and behavior fall back to their no-data defaults when their
// branch fails; a failed progress lookup aborts the whole call because
// recommendations from a half-read record could mislead.
func (s *Service) ComprehensiveFeedback(ctx context.Context, userID, moduleName, sessionID string) (ComprehensiveFeedback, error) {
	var (
		tr      trend.Result
		profile behavior.Profile
		rec     feedback.Recommendations
		accPct  int

		trErr, profErr, recErr error
	)

	branch := func(fn func(context.Context)) <-chan struct{} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			bctx, cancel := context.WithTimeout(ctx, s.branchTimeout)
			defer cancel()
			fn(bctx)
		}()
		return done
	}

	trendDone := branch(func(bctx context.Context) {
		tr, trErr = s.PerformanceTrend(bctx, userID, moduleName, 0)
	})
	profileDone := branch(func(bctx context.Context) {
		profile, _, profErr = s.BehaviorProfile(bctx, userID, sessionID)
	})
	recDone := branch(func(bctx context.Context) {
		var r *mastery.Record
		r, recErr = s.progress.Get(bctx, userID, moduleName)
		if recErr == nil {
			rec = feedback.Recommend(r)
			if r != nil {
				accPct = r.AccuracyPct
			}
		}
	})

	<-trendDone
	<-profileDone
	<-recDone

	if ctx.Err() != nil {
		return ComprehensiveFeedback{}, ctx.Err()
	}
	if recErr != nil {
		return ComprehensiveFeedback{}, &StoreError{Op: "query progress", Err: recErr}
	}

	if trErr != nil {
		s.log.Warn("trend branch failed, treating as insufficient data",
			zap.String("user_id", userID), zap.Error(trErr))
		tr = trend.Result{Trend: trend.InsufficientData}
	}
	if profErr != nil {
		s.log.Warn("behavior branch failed, using neutral profile",
			zap.String("user_id", userID), zap.Error(profErr))
		profile, _ = behavior.Score(nil)
	}

	out := ComprehensiveFeedback{
		Adaptive: feedback.Synthesize(rec, profile, tr),
	}

	if s.encourager != nil {
		out.Message = s.encourager.Message(ctx, encourage.Input{
			UserID:      userID,
			ModuleName:  moduleName,
			Level:       rec.EncouragementLevel,
			Trend:       tr.Trend,
			AccuracyPct: accPct,
		})
	}
	return out, nil
}

// ComprehensiveFeedback is the combined feedback object, optionally
// carrying a generated encouragement message.
type ComprehensiveFeedback struct {
	feedback.Adaptive
	Message string `json:"message,omitempty"`
}

// StoreError marks a failure of the storage layer itself, as opposed
// to a learner simply having no data yet. Handlers map it to a 5xx.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
