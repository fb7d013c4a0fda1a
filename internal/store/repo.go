package store

import (
	"context"
	"time"

	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

// EventRepo provides append and query access to raw interaction events.
type EventRepo interface {
	// AppendBatch stores a batch of events in one transaction. The
	// caller has already validated and filtered them.
	AppendBatch(ctx context.Context, events []telemetry.Event) error

	// BySession returns a learner's events for one session, oldest
	// first.
	BySession(ctx context.Context, userID, sessionID string) ([]telemetry.Event, error)

	// ByUser returns a learner's most recent events, newest first.
	// moduleName narrows the query when non-empty. limit caps the
	// result (0 means the default of 100).
	ByUser(ctx context.Context, userID, moduleName string, limit int) ([]telemetry.Event, error)

	// PruneOlderThan deletes events with timestamps before cutoff and
	// returns how many were removed. Raw telemetry has a bounded
	// retention window.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// PerformanceRepo provides access to the per-answer performance log.
type PerformanceRepo interface {
	// Append stores one answer outcome.
	Append(ctx context.Context, entry trend.LogEntry) error

	// AppendBatch stores a session's worth of answer outcomes in one
	// transaction.
	AppendBatch(ctx context.Context, entries []trend.LogEntry) error

	// Since returns a learner's log entries with timestamps at or
	// after cutoff, oldest first.
	Since(ctx context.Context, userID, moduleName string, cutoff time.Time) ([]trend.LogEntry, error)

	// Recent returns a learner's most recent log entries, newest
	// first, capped at limit. moduleName narrows the query when
	// non-empty.
	Recent(ctx context.Context, userID, moduleName string, limit int) ([]trend.LogEntry, error)

	// BySession returns one session's log entries, oldest first.
	BySession(ctx context.Context, sessionID string) ([]trend.LogEntry, error)
}

// ProgressRepo provides access to the cumulative per-(user, module)
// progress record.
type ProgressRepo interface {
	// Get returns the progress record, or (nil, nil) when the learner
	// has no history on the module. A non-nil error means the lookup
	// itself failed, which callers must not confuse with no-data.
	Get(ctx context.Context, userID, moduleName string) (*mastery.Record, error)

	// List returns all of a learner's progress records.
	List(ctx context.Context, userID string) ([]*mastery.Record, error)

	// Update runs fn inside a per-(user, module) critical section.
	// fn receives the current record (a fresh one if none exists),
	// mutates it, and the result is written back. Concurrent session
	// completions for the same key are applied one at a time so no
	// update is lost.
	Update(ctx context.Context, userID, moduleName string, fn func(*mastery.Record) error) (*mastery.Record, error)
}
