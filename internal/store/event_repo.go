package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpal/ent"
	"github.com/abhisek/mathpal/ent/interactionevent"
	entschema "github.com/abhisek/mathpal/ent/schema"
	"github.com/abhisek/mathpal/internal/telemetry"
)

const defaultEventLimit = 100

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendBatch(ctx context.Context, events []telemetry.Event) error {
	if len(events) == 0 {
		return nil
	}

	builders := make([]*ent.InteractionEventCreate, len(events))
	for i, ev := range events {
		builders[i] = r.client.InteractionEvent.Create().
			SetUserID(ev.UserID).
			SetModuleName(ev.ModuleName).
			SetSessionID(ev.SessionID).
			SetQuestionID(ev.QuestionID).
			SetEventType(string(ev.Type)).
			SetPayload(toSchemaPayload(ev.Payload)).
			SetTimestamp(ev.Timestamp.UTC())
	}

	if err := r.client.InteractionEvent.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("append interaction events: %w", err)
	}
	return nil
}

func (r *eventRepo) BySession(ctx context.Context, userID, sessionID string) ([]telemetry.Event, error) {
	rows, err := r.client.InteractionEvent.Query().
		Where(
			interactionevent.UserID(userID),
			interactionevent.SessionID(sessionID),
		).
		Order(ent.Asc(interactionevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return toDomainEvents(rows), nil
}

func (r *eventRepo) ByUser(ctx context.Context, userID, moduleName string, limit int) ([]telemetry.Event, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}

	q := r.client.InteractionEvent.Query().
		Where(interactionevent.UserID(userID))
	if moduleName != "" {
		q = q.Where(interactionevent.ModuleName(moduleName))
	}

	rows, err := q.
		Order(ent.Desc(interactionevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user events: %w", err)
	}
	return toDomainEvents(rows), nil
}

func (r *eventRepo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.InteractionEvent.Delete().
		Where(interactionevent.TimestampLT(cutoff.UTC())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune interaction events: %w", err)
	}
	return n, nil
}

func toDomainEvents(rows []*ent.InteractionEvent) []telemetry.Event {
	out := make([]telemetry.Event, len(rows))
	for i, row := range rows {
		out[i] = telemetry.Event{
			UserID:     row.UserID,
			SessionID:  row.SessionID,
			ModuleName: row.ModuleName,
			QuestionID: row.QuestionID,
			Type:       telemetry.EventType(row.EventType),
			Payload:    toDomainPayload(row.Payload),
			Timestamp:  row.Timestamp,
		}
	}
	return out
}

func toSchemaPayload(p telemetry.Payload) entschema.EventPayload {
	return entschema.EventPayload{
		TargetElement: p.TargetElement,
		KeyCode:       p.KeyCode,
		ChoiceIndex:   p.ChoiceIndex,
		HoverDuration: p.HoverDuration,
		ReactionTime:  p.ReactionTime,
		Duration:      p.Duration,
		IsCorrect:     p.IsCorrect,
		Timestamp:     p.Timestamp,
		MouseX:        p.MouseX,
		MouseY:        p.MouseY,
	}
}

func toDomainPayload(p entschema.EventPayload) telemetry.Payload {
	return telemetry.Payload{
		TargetElement: p.TargetElement,
		KeyCode:       p.KeyCode,
		ChoiceIndex:   p.ChoiceIndex,
		HoverDuration: p.HoverDuration,
		ReactionTime:  p.ReactionTime,
		Duration:      p.Duration,
		IsCorrect:     p.IsCorrect,
		Timestamp:     p.Timestamp,
		MouseX:        p.MouseX,
		MouseY:        p.MouseY,
	}
}
