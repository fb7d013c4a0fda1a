package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records a single raw telemetry event from the
// learner's client: mouse movement, hovers, answers, idle periods.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LearnerMixin{}}
}

// EventPayload is the serialized form of the optional per-type payload
// fields. Pointers distinguish absent from zero.
type EventPayload struct {
	TargetElement string   `json:"targetElement,omitempty"`
	KeyCode       string   `json:"keyCode,omitempty"`
	ChoiceIndex   *int     `json:"choiceIndex,omitempty"`
	HoverDuration *int64   `json:"hoverDuration,omitempty"`
	ReactionTime  *int64   `json:"reactionTime,omitempty"`
	Duration      *int64   `json:"duration,omitempty"`
	IsCorrect     *bool    `json:"isCorrect,omitempty"`
	Timestamp     *int64   `json:"timestamp,omitempty"`
	MouseX        *float64 `json:"x,omitempty"`
	MouseY        *float64 `json:"y,omitempty"`
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups events belonging to one practice session"),
		field.String("question_id").
			Optional().
			Comment("Question on screen when the event fired, if any"),
		field.String("event_type").
			NotEmpty().
			Comment("One of the closed telemetry event type set"),
		field.JSON("payload", EventPayload{}).
			Optional().
			Comment("Type-specific payload fields"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_id"),
		index.Fields("session_id"),
		index.Fields("event_type"),
	}
}
