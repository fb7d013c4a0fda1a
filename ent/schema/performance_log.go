package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceLog records the outcome of one answered question. Trend
// analysis reads these back over a trailing time window.
type PerformanceLog struct {
	ent.Schema
}

func (PerformanceLog) Mixin() []ent.Mixin {
	return []ent.Mixin{LearnerMixin{}}
}

func (PerformanceLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the answer belongs to"),
		field.String("question_type").
			NotEmpty().
			Comment("e.g. multiple-choice, free-input"),
		field.Bool("is_correct"),
		field.Int64("response_time_ms").
			NonNegative(),
		field.String("difficulty").
			NotEmpty().
			Comment("Difficulty the question was served at"),
		field.Int("hints_used").
			NonNegative().
			Default(0),
		field.Strings("concept_tags").
			Optional().
			Comment("Concepts the question exercised"),
	}
}

func (PerformanceLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "module_name", "timestamp"),
		index.Fields("session_id"),
	}
}
