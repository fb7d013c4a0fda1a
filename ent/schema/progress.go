package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the single cumulative record per (learner, module). It
// is read-modify-written on every session completion.
type Progress struct {
	ent.Schema
}

func (Progress) Mixin() []ent.Mixin {
	return []ent.Mixin{LearnerMixin{}}
}

// ConceptStat is the serialized per-concept running stat kept inside
// the strengths and weak_areas JSON columns.
type ConceptStat struct {
	Concept     string `json:"concept"`
	AccuracyPct int    `json:"accuracy"`
	Attempts    int    `json:"attempts"`
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("accuracy_pct").
			Range(0, 100).
			Default(0).
			Comment("Cumulative accuracy over all sessions"),
		field.String("mastery_level").
			Default("beginner").
			Comment("beginner, developing, proficient, or mastered"),
		field.Int("completed_sessions").
			NonNegative().
			Default(0),
		field.Int("total_questions").
			NonNegative().
			Default(0),
		field.Int("correct_answers").
			NonNegative().
			Default(0),
		field.String("current_difficulty").
			Default("easy"),
		field.JSON("strengths", []ConceptStat{}).
			Optional(),
		field.JSON("weak_areas", []ConceptStat{}).
			Optional().
			Comment("Kept sorted weakest first"),
		field.Float("average_response_ms").
			Min(0).
			Default(0).
			Comment("Rolling average across sessions"),
		field.Int("total_time_secs").
			NonNegative().
			Default(0),
		field.Time("last_session_at").
			Optional().
			Nillable(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "module_name").
			Unique().
			StorageKey("progress_user_id_module_name_unique"),
	}
}
