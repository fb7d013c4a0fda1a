package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// LearnerMixin provides the base fields shared by all per-learner
// records. Every entity includes this mixin so queries can always
// filter by learner and module the same way.
type LearnerMixin struct {
	mixin.Schema
}

func (LearnerMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Learner this record belongs to"),
		field.String("module_name").
			NotEmpty().
			Comment("Learning module, e.g. addition or fractions"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("UTC wall-clock time of the record"),
	}
}

func (LearnerMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "module_name"),
		index.Fields("timestamp"),
	}
}
