// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_name", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_user_id_module_name",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1], InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
			{
				Name:    "interactionevent_user_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1], InteractionEventsColumns[4]},
			},
			{
				Name:    "interactionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4]},
			},
			{
				Name:    "interactionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[6]},
			},
		},
	}
	// PerformanceLogsColumns holds the columns for the "performance_logs" table.
	PerformanceLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_name", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt64},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "concept_tags", Type: field.TypeJSON, Nullable: true},
	}
	// PerformanceLogsTable holds the schema information for the "performance_logs" table.
	PerformanceLogsTable = &schema.Table{
		Name:       "performance_logs",
		Columns:    PerformanceLogsColumns,
		PrimaryKey: []*schema.Column{PerformanceLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancelog_user_id_module_name",
				Unique:  false,
				Columns: []*schema.Column{PerformanceLogsColumns[1], PerformanceLogsColumns[2]},
			},
			{
				Name:    "performancelog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PerformanceLogsColumns[3]},
			},
			{
				Name:    "performancelog_user_id_module_name_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PerformanceLogsColumns[1], PerformanceLogsColumns[2], PerformanceLogsColumns[3]},
			},
			{
				Name:    "performancelog_session_id",
				Unique:  false,
				Columns: []*schema.Column{PerformanceLogsColumns[4]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_name", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "accuracy_pct", Type: field.TypeInt, Default: 0},
		{Name: "mastery_level", Type: field.TypeString, Default: "beginner"},
		{Name: "completed_sessions", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "current_difficulty", Type: field.TypeString, Default: "easy"},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "weak_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "average_response_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "total_time_secs", Type: field.TypeInt, Default: 0},
		{Name: "last_session_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id_module_name",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
			{
				Name:    "progress_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[3]},
			},
			{
				Name:    "progress_user_id_module_name_unique",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionEventsTable,
		PerformanceLogsTable,
		ProgressesTable,
	}
)

func init() {
}
