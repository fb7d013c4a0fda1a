// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldModuleName holds the string denoting the module_name field in the database.
	FieldModuleName = "module_name"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAccuracyPct holds the string denoting the accuracy_pct field in the database.
	FieldAccuracyPct = "accuracy_pct"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldCompletedSessions holds the string denoting the completed_sessions field in the database.
	FieldCompletedSessions = "completed_sessions"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldCurrentDifficulty holds the string denoting the current_difficulty field in the database.
	FieldCurrentDifficulty = "current_difficulty"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldAverageResponseMs holds the string denoting the average_response_ms field in the database.
	FieldAverageResponseMs = "average_response_ms"
	// FieldTotalTimeSecs holds the string denoting the total_time_secs field in the database.
	FieldTotalTimeSecs = "total_time_secs"
	// FieldLastSessionAt holds the string denoting the last_session_at field in the database.
	FieldLastSessionAt = "last_session_at"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldModuleName,
	FieldTimestamp,
	FieldAccuracyPct,
	FieldMasteryLevel,
	FieldCompletedSessions,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldCurrentDifficulty,
	FieldStrengths,
	FieldWeakAreas,
	FieldAverageResponseMs,
	FieldTotalTimeSecs,
	FieldLastSessionAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	ModuleNameValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultAccuracyPct holds the default value on creation for the "accuracy_pct" field.
	DefaultAccuracyPct int
	// AccuracyPctValidator is a validator for the "accuracy_pct" field. It is called by the builders before save.
	AccuracyPctValidator func(int) error
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel string
	// DefaultCompletedSessions holds the default value on creation for the "completed_sessions" field.
	DefaultCompletedSessions int
	// CompletedSessionsValidator is a validator for the "completed_sessions" field. It is called by the builders before save.
	CompletedSessionsValidator func(int) error
	// DefaultTotalQuestions holds the default value on creation for the "total_questions" field.
	DefaultTotalQuestions int
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
	// DefaultCurrentDifficulty holds the default value on creation for the "current_difficulty" field.
	DefaultCurrentDifficulty string
	// DefaultAverageResponseMs holds the default value on creation for the "average_response_ms" field.
	DefaultAverageResponseMs float64
	// AverageResponseMsValidator is a validator for the "average_response_ms" field. It is called by the builders before save.
	AverageResponseMsValidator func(float64) error
	// DefaultTotalTimeSecs holds the default value on creation for the "total_time_secs" field.
	DefaultTotalTimeSecs int
	// TotalTimeSecsValidator is a validator for the "total_time_secs" field. It is called by the builders before save.
	TotalTimeSecsValidator func(int) error
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByModuleName orders the results by the module_name field.
func ByModuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleName, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAccuracyPct orders the results by the accuracy_pct field.
func ByAccuracyPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyPct, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByCompletedSessions orders the results by the completed_sessions field.
func ByCompletedSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedSessions, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByCurrentDifficulty orders the results by the current_difficulty field.
func ByCurrentDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDifficulty, opts...).ToFunc()
}

// ByAverageResponseMs orders the results by the average_response_ms field.
func ByAverageResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageResponseMs, opts...).ToFunc()
}

// ByTotalTimeSecs orders the results by the total_time_secs field.
func ByTotalTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSecs, opts...).ToFunc()
}

// ByLastSessionAt orders the results by the last_session_at field.
func ByLastSessionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSessionAt, opts...).ToFunc()
}
