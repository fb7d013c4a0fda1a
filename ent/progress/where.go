// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// ModuleName applies equality check predicate on the "module_name" field. It's identical to ModuleNameEQ.
func ModuleName(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldModuleName, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTimestamp, v))
}

// AccuracyPct applies equality check predicate on the "accuracy_pct" field. It's identical to AccuracyPctEQ.
func AccuracyPct(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAccuracyPct, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldMasteryLevel, v))
}

// CompletedSessions applies equality check predicate on the "completed_sessions" field. It's identical to CompletedSessionsEQ.
func CompletedSessions(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedSessions, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CurrentDifficulty applies equality check predicate on the "current_difficulty" field. It's identical to CurrentDifficultyEQ.
func CurrentDifficulty(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// AverageResponseMs applies equality check predicate on the "average_response_ms" field. It's identical to AverageResponseMsEQ.
func AverageResponseMs(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAverageResponseMs, v))
}

// TotalTimeSecs applies equality check predicate on the "total_time_secs" field. It's identical to TotalTimeSecsEQ.
func TotalTimeSecs(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// LastSessionAt applies equality check predicate on the "last_session_at" field. It's identical to LastSessionAtEQ.
func LastSessionAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastSessionAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldUserID, v))
}

// ModuleNameEQ applies the EQ predicate on the "module_name" field.
func ModuleNameEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldModuleName, v))
}

// ModuleNameNEQ applies the NEQ predicate on the "module_name" field.
func ModuleNameNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldModuleName, v))
}

// ModuleNameIn applies the In predicate on the "module_name" field.
func ModuleNameIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldModuleName, vs...))
}

// ModuleNameNotIn applies the NotIn predicate on the "module_name" field.
func ModuleNameNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldModuleName, vs...))
}

// ModuleNameGT applies the GT predicate on the "module_name" field.
func ModuleNameGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldModuleName, v))
}

// ModuleNameGTE applies the GTE predicate on the "module_name" field.
func ModuleNameGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldModuleName, v))
}

// ModuleNameLT applies the LT predicate on the "module_name" field.
func ModuleNameLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldModuleName, v))
}

// ModuleNameLTE applies the LTE predicate on the "module_name" field.
func ModuleNameLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldModuleName, v))
}

// ModuleNameContains applies the Contains predicate on the "module_name" field.
func ModuleNameContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldModuleName, v))
}

// ModuleNameHasPrefix applies the HasPrefix predicate on the "module_name" field.
func ModuleNameHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldModuleName, v))
}

// ModuleNameHasSuffix applies the HasSuffix predicate on the "module_name" field.
func ModuleNameHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldModuleName, v))
}

// ModuleNameEqualFold applies the EqualFold predicate on the "module_name" field.
func ModuleNameEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldModuleName, v))
}

// ModuleNameContainsFold applies the ContainsFold predicate on the "module_name" field.
func ModuleNameContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldModuleName, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTimestamp, v))
}

// AccuracyPctEQ applies the EQ predicate on the "accuracy_pct" field.
func AccuracyPctEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAccuracyPct, v))
}

// AccuracyPctNEQ applies the NEQ predicate on the "accuracy_pct" field.
func AccuracyPctNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldAccuracyPct, v))
}

// AccuracyPctIn applies the In predicate on the "accuracy_pct" field.
func AccuracyPctIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldAccuracyPct, vs...))
}

// AccuracyPctNotIn applies the NotIn predicate on the "accuracy_pct" field.
func AccuracyPctNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldAccuracyPct, vs...))
}

// AccuracyPctGT applies the GT predicate on the "accuracy_pct" field.
func AccuracyPctGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldAccuracyPct, v))
}

// AccuracyPctGTE applies the GTE predicate on the "accuracy_pct" field.
func AccuracyPctGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldAccuracyPct, v))
}

// AccuracyPctLT applies the LT predicate on the "accuracy_pct" field.
func AccuracyPctLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldAccuracyPct, v))
}

// AccuracyPctLTE applies the LTE predicate on the "accuracy_pct" field.
func AccuracyPctLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldAccuracyPct, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldMasteryLevel, v))
}

// MasteryLevelContains applies the Contains predicate on the "mastery_level" field.
func MasteryLevelContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldMasteryLevel, v))
}

// MasteryLevelHasPrefix applies the HasPrefix predicate on the "mastery_level" field.
func MasteryLevelHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldMasteryLevel, v))
}

// MasteryLevelHasSuffix applies the HasSuffix predicate on the "mastery_level" field.
func MasteryLevelHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldMasteryLevel, v))
}

// MasteryLevelEqualFold applies the EqualFold predicate on the "mastery_level" field.
func MasteryLevelEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldMasteryLevel, v))
}

// MasteryLevelContainsFold applies the ContainsFold predicate on the "mastery_level" field.
func MasteryLevelContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldMasteryLevel, v))
}

// CompletedSessionsEQ applies the EQ predicate on the "completed_sessions" field.
func CompletedSessionsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedSessions, v))
}

// CompletedSessionsNEQ applies the NEQ predicate on the "completed_sessions" field.
func CompletedSessionsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCompletedSessions, v))
}

// CompletedSessionsIn applies the In predicate on the "completed_sessions" field.
func CompletedSessionsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCompletedSessions, vs...))
}

// CompletedSessionsNotIn applies the NotIn predicate on the "completed_sessions" field.
func CompletedSessionsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCompletedSessions, vs...))
}

// CompletedSessionsGT applies the GT predicate on the "completed_sessions" field.
func CompletedSessionsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCompletedSessions, v))
}

// CompletedSessionsGTE applies the GTE predicate on the "completed_sessions" field.
func CompletedSessionsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCompletedSessions, v))
}

// CompletedSessionsLT applies the LT predicate on the "completed_sessions" field.
func CompletedSessionsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCompletedSessions, v))
}

// CompletedSessionsLTE applies the LTE predicate on the "completed_sessions" field.
func CompletedSessionsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCompletedSessions, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// CurrentDifficultyEQ applies the EQ predicate on the "current_difficulty" field.
func CurrentDifficultyEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyNEQ applies the NEQ predicate on the "current_difficulty" field.
func CurrentDifficultyNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyIn applies the In predicate on the "current_difficulty" field.
func CurrentDifficultyIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyNotIn applies the NotIn predicate on the "current_difficulty" field.
func CurrentDifficultyNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyGT applies the GT predicate on the "current_difficulty" field.
func CurrentDifficultyGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyGTE applies the GTE predicate on the "current_difficulty" field.
func CurrentDifficultyGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLT applies the LT predicate on the "current_difficulty" field.
func CurrentDifficultyLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLTE applies the LTE predicate on the "current_difficulty" field.
func CurrentDifficultyLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCurrentDifficulty, v))
}

// CurrentDifficultyContains applies the Contains predicate on the "current_difficulty" field.
func CurrentDifficultyContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldCurrentDifficulty, v))
}

// CurrentDifficultyHasPrefix applies the HasPrefix predicate on the "current_difficulty" field.
func CurrentDifficultyHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldCurrentDifficulty, v))
}

// CurrentDifficultyHasSuffix applies the HasSuffix predicate on the "current_difficulty" field.
func CurrentDifficultyHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldCurrentDifficulty, v))
}

// CurrentDifficultyEqualFold applies the EqualFold predicate on the "current_difficulty" field.
func CurrentDifficultyEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldCurrentDifficulty, v))
}

// CurrentDifficultyContainsFold applies the ContainsFold predicate on the "current_difficulty" field.
func CurrentDifficultyContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldCurrentDifficulty, v))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldStrengths))
}

// WeakAreasIsNil applies the IsNil predicate on the "weak_areas" field.
func WeakAreasIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldWeakAreas))
}

// WeakAreasNotNil applies the NotNil predicate on the "weak_areas" field.
func WeakAreasNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldWeakAreas))
}

// AverageResponseMsEQ applies the EQ predicate on the "average_response_ms" field.
func AverageResponseMsEQ(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAverageResponseMs, v))
}

// AverageResponseMsNEQ applies the NEQ predicate on the "average_response_ms" field.
func AverageResponseMsNEQ(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldAverageResponseMs, v))
}

// AverageResponseMsIn applies the In predicate on the "average_response_ms" field.
func AverageResponseMsIn(vs ...float64) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldAverageResponseMs, vs...))
}

// AverageResponseMsNotIn applies the NotIn predicate on the "average_response_ms" field.
func AverageResponseMsNotIn(vs ...float64) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldAverageResponseMs, vs...))
}

// AverageResponseMsGT applies the GT predicate on the "average_response_ms" field.
func AverageResponseMsGT(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldAverageResponseMs, v))
}

// AverageResponseMsGTE applies the GTE predicate on the "average_response_ms" field.
func AverageResponseMsGTE(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldAverageResponseMs, v))
}

// AverageResponseMsLT applies the LT predicate on the "average_response_ms" field.
func AverageResponseMsLT(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldAverageResponseMs, v))
}

// AverageResponseMsLTE applies the LTE predicate on the "average_response_ms" field.
func AverageResponseMsLTE(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldAverageResponseMs, v))
}

// TotalTimeSecsEQ applies the EQ predicate on the "total_time_secs" field.
func TotalTimeSecsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsNEQ applies the NEQ predicate on the "total_time_secs" field.
func TotalTimeSecsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsIn applies the In predicate on the "total_time_secs" field.
func TotalTimeSecsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsNotIn applies the NotIn predicate on the "total_time_secs" field.
func TotalTimeSecsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsGT applies the GT predicate on the "total_time_secs" field.
func TotalTimeSecsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsGTE applies the GTE predicate on the "total_time_secs" field.
func TotalTimeSecsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLT applies the LT predicate on the "total_time_secs" field.
func TotalTimeSecsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLTE applies the LTE predicate on the "total_time_secs" field.
func TotalTimeSecsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalTimeSecs, v))
}

// LastSessionAtEQ applies the EQ predicate on the "last_session_at" field.
func LastSessionAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastSessionAt, v))
}

// LastSessionAtNEQ applies the NEQ predicate on the "last_session_at" field.
func LastSessionAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastSessionAt, v))
}

// LastSessionAtIn applies the In predicate on the "last_session_at" field.
func LastSessionAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastSessionAt, vs...))
}

// LastSessionAtNotIn applies the NotIn predicate on the "last_session_at" field.
func LastSessionAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastSessionAt, vs...))
}

// LastSessionAtGT applies the GT predicate on the "last_session_at" field.
func LastSessionAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastSessionAt, v))
}

// LastSessionAtGTE applies the GTE predicate on the "last_session_at" field.
func LastSessionAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastSessionAt, v))
}

// LastSessionAtLT applies the LT predicate on the "last_session_at" field.
func LastSessionAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastSessionAt, v))
}

// LastSessionAtLTE applies the LTE predicate on the "last_session_at" field.
func LastSessionAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastSessionAt, v))
}

// LastSessionAtIsNil applies the IsNil predicate on the "last_session_at" field.
func LastSessionAtIsNil() predicate.Progress {
	return predicate.Progress(sql.FieldIsNull(FieldLastSessionAt))
}

// LastSessionAtNotNil applies the NotNil predicate on the "last_session_at" field.
func LastSessionAtNotNil() predicate.Progress {
	return predicate.Progress(sql.FieldNotNull(FieldLastSessionAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
