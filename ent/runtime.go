// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathpal/ent/interactionevent"
	"github.com/abhisek/mathpal/ent/performancelog"
	"github.com/abhisek/mathpal/ent/progress"
	"github.com/abhisek/mathpal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescUserID is the schema descriptor for user_id field.
	interactioneventDescUserID := interactioneventMixinFields0[0].Descriptor()
	// interactionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionevent.UserIDValidator = interactioneventDescUserID.Validators[0].(func(string) error)
	// interactioneventDescModuleName is the schema descriptor for module_name field.
	interactioneventDescModuleName := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	interactionevent.ModuleNameValidator = interactioneventDescModuleName.Validators[0].(func(string) error)
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[2].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescSessionID is the schema descriptor for session_id field.
	interactioneventDescSessionID := interactioneventFields[0].Descriptor()
	// interactionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interactionevent.SessionIDValidator = interactioneventDescSessionID.Validators[0].(func(string) error)
	// interactioneventDescEventType is the schema descriptor for event_type field.
	interactioneventDescEventType := interactioneventFields[2].Descriptor()
	// interactionevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	interactionevent.EventTypeValidator = interactioneventDescEventType.Validators[0].(func(string) error)
	performancelogMixin := schema.PerformanceLog{}.Mixin()
	performancelogMixinFields0 := performancelogMixin[0].Fields()
	_ = performancelogMixinFields0
	performancelogFields := schema.PerformanceLog{}.Fields()
	_ = performancelogFields
	// performancelogDescUserID is the schema descriptor for user_id field.
	performancelogDescUserID := performancelogMixinFields0[0].Descriptor()
	// performancelog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performancelog.UserIDValidator = performancelogDescUserID.Validators[0].(func(string) error)
	// performancelogDescModuleName is the schema descriptor for module_name field.
	performancelogDescModuleName := performancelogMixinFields0[1].Descriptor()
	// performancelog.ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	performancelog.ModuleNameValidator = performancelogDescModuleName.Validators[0].(func(string) error)
	// performancelogDescTimestamp is the schema descriptor for timestamp field.
	performancelogDescTimestamp := performancelogMixinFields0[2].Descriptor()
	// performancelog.DefaultTimestamp holds the default value on creation for the timestamp field.
	performancelog.DefaultTimestamp = performancelogDescTimestamp.Default.(func() time.Time)
	// performancelogDescSessionID is the schema descriptor for session_id field.
	performancelogDescSessionID := performancelogFields[0].Descriptor()
	// performancelog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	performancelog.SessionIDValidator = performancelogDescSessionID.Validators[0].(func(string) error)
	// performancelogDescQuestionType is the schema descriptor for question_type field.
	performancelogDescQuestionType := performancelogFields[1].Descriptor()
	// performancelog.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	performancelog.QuestionTypeValidator = performancelogDescQuestionType.Validators[0].(func(string) error)
	// performancelogDescResponseTimeMs is the schema descriptor for response_time_ms field.
	performancelogDescResponseTimeMs := performancelogFields[3].Descriptor()
	// performancelog.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	performancelog.ResponseTimeMsValidator = performancelogDescResponseTimeMs.Validators[0].(func(int64) error)
	// performancelogDescDifficulty is the schema descriptor for difficulty field.
	performancelogDescDifficulty := performancelogFields[4].Descriptor()
	// performancelog.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	performancelog.DifficultyValidator = performancelogDescDifficulty.Validators[0].(func(string) error)
	// performancelogDescHintsUsed is the schema descriptor for hints_used field.
	performancelogDescHintsUsed := performancelogFields[5].Descriptor()
	// performancelog.DefaultHintsUsed holds the default value on creation for the hints_used field.
	performancelog.DefaultHintsUsed = performancelogDescHintsUsed.Default.(int)
	// performancelog.HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	performancelog.HintsUsedValidator = performancelogDescHintsUsed.Validators[0].(func(int) error)
	progressMixin := schema.Progress{}.Mixin()
	progressMixinFields0 := progressMixin[0].Fields()
	_ = progressMixinFields0
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescUserID is the schema descriptor for user_id field.
	progressDescUserID := progressMixinFields0[0].Descriptor()
	// progress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progress.UserIDValidator = progressDescUserID.Validators[0].(func(string) error)
	// progressDescModuleName is the schema descriptor for module_name field.
	progressDescModuleName := progressMixinFields0[1].Descriptor()
	// progress.ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	progress.ModuleNameValidator = progressDescModuleName.Validators[0].(func(string) error)
	// progressDescTimestamp is the schema descriptor for timestamp field.
	progressDescTimestamp := progressMixinFields0[2].Descriptor()
	// progress.DefaultTimestamp holds the default value on creation for the timestamp field.
	progress.DefaultTimestamp = progressDescTimestamp.Default.(func() time.Time)
	// progressDescAccuracyPct is the schema descriptor for accuracy_pct field.
	progressDescAccuracyPct := progressFields[0].Descriptor()
	// progress.DefaultAccuracyPct holds the default value on creation for the accuracy_pct field.
	progress.DefaultAccuracyPct = progressDescAccuracyPct.Default.(int)
	// progress.AccuracyPctValidator is a validator for the "accuracy_pct" field. It is called by the builders before save.
	progress.AccuracyPctValidator = progressDescAccuracyPct.Validators[0].(func(int) error)
	// progressDescMasteryLevel is the schema descriptor for mastery_level field.
	progressDescMasteryLevel := progressFields[1].Descriptor()
	// progress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	progress.DefaultMasteryLevel = progressDescMasteryLevel.Default.(string)
	// progressDescCompletedSessions is the schema descriptor for completed_sessions field.
	progressDescCompletedSessions := progressFields[2].Descriptor()
	// progress.DefaultCompletedSessions holds the default value on creation for the completed_sessions field.
	progress.DefaultCompletedSessions = progressDescCompletedSessions.Default.(int)
	// progress.CompletedSessionsValidator is a validator for the "completed_sessions" field. It is called by the builders before save.
	progress.CompletedSessionsValidator = progressDescCompletedSessions.Validators[0].(func(int) error)
	// progressDescTotalQuestions is the schema descriptor for total_questions field.
	progressDescTotalQuestions := progressFields[3].Descriptor()
	// progress.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	progress.DefaultTotalQuestions = progressDescTotalQuestions.Default.(int)
	// progress.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	progress.TotalQuestionsValidator = progressDescTotalQuestions.Validators[0].(func(int) error)
	// progressDescCorrectAnswers is the schema descriptor for correct_answers field.
	progressDescCorrectAnswers := progressFields[4].Descriptor()
	// progress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	progress.DefaultCorrectAnswers = progressDescCorrectAnswers.Default.(int)
	// progress.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	progress.CorrectAnswersValidator = progressDescCorrectAnswers.Validators[0].(func(int) error)
	// progressDescCurrentDifficulty is the schema descriptor for current_difficulty field.
	progressDescCurrentDifficulty := progressFields[5].Descriptor()
	// progress.DefaultCurrentDifficulty holds the default value on creation for the current_difficulty field.
	progress.DefaultCurrentDifficulty = progressDescCurrentDifficulty.Default.(string)
	// progressDescAverageResponseMs is the schema descriptor for average_response_ms field.
	progressDescAverageResponseMs := progressFields[8].Descriptor()
	// progress.DefaultAverageResponseMs holds the default value on creation for the average_response_ms field.
	progress.DefaultAverageResponseMs = progressDescAverageResponseMs.Default.(float64)
	// progress.AverageResponseMsValidator is a validator for the "average_response_ms" field. It is called by the builders before save.
	progress.AverageResponseMsValidator = progressDescAverageResponseMs.Validators[0].(func(float64) error)
	// progressDescTotalTimeSecs is the schema descriptor for total_time_secs field.
	progressDescTotalTimeSecs := progressFields[9].Descriptor()
	// progress.DefaultTotalTimeSecs holds the default value on creation for the total_time_secs field.
	progress.DefaultTotalTimeSecs = progressDescTotalTimeSecs.Default.(int)
	// progress.TotalTimeSecsValidator is a validator for the "total_time_secs" field. It is called by the builders before save.
	progress.TotalTimeSecsValidator = progressDescTotalTimeSecs.Validators[0].(func(int) error)
}
