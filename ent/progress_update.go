// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpal/ent/predicate"
	"github.com/abhisek/mathpal/ent/progress"
	"github.com/abhisek/mathpal/ent/schema"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *ProgressUpdate) SetModuleName(v string) *ProgressUpdate {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableModuleName(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ProgressUpdate) SetTimestamp(v time.Time) *ProgressUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTimestamp(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *ProgressUpdate) SetAccuracyPct(v int) *ProgressUpdate {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAccuracyPct(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *ProgressUpdate) AddAccuracyPct(v int) *ProgressUpdate {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressUpdate) SetMasteryLevel(v string) *ProgressUpdate {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableMasteryLevel(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_u *ProgressUpdate) SetCompletedSessions(v int) *ProgressUpdate {
	_u.mutation.ResetCompletedSessions()
	_u.mutation.SetCompletedSessions(v)
	return _u
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompletedSessions(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCompletedSessions(*v)
	}
	return _u
}

// AddCompletedSessions adds value to the "completed_sessions" field.
func (_u *ProgressUpdate) AddCompletedSessions(v int) *ProgressUpdate {
	_u.mutation.AddCompletedSessions(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ProgressUpdate) SetTotalQuestions(v int) *ProgressUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalQuestions(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ProgressUpdate) AddTotalQuestions(v int) *ProgressUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressUpdate) SetCorrectAnswers(v int) *ProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCorrectAnswers(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressUpdate) AddCorrectAnswers(v int) *ProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ProgressUpdate) SetCurrentDifficulty(v string) *ProgressUpdate {
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCurrentDifficulty(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *ProgressUpdate) SetStrengths(v []schema.ConceptStat) *ProgressUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *ProgressUpdate) AppendStrengths(v []schema.ConceptStat) *ProgressUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *ProgressUpdate) ClearStrengths() *ProgressUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *ProgressUpdate) SetWeakAreas(v []schema.ConceptStat) *ProgressUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *ProgressUpdate) AppendWeakAreas(v []schema.ConceptStat) *ProgressUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *ProgressUpdate) ClearWeakAreas() *ProgressUpdate {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetAverageResponseMs sets the "average_response_ms" field.
func (_u *ProgressUpdate) SetAverageResponseMs(v float64) *ProgressUpdate {
	_u.mutation.ResetAverageResponseMs()
	_u.mutation.SetAverageResponseMs(v)
	return _u
}

// SetNillableAverageResponseMs sets the "average_response_ms" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAverageResponseMs(v *float64) *ProgressUpdate {
	if v != nil {
		_u.SetAverageResponseMs(*v)
	}
	return _u
}

// AddAverageResponseMs adds value to the "average_response_ms" field.
func (_u *ProgressUpdate) AddAverageResponseMs(v float64) *ProgressUpdate {
	_u.mutation.AddAverageResponseMs(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *ProgressUpdate) SetTotalTimeSecs(v int) *ProgressUpdate {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalTimeSecs(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *ProgressUpdate) AddTotalTimeSecs(v int) *ProgressUpdate {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetLastSessionAt sets the "last_session_at" field.
func (_u *ProgressUpdate) SetLastSessionAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetLastSessionAt(v)
	return _u
}

// SetNillableLastSessionAt sets the "last_session_at" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastSessionAt(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetLastSessionAt(*v)
	}
	return _u
}

// ClearLastSessionAt clears the value of the "last_session_at" field.
func (_u *ProgressUpdate) ClearLastSessionAt() *ProgressUpdate {
	_u.mutation.ClearLastSessionAt()
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := progress.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "Progress.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccuracyPct(); ok {
		if err := progress.AccuracyPctValidator(v); err != nil {
			return &ValidationError{Name: "accuracy_pct", err: fmt.Errorf(`ent: validator failed for field "Progress.accuracy_pct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedSessions(); ok {
		if err := progress.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "Progress.completed_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := progress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "Progress.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := progress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageResponseMs(); ok {
		if err := progress.AverageResponseMsValidator(v); err != nil {
			return &ValidationError{Name: "average_response_ms", err: fmt.Errorf(`ent: validator failed for field "Progress.average_response_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTimeSecs(); ok {
		if err := progress.TotalTimeSecsValidator(v); err != nil {
			return &ValidationError{Name: "total_time_secs", err: fmt.Errorf(`ent: validator failed for field "Progress.total_time_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(progress.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(progress.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(progress.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(progress.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progress.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSessions(); ok {
		_spec.SetField(progress.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSessions(); ok {
		_spec.AddField(progress.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(progress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(progress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(progress.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(progress.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(progress.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(progress.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.AverageResponseMs(); ok {
		_spec.SetField(progress.FieldAverageResponseMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageResponseMs(); ok {
		_spec.AddField(progress.FieldAverageResponseMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(progress.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(progress.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionAt(); ok {
		_spec.SetField(progress.FieldLastSessionAt, field.TypeTime, value)
	}
	if _u.mutation.LastSessionAtCleared() {
		_spec.ClearField(progress.FieldLastSessionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetModuleName sets the "module_name" field.
func (_u *ProgressUpdateOne) SetModuleName(v string) *ProgressUpdateOne {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableModuleName(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ProgressUpdateOne) SetTimestamp(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTimestamp(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_u *ProgressUpdateOne) SetAccuracyPct(v int) *ProgressUpdateOne {
	_u.mutation.ResetAccuracyPct()
	_u.mutation.SetAccuracyPct(v)
	return _u
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAccuracyPct(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetAccuracyPct(*v)
	}
	return _u
}

// AddAccuracyPct adds value to the "accuracy_pct" field.
func (_u *ProgressUpdateOne) AddAccuracyPct(v int) *ProgressUpdateOne {
	_u.mutation.AddAccuracyPct(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressUpdateOne) SetMasteryLevel(v string) *ProgressUpdateOne {
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableMasteryLevel(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_u *ProgressUpdateOne) SetCompletedSessions(v int) *ProgressUpdateOne {
	_u.mutation.ResetCompletedSessions()
	_u.mutation.SetCompletedSessions(v)
	return _u
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompletedSessions(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompletedSessions(*v)
	}
	return _u
}

// AddCompletedSessions adds value to the "completed_sessions" field.
func (_u *ProgressUpdateOne) AddCompletedSessions(v int) *ProgressUpdateOne {
	_u.mutation.AddCompletedSessions(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ProgressUpdateOne) SetTotalQuestions(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalQuestions(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ProgressUpdateOne) AddTotalQuestions(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressUpdateOne) SetCorrectAnswers(v int) *ProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCorrectAnswers(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressUpdateOne) AddCorrectAnswers(v int) *ProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ProgressUpdateOne) SetCurrentDifficulty(v string) *ProgressUpdateOne {
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCurrentDifficulty(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *ProgressUpdateOne) SetStrengths(v []schema.ConceptStat) *ProgressUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *ProgressUpdateOne) AppendStrengths(v []schema.ConceptStat) *ProgressUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *ProgressUpdateOne) ClearStrengths() *ProgressUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *ProgressUpdateOne) SetWeakAreas(v []schema.ConceptStat) *ProgressUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *ProgressUpdateOne) AppendWeakAreas(v []schema.ConceptStat) *ProgressUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *ProgressUpdateOne) ClearWeakAreas() *ProgressUpdateOne {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetAverageResponseMs sets the "average_response_ms" field.
func (_u *ProgressUpdateOne) SetAverageResponseMs(v float64) *ProgressUpdateOne {
	_u.mutation.ResetAverageResponseMs()
	_u.mutation.SetAverageResponseMs(v)
	return _u
}

// SetNillableAverageResponseMs sets the "average_response_ms" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAverageResponseMs(v *float64) *ProgressUpdateOne {
	if v != nil {
		_u.SetAverageResponseMs(*v)
	}
	return _u
}

// AddAverageResponseMs adds value to the "average_response_ms" field.
func (_u *ProgressUpdateOne) AddAverageResponseMs(v float64) *ProgressUpdateOne {
	_u.mutation.AddAverageResponseMs(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *ProgressUpdateOne) SetTotalTimeSecs(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalTimeSecs(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *ProgressUpdateOne) AddTotalTimeSecs(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetLastSessionAt sets the "last_session_at" field.
func (_u *ProgressUpdateOne) SetLastSessionAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetLastSessionAt(v)
	return _u
}

// SetNillableLastSessionAt sets the "last_session_at" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastSessionAt(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastSessionAt(*v)
	}
	return _u
}

// ClearLastSessionAt clears the value of the "last_session_at" field.
func (_u *ProgressUpdateOne) ClearLastSessionAt() *ProgressUpdateOne {
	_u.mutation.ClearLastSessionAt()
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := progress.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "Progress.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccuracyPct(); ok {
		if err := progress.AccuracyPctValidator(v); err != nil {
			return &ValidationError{Name: "accuracy_pct", err: fmt.Errorf(`ent: validator failed for field "Progress.accuracy_pct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedSessions(); ok {
		if err := progress.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "Progress.completed_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := progress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "Progress.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := progress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageResponseMs(); ok {
		if err := progress.AverageResponseMsValidator(v); err != nil {
			return &ValidationError{Name: "average_response_ms", err: fmt.Errorf(`ent: validator failed for field "Progress.average_response_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTimeSecs(); ok {
		if err := progress.TotalTimeSecsValidator(v); err != nil {
			return &ValidationError{Name: "total_time_secs", err: fmt.Errorf(`ent: validator failed for field "Progress.total_time_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(progress.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(progress.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccuracyPct(); ok {
		_spec.SetField(progress.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPct(); ok {
		_spec.AddField(progress.FieldAccuracyPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progress.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSessions(); ok {
		_spec.SetField(progress.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedSessions(); ok {
		_spec.AddField(progress.FieldCompletedSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(progress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(progress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(progress.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(progress.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(progress.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(progress.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.AverageResponseMs(); ok {
		_spec.SetField(progress.FieldAverageResponseMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageResponseMs(); ok {
		_spec.AddField(progress.FieldAverageResponseMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(progress.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(progress.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionAt(); ok {
		_spec.SetField(progress.FieldLastSessionAt, field.TypeTime, value)
	}
	if _u.mutation.LastSessionAtCleared() {
		_spec.ClearField(progress.FieldLastSessionAt, field.TypeTime)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
