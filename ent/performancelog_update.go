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
	"github.com/abhisek/mathpal/ent/performancelog"
	"github.com/abhisek/mathpal/ent/predicate"
)

// PerformanceLogUpdate is the builder for updating PerformanceLog entities.
type PerformanceLogUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceLogMutation
}

// Where appends a list predicates to the PerformanceLogUpdate builder.
func (_u *PerformanceLogUpdate) Where(ps ...predicate.PerformanceLog) *PerformanceLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleName sets the "module_name" field.
func (_u *PerformanceLogUpdate) SetModuleName(v string) *PerformanceLogUpdate {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableModuleName(v *string) *PerformanceLogUpdate {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PerformanceLogUpdate) SetTimestamp(v time.Time) *PerformanceLogUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableTimestamp(v *time.Time) *PerformanceLogUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PerformanceLogUpdate) SetSessionID(v string) *PerformanceLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableSessionID(v *string) *PerformanceLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PerformanceLogUpdate) SetQuestionType(v string) *PerformanceLogUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableQuestionType(v *string) *PerformanceLogUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *PerformanceLogUpdate) SetIsCorrect(v bool) *PerformanceLogUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableIsCorrect(v *bool) *PerformanceLogUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PerformanceLogUpdate) SetResponseTimeMs(v int64) *PerformanceLogUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableResponseTimeMs(v *int64) *PerformanceLogUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PerformanceLogUpdate) AddResponseTimeMs(v int64) *PerformanceLogUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PerformanceLogUpdate) SetDifficulty(v string) *PerformanceLogUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableDifficulty(v *string) *PerformanceLogUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PerformanceLogUpdate) SetHintsUsed(v int) *PerformanceLogUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PerformanceLogUpdate) SetNillableHintsUsed(v *int) *PerformanceLogUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PerformanceLogUpdate) AddHintsUsed(v int) *PerformanceLogUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetConceptTags sets the "concept_tags" field.
func (_u *PerformanceLogUpdate) SetConceptTags(v []string) *PerformanceLogUpdate {
	_u.mutation.SetConceptTags(v)
	return _u
}

// AppendConceptTags appends value to the "concept_tags" field.
func (_u *PerformanceLogUpdate) AppendConceptTags(v []string) *PerformanceLogUpdate {
	_u.mutation.AppendConceptTags(v)
	return _u
}

// ClearConceptTags clears the value of the "concept_tags" field.
func (_u *PerformanceLogUpdate) ClearConceptTags() *PerformanceLogUpdate {
	_u.mutation.ClearConceptTags()
	return _u
}

// Mutation returns the PerformanceLogMutation object of the builder.
func (_u *PerformanceLogUpdate) Mutation() *PerformanceLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceLogUpdate) check() error {
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := performancelog.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := performancelog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := performancelog.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := performancelog.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := performancelog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := performancelog.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.hints_used": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancelog.Table, performancelog.Columns, sqlgraph.NewFieldSpec(performancelog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleName(); ok {
		_spec.SetField(performancelog.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(performancelog.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(performancelog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(performancelog.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(performancelog.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performancelog.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(performancelog.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(performancelog.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(performancelog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(performancelog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTags(); ok {
		_spec.SetField(performancelog.FieldConceptTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, performancelog.FieldConceptTags, value)
		})
	}
	if _u.mutation.ConceptTagsCleared() {
		_spec.ClearField(performancelog.FieldConceptTags, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceLogUpdateOne is the builder for updating a single PerformanceLog entity.
type PerformanceLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceLogMutation
}

// SetModuleName sets the "module_name" field.
func (_u *PerformanceLogUpdateOne) SetModuleName(v string) *PerformanceLogUpdateOne {
	_u.mutation.SetModuleName(v)
	return _u
}

// SetNillableModuleName sets the "module_name" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableModuleName(v *string) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetModuleName(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PerformanceLogUpdateOne) SetTimestamp(v time.Time) *PerformanceLogUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableTimestamp(v *time.Time) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PerformanceLogUpdateOne) SetSessionID(v string) *PerformanceLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableSessionID(v *string) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PerformanceLogUpdateOne) SetQuestionType(v string) *PerformanceLogUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableQuestionType(v *string) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *PerformanceLogUpdateOne) SetIsCorrect(v bool) *PerformanceLogUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableIsCorrect(v *bool) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PerformanceLogUpdateOne) SetResponseTimeMs(v int64) *PerformanceLogUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableResponseTimeMs(v *int64) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PerformanceLogUpdateOne) AddResponseTimeMs(v int64) *PerformanceLogUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PerformanceLogUpdateOne) SetDifficulty(v string) *PerformanceLogUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableDifficulty(v *string) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PerformanceLogUpdateOne) SetHintsUsed(v int) *PerformanceLogUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PerformanceLogUpdateOne) SetNillableHintsUsed(v *int) *PerformanceLogUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PerformanceLogUpdateOne) AddHintsUsed(v int) *PerformanceLogUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetConceptTags sets the "concept_tags" field.
func (_u *PerformanceLogUpdateOne) SetConceptTags(v []string) *PerformanceLogUpdateOne {
	_u.mutation.SetConceptTags(v)
	return _u
}

// AppendConceptTags appends value to the "concept_tags" field.
func (_u *PerformanceLogUpdateOne) AppendConceptTags(v []string) *PerformanceLogUpdateOne {
	_u.mutation.AppendConceptTags(v)
	return _u
}

// ClearConceptTags clears the value of the "concept_tags" field.
func (_u *PerformanceLogUpdateOne) ClearConceptTags() *PerformanceLogUpdateOne {
	_u.mutation.ClearConceptTags()
	return _u
}

// Mutation returns the PerformanceLogMutation object of the builder.
func (_u *PerformanceLogUpdateOne) Mutation() *PerformanceLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceLogUpdate builder.
func (_u *PerformanceLogUpdateOne) Where(ps ...predicate.PerformanceLog) *PerformanceLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceLogUpdateOne) Select(field string, fields ...string) *PerformanceLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceLog entity.
func (_u *PerformanceLogUpdateOne) Save(ctx context.Context) (*PerformanceLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceLogUpdateOne) SaveX(ctx context.Context) *PerformanceLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceLogUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleName(); ok {
		if err := performancelog.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.module_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := performancelog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := performancelog.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := performancelog.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := performancelog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := performancelog.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.hints_used": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceLogUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancelog.Table, performancelog.Columns, sqlgraph.NewFieldSpec(performancelog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancelog.FieldID)
		for _, f := range fields {
			if !performancelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancelog.FieldID {
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
		_spec.SetField(performancelog.FieldModuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(performancelog.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(performancelog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(performancelog.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(performancelog.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performancelog.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(performancelog.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(performancelog.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(performancelog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(performancelog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTags(); ok {
		_spec.SetField(performancelog.FieldConceptTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, performancelog.FieldConceptTags, value)
		})
	}
	if _u.mutation.ConceptTagsCleared() {
		_spec.ClearField(performancelog.FieldConceptTags, field.TypeJSON)
	}
	_node = &PerformanceLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
