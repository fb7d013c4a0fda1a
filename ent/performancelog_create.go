// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpal/ent/performancelog"
)

// PerformanceLogCreate is the builder for creating a PerformanceLog entity.
type PerformanceLogCreate struct {
	config
	mutation *PerformanceLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PerformanceLogCreate) SetUserID(v string) *PerformanceLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleName sets the "module_name" field.
func (_c *PerformanceLogCreate) SetModuleName(v string) *PerformanceLogCreate {
	_c.mutation.SetModuleName(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PerformanceLogCreate) SetTimestamp(v time.Time) *PerformanceLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PerformanceLogCreate) SetNillableTimestamp(v *time.Time) *PerformanceLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PerformanceLogCreate) SetSessionID(v string) *PerformanceLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *PerformanceLogCreate) SetQuestionType(v string) *PerformanceLogCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *PerformanceLogCreate) SetIsCorrect(v bool) *PerformanceLogCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *PerformanceLogCreate) SetResponseTimeMs(v int64) *PerformanceLogCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PerformanceLogCreate) SetDifficulty(v string) *PerformanceLogCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *PerformanceLogCreate) SetHintsUsed(v int) *PerformanceLogCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *PerformanceLogCreate) SetNillableHintsUsed(v *int) *PerformanceLogCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetConceptTags sets the "concept_tags" field.
func (_c *PerformanceLogCreate) SetConceptTags(v []string) *PerformanceLogCreate {
	_c.mutation.SetConceptTags(v)
	return _c
}

// Mutation returns the PerformanceLogMutation object of the builder.
func (_c *PerformanceLogCreate) Mutation() *PerformanceLogMutation {
	return _c.mutation
}

// Save creates the PerformanceLog in the database.
func (_c *PerformanceLogCreate) Save(ctx context.Context) (*PerformanceLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceLogCreate) SaveX(ctx context.Context) *PerformanceLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := performancelog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := performancelog.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PerformanceLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := performancelog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "PerformanceLog.module_name"`)}
	}
	if v, ok := _c.mutation.ModuleName(); ok {
		if err := performancelog.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.module_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PerformanceLog.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PerformanceLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := performancelog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "PerformanceLog.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := performancelog.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "PerformanceLog.is_correct"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "PerformanceLog.response_time_ms"`)}
	}
	if v, ok := _c.mutation.ResponseTimeMs(); ok {
		if err := performancelog.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.response_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PerformanceLog.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := performancelog.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "PerformanceLog.hints_used"`)}
	}
	if v, ok := _c.mutation.HintsUsed(); ok {
		if err := performancelog.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "PerformanceLog.hints_used": %w`, err)}
		}
	}
	return nil
}

func (_c *PerformanceLogCreate) sqlSave(ctx context.Context) (*PerformanceLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PerformanceLogCreate) createSpec() (*PerformanceLog, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancelog.Table, sqlgraph.NewFieldSpec(performancelog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(performancelog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleName(); ok {
		_spec.SetField(performancelog.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(performancelog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(performancelog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(performancelog.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(performancelog.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performancelog.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(performancelog.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(performancelog.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.ConceptTags(); ok {
		_spec.SetField(performancelog.FieldConceptTags, field.TypeJSON, value)
		_node.ConceptTags = value
	}
	return _node, _spec
}

// PerformanceLogCreateBulk is the builder for creating many PerformanceLog entities in bulk.
type PerformanceLogCreateBulk struct {
	config
	err      error
	builders []*PerformanceLogCreate
}

// Save creates the PerformanceLog entities in the database.
func (_c *PerformanceLogCreateBulk) Save(ctx context.Context) ([]*PerformanceLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PerformanceLogCreateBulk) SaveX(ctx context.Context) []*PerformanceLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
