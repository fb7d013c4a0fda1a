// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpal/ent/progress"
	"github.com/abhisek/mathpal/ent/schema"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressCreate) SetUserID(v string) *ProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleName sets the "module_name" field.
func (_c *ProgressCreate) SetModuleName(v string) *ProgressCreate {
	_c.mutation.SetModuleName(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProgressCreate) SetTimestamp(v time.Time) *ProgressCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTimestamp(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAccuracyPct sets the "accuracy_pct" field.
func (_c *ProgressCreate) SetAccuracyPct(v int) *ProgressCreate {
	_c.mutation.SetAccuracyPct(v)
	return _c
}

// SetNillableAccuracyPct sets the "accuracy_pct" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableAccuracyPct(v *int) *ProgressCreate {
	if v != nil {
		_c.SetAccuracyPct(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ProgressCreate) SetMasteryLevel(v string) *ProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableMasteryLevel(v *string) *ProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetCompletedSessions sets the "completed_sessions" field.
func (_c *ProgressCreate) SetCompletedSessions(v int) *ProgressCreate {
	_c.mutation.SetCompletedSessions(v)
	return _c
}

// SetNillableCompletedSessions sets the "completed_sessions" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCompletedSessions(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCompletedSessions(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ProgressCreate) SetTotalQuestions(v int) *ProgressCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTotalQuestions(v *int) *ProgressCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ProgressCreate) SetCorrectAnswers(v int) *ProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCorrectAnswers(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_c *ProgressCreate) SetCurrentDifficulty(v string) *ProgressCreate {
	_c.mutation.SetCurrentDifficulty(v)
	return _c
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCurrentDifficulty(v *string) *ProgressCreate {
	if v != nil {
		_c.SetCurrentDifficulty(*v)
	}
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *ProgressCreate) SetStrengths(v []schema.ConceptStat) *ProgressCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *ProgressCreate) SetWeakAreas(v []schema.ConceptStat) *ProgressCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetAverageResponseMs sets the "average_response_ms" field.
func (_c *ProgressCreate) SetAverageResponseMs(v float64) *ProgressCreate {
	_c.mutation.SetAverageResponseMs(v)
	return _c
}

// SetNillableAverageResponseMs sets the "average_response_ms" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableAverageResponseMs(v *float64) *ProgressCreate {
	if v != nil {
		_c.SetAverageResponseMs(*v)
	}
	return _c
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_c *ProgressCreate) SetTotalTimeSecs(v int) *ProgressCreate {
	_c.mutation.SetTotalTimeSecs(v)
	return _c
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTotalTimeSecs(v *int) *ProgressCreate {
	if v != nil {
		_c.SetTotalTimeSecs(*v)
	}
	return _c
}

// SetLastSessionAt sets the "last_session_at" field.
func (_c *ProgressCreate) SetLastSessionAt(v time.Time) *ProgressCreate {
	_c.mutation.SetLastSessionAt(v)
	return _c
}

// SetNillableLastSessionAt sets the "last_session_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastSessionAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetLastSessionAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := progress.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AccuracyPct(); !ok {
		v := progress.DefaultAccuracyPct
		_c.mutation.SetAccuracyPct(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := progress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.CompletedSessions(); !ok {
		v := progress.DefaultCompletedSessions
		_c.mutation.SetCompletedSessions(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := progress.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := progress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		v := progress.DefaultCurrentDifficulty
		_c.mutation.SetCurrentDifficulty(v)
	}
	if _, ok := _c.mutation.AverageResponseMs(); !ok {
		v := progress.DefaultAverageResponseMs
		_c.mutation.SetAverageResponseMs(v)
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		v := progress.DefaultTotalTimeSecs
		_c.mutation.SetTotalTimeSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Progress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleName(); !ok {
		return &ValidationError{Name: "module_name", err: errors.New(`ent: missing required field "Progress.module_name"`)}
	}
	if v, ok := _c.mutation.ModuleName(); ok {
		if err := progress.ModuleNameValidator(v); err != nil {
			return &ValidationError{Name: "module_name", err: fmt.Errorf(`ent: validator failed for field "Progress.module_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Progress.timestamp"`)}
	}
	if _, ok := _c.mutation.AccuracyPct(); !ok {
		return &ValidationError{Name: "accuracy_pct", err: errors.New(`ent: missing required field "Progress.accuracy_pct"`)}
	}
	if v, ok := _c.mutation.AccuracyPct(); ok {
		if err := progress.AccuracyPctValidator(v); err != nil {
			return &ValidationError{Name: "accuracy_pct", err: fmt.Errorf(`ent: validator failed for field "Progress.accuracy_pct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "Progress.mastery_level"`)}
	}
	if _, ok := _c.mutation.CompletedSessions(); !ok {
		return &ValidationError{Name: "completed_sessions", err: errors.New(`ent: missing required field "Progress.completed_sessions"`)}
	}
	if v, ok := _c.mutation.CompletedSessions(); ok {
		if err := progress.CompletedSessionsValidator(v); err != nil {
			return &ValidationError{Name: "completed_sessions", err: fmt.Errorf(`ent: validator failed for field "Progress.completed_sessions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Progress.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := progress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "Progress.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "Progress.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := progress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		return &ValidationError{Name: "current_difficulty", err: errors.New(`ent: missing required field "Progress.current_difficulty"`)}
	}
	if _, ok := _c.mutation.AverageResponseMs(); !ok {
		return &ValidationError{Name: "average_response_ms", err: errors.New(`ent: missing required field "Progress.average_response_ms"`)}
	}
	if v, ok := _c.mutation.AverageResponseMs(); ok {
		if err := progress.AverageResponseMsValidator(v); err != nil {
			return &ValidationError{Name: "average_response_ms", err: fmt.Errorf(`ent: validator failed for field "Progress.average_response_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		return &ValidationError{Name: "total_time_secs", err: errors.New(`ent: missing required field "Progress.total_time_secs"`)}
	}
	if v, ok := _c.mutation.TotalTimeSecs(); ok {
		if err := progress.TotalTimeSecsValidator(v); err != nil {
			return &ValidationError{Name: "total_time_secs", err: fmt.Errorf(`ent: validator failed for field "Progress.total_time_secs": %w`, err)}
		}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleName(); ok {
		_spec.SetField(progress.FieldModuleName, field.TypeString, value)
		_node.ModuleName = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(progress.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AccuracyPct(); ok {
		_spec.SetField(progress.FieldAccuracyPct, field.TypeInt, value)
		_node.AccuracyPct = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(progress.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.CompletedSessions(); ok {
		_spec.SetField(progress.FieldCompletedSessions, field.TypeInt, value)
		_node.CompletedSessions = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(progress.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
		_node.CurrentDifficulty = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(progress.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(progress.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.AverageResponseMs(); ok {
		_spec.SetField(progress.FieldAverageResponseMs, field.TypeFloat64, value)
		_node.AverageResponseMs = value
	}
	if value, ok := _c.mutation.TotalTimeSecs(); ok {
		_spec.SetField(progress.FieldTotalTimeSecs, field.TypeInt, value)
		_node.TotalTimeSecs = value
	}
	if value, ok := _c.mutation.LastSessionAt(); ok {
		_spec.SetField(progress.FieldLastSessionAt, field.TypeTime, value)
		_node.LastSessionAt = &value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
