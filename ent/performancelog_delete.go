// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpal/ent/performancelog"
	"github.com/abhisek/mathpal/ent/predicate"
)

// PerformanceLogDelete is the builder for deleting a PerformanceLog entity.
type PerformanceLogDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceLogMutation
}

// Where appends a list predicates to the PerformanceLogDelete builder.
func (_d *PerformanceLogDelete) Where(ps ...predicate.PerformanceLog) *PerformanceLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PerformanceLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PerformanceLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancelog.Table, sqlgraph.NewFieldSpec(performancelog.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PerformanceLogDeleteOne is the builder for deleting a single PerformanceLog entity.
type PerformanceLogDeleteOne struct {
	_d *PerformanceLogDelete
}

// Where appends a list predicates to the PerformanceLogDelete builder.
func (_d *PerformanceLogDeleteOne) Where(ps ...predicate.PerformanceLog) *PerformanceLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PerformanceLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancelog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
