// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/classifierrequestevent"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ClassifierRequestEventDelete is the builder for deleting a ClassifierRequestEvent entity.
type ClassifierRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *ClassifierRequestEventMutation
}

// Where appends a list predicates to the ClassifierRequestEventDelete builder.
func (_d *ClassifierRequestEventDelete) Where(ps ...predicate.ClassifierRequestEvent) *ClassifierRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClassifierRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClassifierRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClassifierRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(classifierrequestevent.Table, sqlgraph.NewFieldSpec(classifierrequestevent.FieldID, field.TypeInt))
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

// ClassifierRequestEventDeleteOne is the builder for deleting a single ClassifierRequestEvent entity.
type ClassifierRequestEventDeleteOne struct {
	_d *ClassifierRequestEventDelete
}

// Where appends a list predicates to the ClassifierRequestEventDelete builder.
func (_d *ClassifierRequestEventDeleteOne) Where(ps ...predicate.ClassifierRequestEvent) *ClassifierRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClassifierRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{classifierrequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClassifierRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
