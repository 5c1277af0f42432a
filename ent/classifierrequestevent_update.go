// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/classifierrequestevent"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ClassifierRequestEventUpdate is the builder for updating ClassifierRequestEvent entities.
type ClassifierRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *ClassifierRequestEventMutation
}

// Where appends a list predicates to the ClassifierRequestEventUpdate builder.
func (_u *ClassifierRequestEventUpdate) Where(ps ...predicate.ClassifierRequestEvent) *ClassifierRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *ClassifierRequestEventUpdate) SetModel(v string) *ClassifierRequestEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdate) SetNillableModel(v *string) *ClassifierRequestEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetNodeCode sets the "node_code" field.
func (_u *ClassifierRequestEventUpdate) SetNodeCode(v string) *ClassifierRequestEventUpdate {
	_u.mutation.SetNodeCode(v)
	return _u
}

// SetNillableNodeCode sets the "node_code" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdate) SetNillableNodeCode(v *string) *ClassifierRequestEventUpdate {
	if v != nil {
		_u.SetNodeCode(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ClassifierRequestEventUpdate) SetLatencyMs(v int64) *ClassifierRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdate) SetNillableLatencyMs(v *int64) *ClassifierRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ClassifierRequestEventUpdate) AddLatencyMs(v int64) *ClassifierRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ClassifierRequestEventUpdate) SetSuccess(v bool) *ClassifierRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdate) SetNillableSuccess(v *bool) *ClassifierRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ClassifierRequestEventUpdate) SetErrorMessage(v string) *ClassifierRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdate) SetNillableErrorMessage(v *string) *ClassifierRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ClassifierRequestEventMutation object of the builder.
func (_u *ClassifierRequestEventUpdate) Mutation() *ClassifierRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassifierRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassifierRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassifierRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassifierRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClassifierRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(classifierrequestevent.Table, classifierrequestevent.Columns, sqlgraph.NewFieldSpec(classifierrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(classifierrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeCode(); ok {
		_spec.SetField(classifierrequestevent.FieldNodeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(classifierrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(classifierrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(classifierrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(classifierrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classifierrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassifierRequestEventUpdateOne is the builder for updating a single ClassifierRequestEvent entity.
type ClassifierRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassifierRequestEventMutation
}

// SetModel sets the "model" field.
func (_u *ClassifierRequestEventUpdateOne) SetModel(v string) *ClassifierRequestEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdateOne) SetNillableModel(v *string) *ClassifierRequestEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetNodeCode sets the "node_code" field.
func (_u *ClassifierRequestEventUpdateOne) SetNodeCode(v string) *ClassifierRequestEventUpdateOne {
	_u.mutation.SetNodeCode(v)
	return _u
}

// SetNillableNodeCode sets the "node_code" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdateOne) SetNillableNodeCode(v *string) *ClassifierRequestEventUpdateOne {
	if v != nil {
		_u.SetNodeCode(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ClassifierRequestEventUpdateOne) SetLatencyMs(v int64) *ClassifierRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *ClassifierRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ClassifierRequestEventUpdateOne) AddLatencyMs(v int64) *ClassifierRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ClassifierRequestEventUpdateOne) SetSuccess(v bool) *ClassifierRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdateOne) SetNillableSuccess(v *bool) *ClassifierRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ClassifierRequestEventUpdateOne) SetErrorMessage(v string) *ClassifierRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ClassifierRequestEventUpdateOne) SetNillableErrorMessage(v *string) *ClassifierRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ClassifierRequestEventMutation object of the builder.
func (_u *ClassifierRequestEventUpdateOne) Mutation() *ClassifierRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClassifierRequestEventUpdate builder.
func (_u *ClassifierRequestEventUpdateOne) Where(ps ...predicate.ClassifierRequestEvent) *ClassifierRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassifierRequestEventUpdateOne) Select(field string, fields ...string) *ClassifierRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClassifierRequestEvent entity.
func (_u *ClassifierRequestEventUpdateOne) Save(ctx context.Context) (*ClassifierRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassifierRequestEventUpdateOne) SaveX(ctx context.Context) *ClassifierRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassifierRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassifierRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClassifierRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *ClassifierRequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(classifierrequestevent.Table, classifierrequestevent.Columns, sqlgraph.NewFieldSpec(classifierrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClassifierRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classifierrequestevent.FieldID)
		for _, f := range fields {
			if !classifierrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classifierrequestevent.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(classifierrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeCode(); ok {
		_spec.SetField(classifierrequestevent.FieldNodeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(classifierrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(classifierrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(classifierrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(classifierrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &ClassifierRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classifierrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
