// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/classifierrequestevent"
)

// ClassifierRequestEventCreate is the builder for creating a ClassifierRequestEvent entity.
type ClassifierRequestEventCreate struct {
	config
	mutation *ClassifierRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ClassifierRequestEventCreate) SetSequence(v int64) *ClassifierRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ClassifierRequestEventCreate) SetTimestamp(v time.Time) *ClassifierRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ClassifierRequestEventCreate) SetNillableTimestamp(v *time.Time) *ClassifierRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ClassifierRequestEventCreate) SetModel(v string) *ClassifierRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNodeCode sets the "node_code" field.
func (_c *ClassifierRequestEventCreate) SetNodeCode(v string) *ClassifierRequestEventCreate {
	_c.mutation.SetNodeCode(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ClassifierRequestEventCreate) SetLatencyMs(v int64) *ClassifierRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ClassifierRequestEventCreate) SetNillableLatencyMs(v *int64) *ClassifierRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ClassifierRequestEventCreate) SetSuccess(v bool) *ClassifierRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ClassifierRequestEventCreate) SetErrorMessage(v string) *ClassifierRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ClassifierRequestEventCreate) SetNillableErrorMessage(v *string) *ClassifierRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the ClassifierRequestEventMutation object of the builder.
func (_c *ClassifierRequestEventCreate) Mutation() *ClassifierRequestEventMutation {
	return _c.mutation
}

// Save creates the ClassifierRequestEvent in the database.
func (_c *ClassifierRequestEventCreate) Save(ctx context.Context) (*ClassifierRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassifierRequestEventCreate) SaveX(ctx context.Context) *ClassifierRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassifierRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassifierRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassifierRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := classifierrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := classifierrequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := classifierrequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassifierRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ClassifierRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ClassifierRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ClassifierRequestEvent.model"`)}
	}
	if _, ok := _c.mutation.NodeCode(); !ok {
		return &ValidationError{Name: "node_code", err: errors.New(`ent: missing required field "ClassifierRequestEvent.node_code"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ClassifierRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ClassifierRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "ClassifierRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *ClassifierRequestEventCreate) sqlSave(ctx context.Context) (*ClassifierRequestEvent, error) {
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

func (_c *ClassifierRequestEventCreate) createSpec() (*ClassifierRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ClassifierRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classifierrequestevent.Table, sqlgraph.NewFieldSpec(classifierrequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(classifierrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(classifierrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(classifierrequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.NodeCode(); ok {
		_spec.SetField(classifierrequestevent.FieldNodeCode, field.TypeString, value)
		_node.NodeCode = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(classifierrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(classifierrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(classifierrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// ClassifierRequestEventCreateBulk is the builder for creating many ClassifierRequestEvent entities in bulk.
type ClassifierRequestEventCreateBulk struct {
	config
	err      error
	builders []*ClassifierRequestEventCreate
}

// Save creates the ClassifierRequestEvent entities in the database.
func (_c *ClassifierRequestEventCreateBulk) Save(ctx context.Context) ([]*ClassifierRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClassifierRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassifierRequestEventMutation)
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
func (_c *ClassifierRequestEventCreateBulk) SaveX(ctx context.Context) []*ClassifierRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassifierRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassifierRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
