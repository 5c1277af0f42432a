// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/probeevent"
)

// ProbeEventCreate is the builder for creating a ProbeEvent entity.
type ProbeEventCreate struct {
	config
	mutation *ProbeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProbeEventCreate) SetSequence(v int64) *ProbeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProbeEventCreate) SetTimestamp(v time.Time) *ProbeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProbeEventCreate) SetNillableTimestamp(v *time.Time) *ProbeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProbeEventCreate) SetSessionID(v string) *ProbeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ProbeEventCreate) SetLearnerID(v string) *ProbeEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetNodeCode sets the "node_code" field.
func (_c *ProbeEventCreate) SetNodeCode(v string) *ProbeEventCreate {
	_c.mutation.SetNodeCode(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *ProbeEventCreate) SetPhase(v string) *ProbeEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ProbeEventCreate) SetOutcome(v string) *ProbeEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProbeEventCreate) SetConfidence(v float64) *ProbeEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProbeEventCreate) SetNillableConfidence(v *float64) *ProbeEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetMisconception sets the "misconception" field.
func (_c *ProbeEventCreate) SetMisconception(v string) *ProbeEventCreate {
	_c.mutation.SetMisconception(v)
	return _c
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_c *ProbeEventCreate) SetNillableMisconception(v *string) *ProbeEventCreate {
	if v != nil {
		_c.SetMisconception(*v)
	}
	return _c
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_c *ProbeEventCreate) Mutation() *ProbeEventMutation {
	return _c.mutation
}

// Save creates the ProbeEvent in the database.
func (_c *ProbeEventCreate) Save(ctx context.Context) (*ProbeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProbeEventCreate) SaveX(ctx context.Context) *ProbeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProbeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := probeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := probeevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Misconception(); !ok {
		v := probeevent.DefaultMisconception
		_c.mutation.SetMisconception(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProbeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProbeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProbeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProbeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ProbeEvent.learner_id"`)}
	}
	if _, ok := _c.mutation.NodeCode(); !ok {
		return &ValidationError{Name: "node_code", err: errors.New(`ent: missing required field "ProbeEvent.node_code"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "ProbeEvent.phase"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ProbeEvent.outcome"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ProbeEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Misconception(); !ok {
		return &ValidationError{Name: "misconception", err: errors.New(`ent: missing required field "ProbeEvent.misconception"`)}
	}
	return nil
}

func (_c *ProbeEventCreate) sqlSave(ctx context.Context) (*ProbeEvent, error) {
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

func (_c *ProbeEventCreate) createSpec() (*ProbeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProbeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(probeevent.Table, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(probeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(probeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(probeevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.NodeCode(); ok {
		_spec.SetField(probeevent.FieldNodeCode, field.TypeString, value)
		_node.NodeCode = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(probeevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(probeevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(probeevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Misconception(); ok {
		_spec.SetField(probeevent.FieldMisconception, field.TypeString, value)
		_node.Misconception = value
	}
	return _node, _spec
}

// ProbeEventCreateBulk is the builder for creating many ProbeEvent entities in bulk.
type ProbeEventCreateBulk struct {
	config
	err      error
	builders []*ProbeEventCreate
}

// Save creates the ProbeEvent entities in the database.
func (_c *ProbeEventCreateBulk) Save(ctx context.Context) ([]*ProbeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProbeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProbeEventMutation)
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
func (_c *ProbeEventCreateBulk) SaveX(ctx context.Context) []*ProbeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProbeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProbeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
