// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/mergeevent"
)

// MergeEventCreate is the builder for creating a MergeEvent entity.
type MergeEventCreate struct {
	config
	mutation *MergeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MergeEventCreate) SetSequence(v int64) *MergeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MergeEventCreate) SetTimestamp(v time.Time) *MergeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillableTimestamp(v *time.Time) *MergeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *MergeEventCreate) SetLearnerID(v string) *MergeEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MergeEventCreate) SetSource(v string) *MergeEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *MergeEventCreate) SetVersion(v int) *MergeEventCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetGapCount sets the "gap_count" field.
func (_c *MergeEventCreate) SetGapCount(v int) *MergeEventCreate {
	_c.mutation.SetGapCount(v)
	return _c
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillableGapCount(v *int) *MergeEventCreate {
	if v != nil {
		_c.SetGapCount(*v)
	}
	return _c
}

// SetMasteredCount sets the "mastered_count" field.
func (_c *MergeEventCreate) SetMasteredCount(v int) *MergeEventCreate {
	_c.mutation.SetMasteredCount(v)
	return _c
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillableMasteredCount(v *int) *MergeEventCreate {
	if v != nil {
		_c.SetMasteredCount(*v)
	}
	return _c
}

// SetPrimaryGap sets the "primary_gap" field.
func (_c *MergeEventCreate) SetPrimaryGap(v string) *MergeEventCreate {
	_c.mutation.SetPrimaryGap(v)
	return _c
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillablePrimaryGap(v *string) *MergeEventCreate {
	if v != nil {
		_c.SetPrimaryGap(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MergeEventCreate) SetConfidence(v float64) *MergeEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillableConfidence(v *float64) *MergeEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// Mutation returns the MergeEventMutation object of the builder.
func (_c *MergeEventCreate) Mutation() *MergeEventMutation {
	return _c.mutation
}

// Save creates the MergeEvent in the database.
func (_c *MergeEventCreate) Save(ctx context.Context) (*MergeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergeEventCreate) SaveX(ctx context.Context) *MergeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mergeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.GapCount(); !ok {
		v := mergeevent.DefaultGapCount
		_c.mutation.SetGapCount(v)
	}
	if _, ok := _c.mutation.MasteredCount(); !ok {
		v := mergeevent.DefaultMasteredCount
		_c.mutation.SetMasteredCount(v)
	}
	if _, ok := _c.mutation.PrimaryGap(); !ok {
		v := mergeevent.DefaultPrimaryGap
		_c.mutation.SetPrimaryGap(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := mergeevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MergeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MergeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MergeEvent.learner_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MergeEvent.source"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MergeEvent.version"`)}
	}
	if _, ok := _c.mutation.GapCount(); !ok {
		return &ValidationError{Name: "gap_count", err: errors.New(`ent: missing required field "MergeEvent.gap_count"`)}
	}
	if _, ok := _c.mutation.MasteredCount(); !ok {
		return &ValidationError{Name: "mastered_count", err: errors.New(`ent: missing required field "MergeEvent.mastered_count"`)}
	}
	if _, ok := _c.mutation.PrimaryGap(); !ok {
		return &ValidationError{Name: "primary_gap", err: errors.New(`ent: missing required field "MergeEvent.primary_gap"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MergeEvent.confidence"`)}
	}
	return nil
}

func (_c *MergeEventCreate) sqlSave(ctx context.Context) (*MergeEvent, error) {
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

func (_c *MergeEventCreate) createSpec() (*MergeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MergeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergeevent.Table, sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(mergeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mergeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(mergeevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(mergeevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(mergeevent.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.GapCount(); ok {
		_spec.SetField(mergeevent.FieldGapCount, field.TypeInt, value)
		_node.GapCount = value
	}
	if value, ok := _c.mutation.MasteredCount(); ok {
		_spec.SetField(mergeevent.FieldMasteredCount, field.TypeInt, value)
		_node.MasteredCount = value
	}
	if value, ok := _c.mutation.PrimaryGap(); ok {
		_spec.SetField(mergeevent.FieldPrimaryGap, field.TypeString, value)
		_node.PrimaryGap = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(mergeevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// MergeEventCreateBulk is the builder for creating many MergeEvent entities in bulk.
type MergeEventCreateBulk struct {
	config
	err      error
	builders []*MergeEventCreate
}

// Save creates the MergeEvent entities in the database.
func (_c *MergeEventCreateBulk) Save(ctx context.Context) ([]*MergeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergeEventMutation)
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
func (_c *MergeEventCreateBulk) SaveX(ctx context.Context) []*MergeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
