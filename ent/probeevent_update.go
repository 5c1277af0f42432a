// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/predicate"
	"github.com/gapmapdev/gapmap/ent/probeevent"
)

// ProbeEventUpdate is the builder for updating ProbeEvent entities.
type ProbeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProbeEventMutation
}

// Where appends a list predicates to the ProbeEventUpdate builder.
func (_u *ProbeEventUpdate) Where(ps ...predicate.ProbeEvent) *ProbeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProbeEventUpdate) SetSessionID(v string) *ProbeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableSessionID(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProbeEventUpdate) SetLearnerID(v string) *ProbeEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableLearnerID(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetNodeCode sets the "node_code" field.
func (_u *ProbeEventUpdate) SetNodeCode(v string) *ProbeEventUpdate {
	_u.mutation.SetNodeCode(v)
	return _u
}

// SetNillableNodeCode sets the "node_code" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableNodeCode(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetNodeCode(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ProbeEventUpdate) SetPhase(v string) *ProbeEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillablePhase(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProbeEventUpdate) SetOutcome(v string) *ProbeEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableOutcome(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProbeEventUpdate) SetConfidence(v float64) *ProbeEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableConfidence(v *float64) *ProbeEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProbeEventUpdate) AddConfidence(v float64) *ProbeEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *ProbeEventUpdate) SetMisconception(v string) *ProbeEventUpdate {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *ProbeEventUpdate) SetNillableMisconception(v *string) *ProbeEventUpdate {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_u *ProbeEventUpdate) Mutation() *ProbeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProbeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProbeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProbeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(probeevent.Table, probeevent.Columns, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(probeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeCode(); ok {
		_spec.SetField(probeevent.FieldNodeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(probeevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(probeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(probeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(probeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(probeevent.FieldMisconception, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProbeEventUpdateOne is the builder for updating a single ProbeEvent entity.
type ProbeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProbeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ProbeEventUpdateOne) SetSessionID(v string) *ProbeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableSessionID(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProbeEventUpdateOne) SetLearnerID(v string) *ProbeEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableLearnerID(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetNodeCode sets the "node_code" field.
func (_u *ProbeEventUpdateOne) SetNodeCode(v string) *ProbeEventUpdateOne {
	_u.mutation.SetNodeCode(v)
	return _u
}

// SetNillableNodeCode sets the "node_code" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableNodeCode(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetNodeCode(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ProbeEventUpdateOne) SetPhase(v string) *ProbeEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillablePhase(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProbeEventUpdateOne) SetOutcome(v string) *ProbeEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableOutcome(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProbeEventUpdateOne) SetConfidence(v float64) *ProbeEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableConfidence(v *float64) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProbeEventUpdateOne) AddConfidence(v float64) *ProbeEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *ProbeEventUpdateOne) SetMisconception(v string) *ProbeEventUpdateOne {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *ProbeEventUpdateOne) SetNillableMisconception(v *string) *ProbeEventUpdateOne {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// Mutation returns the ProbeEventMutation object of the builder.
func (_u *ProbeEventUpdateOne) Mutation() *ProbeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProbeEventUpdate builder.
func (_u *ProbeEventUpdateOne) Where(ps ...predicate.ProbeEvent) *ProbeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProbeEventUpdateOne) Select(field string, fields ...string) *ProbeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProbeEvent entity.
func (_u *ProbeEventUpdateOne) Save(ctx context.Context) (*ProbeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProbeEventUpdateOne) SaveX(ctx context.Context) *ProbeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProbeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProbeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProbeEventUpdateOne) sqlSave(ctx context.Context) (_node *ProbeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(probeevent.Table, probeevent.Columns, sqlgraph.NewFieldSpec(probeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProbeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, probeevent.FieldID)
		for _, f := range fields {
			if !probeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != probeevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(probeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(probeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeCode(); ok {
		_spec.SetField(probeevent.FieldNodeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(probeevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(probeevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(probeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(probeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(probeevent.FieldMisconception, field.TypeString, value)
	}
	_node = &ProbeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{probeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
