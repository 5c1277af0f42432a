// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/mergeevent"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// MergeEventUpdate is the builder for updating MergeEvent entities.
type MergeEventUpdate struct {
	config
	hooks    []Hook
	mutation *MergeEventMutation
}

// Where appends a list predicates to the MergeEventUpdate builder.
func (_u *MergeEventUpdate) Where(ps ...predicate.MergeEvent) *MergeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MergeEventUpdate) SetLearnerID(v string) *MergeEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableLearnerID(v *string) *MergeEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MergeEventUpdate) SetSource(v string) *MergeEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableSource(v *string) *MergeEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *MergeEventUpdate) SetVersion(v int) *MergeEventUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableVersion(v *int) *MergeEventUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MergeEventUpdate) AddVersion(v int) *MergeEventUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *MergeEventUpdate) SetGapCount(v int) *MergeEventUpdate {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableGapCount(v *int) *MergeEventUpdate {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *MergeEventUpdate) AddGapCount(v int) *MergeEventUpdate {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *MergeEventUpdate) SetMasteredCount(v int) *MergeEventUpdate {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableMasteredCount(v *int) *MergeEventUpdate {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *MergeEventUpdate) AddMasteredCount(v int) *MergeEventUpdate {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetPrimaryGap sets the "primary_gap" field.
func (_u *MergeEventUpdate) SetPrimaryGap(v string) *MergeEventUpdate {
	_u.mutation.SetPrimaryGap(v)
	return _u
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillablePrimaryGap(v *string) *MergeEventUpdate {
	if v != nil {
		_u.SetPrimaryGap(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MergeEventUpdate) SetConfidence(v float64) *MergeEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MergeEventUpdate) SetNillableConfidence(v *float64) *MergeEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MergeEventUpdate) AddConfidence(v float64) *MergeEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the MergeEventMutation object of the builder.
func (_u *MergeEventUpdate) Mutation() *MergeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MergeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mergeevent.Table, mergeevent.Columns, sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(mergeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mergeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(mergeevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(mergeevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(mergeevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(mergeevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(mergeevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(mergeevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrimaryGap(); ok {
		_spec.SetField(mergeevent.FieldPrimaryGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mergeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mergeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergeEventUpdateOne is the builder for updating a single MergeEvent entity.
type MergeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergeEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MergeEventUpdateOne) SetLearnerID(v string) *MergeEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableLearnerID(v *string) *MergeEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MergeEventUpdateOne) SetSource(v string) *MergeEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableSource(v *string) *MergeEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *MergeEventUpdateOne) SetVersion(v int) *MergeEventUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableVersion(v *int) *MergeEventUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MergeEventUpdateOne) AddVersion(v int) *MergeEventUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetGapCount sets the "gap_count" field.
func (_u *MergeEventUpdateOne) SetGapCount(v int) *MergeEventUpdateOne {
	_u.mutation.ResetGapCount()
	_u.mutation.SetGapCount(v)
	return _u
}

// SetNillableGapCount sets the "gap_count" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableGapCount(v *int) *MergeEventUpdateOne {
	if v != nil {
		_u.SetGapCount(*v)
	}
	return _u
}

// AddGapCount adds value to the "gap_count" field.
func (_u *MergeEventUpdateOne) AddGapCount(v int) *MergeEventUpdateOne {
	_u.mutation.AddGapCount(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *MergeEventUpdateOne) SetMasteredCount(v int) *MergeEventUpdateOne {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableMasteredCount(v *int) *MergeEventUpdateOne {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *MergeEventUpdateOne) AddMasteredCount(v int) *MergeEventUpdateOne {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetPrimaryGap sets the "primary_gap" field.
func (_u *MergeEventUpdateOne) SetPrimaryGap(v string) *MergeEventUpdateOne {
	_u.mutation.SetPrimaryGap(v)
	return _u
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillablePrimaryGap(v *string) *MergeEventUpdateOne {
	if v != nil {
		_u.SetPrimaryGap(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MergeEventUpdateOne) SetConfidence(v float64) *MergeEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MergeEventUpdateOne) SetNillableConfidence(v *float64) *MergeEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MergeEventUpdateOne) AddConfidence(v float64) *MergeEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the MergeEventMutation object of the builder.
func (_u *MergeEventUpdateOne) Mutation() *MergeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MergeEventUpdate builder.
func (_u *MergeEventUpdateOne) Where(ps ...predicate.MergeEvent) *MergeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergeEventUpdateOne) Select(field string, fields ...string) *MergeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergeEvent entity.
func (_u *MergeEventUpdateOne) Save(ctx context.Context) (*MergeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeEventUpdateOne) SaveX(ctx context.Context) *MergeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MergeEventUpdateOne) sqlSave(ctx context.Context) (_node *MergeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(mergeevent.Table, mergeevent.Columns, sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergeevent.FieldID)
		for _, f := range fields {
			if !mergeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergeevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(mergeevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mergeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(mergeevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(mergeevent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GapCount(); ok {
		_spec.SetField(mergeevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapCount(); ok {
		_spec.AddField(mergeevent.FieldGapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(mergeevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(mergeevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrimaryGap(); ok {
		_spec.SetField(mergeevent.FieldPrimaryGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mergeevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mergeevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &MergeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
