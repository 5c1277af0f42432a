// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/predicate"
	"github.com/gapmapdev/gapmap/ent/profileversion"
)

// ProfileVersionUpdate is the builder for updating ProfileVersion entities.
type ProfileVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileVersionMutation
}

// Where appends a list predicates to the ProfileVersionUpdate builder.
func (_u *ProfileVersionUpdate) Where(ps ...predicate.ProfileVersion) *ProfileVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProfileVersionUpdate) SetLearnerID(v string) *ProfileVersionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableLearnerID(v *string) *ProfileVersionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileVersionUpdate) SetVersion(v int) *ProfileVersionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableVersion(v *int) *ProfileVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileVersionUpdate) AddVersion(v int) *ProfileVersionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTested sets the "tested" field.
func (_u *ProfileVersionUpdate) SetTested(v []string) *ProfileVersionUpdate {
	_u.mutation.SetTested(v)
	return _u
}

// AppendTested appends value to the "tested" field.
func (_u *ProfileVersionUpdate) AppendTested(v []string) *ProfileVersionUpdate {
	_u.mutation.AppendTested(v)
	return _u
}

// SetGap sets the "gap" field.
func (_u *ProfileVersionUpdate) SetGap(v []string) *ProfileVersionUpdate {
	_u.mutation.SetGap(v)
	return _u
}

// AppendGap appends value to the "gap" field.
func (_u *ProfileVersionUpdate) AppendGap(v []string) *ProfileVersionUpdate {
	_u.mutation.AppendGap(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *ProfileVersionUpdate) SetMastered(v []string) *ProfileVersionUpdate {
	_u.mutation.SetMastered(v)
	return _u
}

// AppendMastered appends value to the "mastered" field.
func (_u *ProfileVersionUpdate) AppendMastered(v []string) *ProfileVersionUpdate {
	_u.mutation.AppendMastered(v)
	return _u
}

// SetPrimaryGap sets the "primary_gap" field.
func (_u *ProfileVersionUpdate) SetPrimaryGap(v string) *ProfileVersionUpdate {
	_u.mutation.SetPrimaryGap(v)
	return _u
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillablePrimaryGap(v *string) *ProfileVersionUpdate {
	if v != nil {
		_u.SetPrimaryGap(*v)
	}
	return _u
}

// SetCascadeLabel sets the "cascade_label" field.
func (_u *ProfileVersionUpdate) SetCascadeLabel(v string) *ProfileVersionUpdate {
	_u.mutation.SetCascadeLabel(v)
	return _u
}

// SetNillableCascadeLabel sets the "cascade_label" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableCascadeLabel(v *string) *ProfileVersionUpdate {
	if v != nil {
		_u.SetCascadeLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProfileVersionUpdate) SetConfidence(v float64) *ProfileVersionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableConfidence(v *float64) *ProfileVersionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProfileVersionUpdate) AddConfidence(v float64) *ProfileVersionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ProfileVersionUpdate) SetSource(v string) *ProfileVersionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableSource(v *string) *ProfileVersionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileVersionUpdate) SetUpdatedAt(v time.Time) *ProfileVersionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProfileVersionUpdate) SetNillableUpdatedAt(v *time.Time) *ProfileVersionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProfileVersionMutation object of the builder.
func (_u *ProfileVersionUpdate) Mutation() *ProfileVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profileversion.Table, profileversion.Columns, sqlgraph.NewFieldSpec(profileversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(profileversion.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profileversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profileversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tested(); ok {
		_spec.SetField(profileversion.FieldTested, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTested(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldTested, value)
		})
	}
	if value, ok := _u.mutation.Gap(); ok {
		_spec.SetField(profileversion.FieldGap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldGap, value)
		})
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(profileversion.FieldMastered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMastered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldMastered, value)
		})
	}
	if value, ok := _u.mutation.PrimaryGap(); ok {
		_spec.SetField(profileversion.FieldPrimaryGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.CascadeLabel(); ok {
		_spec.SetField(profileversion.FieldCascadeLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(profileversion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(profileversion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(profileversion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profileversion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profileversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileVersionUpdateOne is the builder for updating a single ProfileVersion entity.
type ProfileVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileVersionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProfileVersionUpdateOne) SetLearnerID(v string) *ProfileVersionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableLearnerID(v *string) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileVersionUpdateOne) SetVersion(v int) *ProfileVersionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableVersion(v *int) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileVersionUpdateOne) AddVersion(v int) *ProfileVersionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTested sets the "tested" field.
func (_u *ProfileVersionUpdateOne) SetTested(v []string) *ProfileVersionUpdateOne {
	_u.mutation.SetTested(v)
	return _u
}

// AppendTested appends value to the "tested" field.
func (_u *ProfileVersionUpdateOne) AppendTested(v []string) *ProfileVersionUpdateOne {
	_u.mutation.AppendTested(v)
	return _u
}

// SetGap sets the "gap" field.
func (_u *ProfileVersionUpdateOne) SetGap(v []string) *ProfileVersionUpdateOne {
	_u.mutation.SetGap(v)
	return _u
}

// AppendGap appends value to the "gap" field.
func (_u *ProfileVersionUpdateOne) AppendGap(v []string) *ProfileVersionUpdateOne {
	_u.mutation.AppendGap(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *ProfileVersionUpdateOne) SetMastered(v []string) *ProfileVersionUpdateOne {
	_u.mutation.SetMastered(v)
	return _u
}

// AppendMastered appends value to the "mastered" field.
func (_u *ProfileVersionUpdateOne) AppendMastered(v []string) *ProfileVersionUpdateOne {
	_u.mutation.AppendMastered(v)
	return _u
}

// SetPrimaryGap sets the "primary_gap" field.
func (_u *ProfileVersionUpdateOne) SetPrimaryGap(v string) *ProfileVersionUpdateOne {
	_u.mutation.SetPrimaryGap(v)
	return _u
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillablePrimaryGap(v *string) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetPrimaryGap(*v)
	}
	return _u
}

// SetCascadeLabel sets the "cascade_label" field.
func (_u *ProfileVersionUpdateOne) SetCascadeLabel(v string) *ProfileVersionUpdateOne {
	_u.mutation.SetCascadeLabel(v)
	return _u
}

// SetNillableCascadeLabel sets the "cascade_label" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableCascadeLabel(v *string) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetCascadeLabel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProfileVersionUpdateOne) SetConfidence(v float64) *ProfileVersionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableConfidence(v *float64) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProfileVersionUpdateOne) AddConfidence(v float64) *ProfileVersionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ProfileVersionUpdateOne) SetSource(v string) *ProfileVersionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableSource(v *string) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileVersionUpdateOne) SetUpdatedAt(v time.Time) *ProfileVersionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProfileVersionUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProfileVersionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProfileVersionMutation object of the builder.
func (_u *ProfileVersionUpdateOne) Mutation() *ProfileVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileVersionUpdate builder.
func (_u *ProfileVersionUpdateOne) Where(ps ...predicate.ProfileVersion) *ProfileVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileVersionUpdateOne) Select(field string, fields ...string) *ProfileVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileVersion entity.
func (_u *ProfileVersionUpdateOne) Save(ctx context.Context) (*ProfileVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileVersionUpdateOne) SaveX(ctx context.Context) *ProfileVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileVersionUpdateOne) sqlSave(ctx context.Context) (_node *ProfileVersion, err error) {
	_spec := sqlgraph.NewUpdateSpec(profileversion.Table, profileversion.Columns, sqlgraph.NewFieldSpec(profileversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profileversion.FieldID)
		for _, f := range fields {
			if !profileversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profileversion.FieldID {
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
		_spec.SetField(profileversion.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profileversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profileversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tested(); ok {
		_spec.SetField(profileversion.FieldTested, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTested(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldTested, value)
		})
	}
	if value, ok := _u.mutation.Gap(); ok {
		_spec.SetField(profileversion.FieldGap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldGap, value)
		})
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(profileversion.FieldMastered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMastered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profileversion.FieldMastered, value)
		})
	}
	if value, ok := _u.mutation.PrimaryGap(); ok {
		_spec.SetField(profileversion.FieldPrimaryGap, field.TypeString, value)
	}
	if value, ok := _u.mutation.CascadeLabel(); ok {
		_spec.SetField(profileversion.FieldCascadeLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(profileversion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(profileversion.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(profileversion.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profileversion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProfileVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profileversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
