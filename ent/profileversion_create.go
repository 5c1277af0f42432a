// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gapmapdev/gapmap/ent/profileversion"
)

// ProfileVersionCreate is the builder for creating a ProfileVersion entity.
type ProfileVersionCreate struct {
	config
	mutation *ProfileVersionMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ProfileVersionCreate) SetLearnerID(v string) *ProfileVersionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProfileVersionCreate) SetVersion(v int) *ProfileVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetTested sets the "tested" field.
func (_c *ProfileVersionCreate) SetTested(v []string) *ProfileVersionCreate {
	_c.mutation.SetTested(v)
	return _c
}

// SetGap sets the "gap" field.
func (_c *ProfileVersionCreate) SetGap(v []string) *ProfileVersionCreate {
	_c.mutation.SetGap(v)
	return _c
}

// SetMastered sets the "mastered" field.
func (_c *ProfileVersionCreate) SetMastered(v []string) *ProfileVersionCreate {
	_c.mutation.SetMastered(v)
	return _c
}

// SetPrimaryGap sets the "primary_gap" field.
func (_c *ProfileVersionCreate) SetPrimaryGap(v string) *ProfileVersionCreate {
	_c.mutation.SetPrimaryGap(v)
	return _c
}

// SetNillablePrimaryGap sets the "primary_gap" field if the given value is not nil.
func (_c *ProfileVersionCreate) SetNillablePrimaryGap(v *string) *ProfileVersionCreate {
	if v != nil {
		_c.SetPrimaryGap(*v)
	}
	return _c
}

// SetCascadeLabel sets the "cascade_label" field.
func (_c *ProfileVersionCreate) SetCascadeLabel(v string) *ProfileVersionCreate {
	_c.mutation.SetCascadeLabel(v)
	return _c
}

// SetNillableCascadeLabel sets the "cascade_label" field if the given value is not nil.
func (_c *ProfileVersionCreate) SetNillableCascadeLabel(v *string) *ProfileVersionCreate {
	if v != nil {
		_c.SetCascadeLabel(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProfileVersionCreate) SetConfidence(v float64) *ProfileVersionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProfileVersionCreate) SetNillableConfidence(v *float64) *ProfileVersionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ProfileVersionCreate) SetSource(v string) *ProfileVersionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileVersionCreate) SetUpdatedAt(v time.Time) *ProfileVersionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileVersionCreate) SetNillableUpdatedAt(v *time.Time) *ProfileVersionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileVersionMutation object of the builder.
func (_c *ProfileVersionCreate) Mutation() *ProfileVersionMutation {
	return _c.mutation
}

// Save creates the ProfileVersion in the database.
func (_c *ProfileVersionCreate) Save(ctx context.Context) (*ProfileVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileVersionCreate) SaveX(ctx context.Context) *ProfileVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileVersionCreate) defaults() {
	if _, ok := _c.mutation.PrimaryGap(); !ok {
		v := profileversion.DefaultPrimaryGap
		_c.mutation.SetPrimaryGap(v)
	}
	if _, ok := _c.mutation.CascadeLabel(); !ok {
		v := profileversion.DefaultCascadeLabel
		_c.mutation.SetCascadeLabel(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := profileversion.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profileversion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileVersionCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ProfileVersion.learner_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProfileVersion.version"`)}
	}
	if _, ok := _c.mutation.Tested(); !ok {
		return &ValidationError{Name: "tested", err: errors.New(`ent: missing required field "ProfileVersion.tested"`)}
	}
	if _, ok := _c.mutation.Gap(); !ok {
		return &ValidationError{Name: "gap", err: errors.New(`ent: missing required field "ProfileVersion.gap"`)}
	}
	if _, ok := _c.mutation.Mastered(); !ok {
		return &ValidationError{Name: "mastered", err: errors.New(`ent: missing required field "ProfileVersion.mastered"`)}
	}
	if _, ok := _c.mutation.PrimaryGap(); !ok {
		return &ValidationError{Name: "primary_gap", err: errors.New(`ent: missing required field "ProfileVersion.primary_gap"`)}
	}
	if _, ok := _c.mutation.CascadeLabel(); !ok {
		return &ValidationError{Name: "cascade_label", err: errors.New(`ent: missing required field "ProfileVersion.cascade_label"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ProfileVersion.confidence"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ProfileVersion.source"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProfileVersion.updated_at"`)}
	}
	return nil
}

func (_c *ProfileVersionCreate) sqlSave(ctx context.Context) (*ProfileVersion, error) {
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

func (_c *ProfileVersionCreate) createSpec() (*ProfileVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profileversion.Table, sqlgraph.NewFieldSpec(profileversion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(profileversion.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(profileversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Tested(); ok {
		_spec.SetField(profileversion.FieldTested, field.TypeJSON, value)
		_node.Tested = value
	}
	if value, ok := _c.mutation.Gap(); ok {
		_spec.SetField(profileversion.FieldGap, field.TypeJSON, value)
		_node.Gap = value
	}
	if value, ok := _c.mutation.Mastered(); ok {
		_spec.SetField(profileversion.FieldMastered, field.TypeJSON, value)
		_node.Mastered = value
	}
	if value, ok := _c.mutation.PrimaryGap(); ok {
		_spec.SetField(profileversion.FieldPrimaryGap, field.TypeString, value)
		_node.PrimaryGap = value
	}
	if value, ok := _c.mutation.CascadeLabel(); ok {
		_spec.SetField(profileversion.FieldCascadeLabel, field.TypeString, value)
		_node.CascadeLabel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(profileversion.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(profileversion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profileversion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileVersionCreateBulk is the builder for creating many ProfileVersion entities in bulk.
type ProfileVersionCreateBulk struct {
	config
	err      error
	builders []*ProfileVersionCreate
}

// Save creates the ProfileVersion entities in the database.
func (_c *ProfileVersionCreateBulk) Save(ctx context.Context) ([]*ProfileVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileVersionMutation)
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
func (_c *ProfileVersionCreateBulk) SaveX(ctx context.Context) []*ProfileVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
