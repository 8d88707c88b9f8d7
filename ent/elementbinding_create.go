// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/propertyset"
)

// ElementBindingCreate is the builder for creating a ElementBinding entity.
type ElementBindingCreate struct {
	config
	mutation *ElementBindingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ElementBindingCreate) SetCreatedAt(v time.Time) *ElementBindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ElementBindingCreate) SetNillableCreatedAt(v *time.Time) *ElementBindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ElementBindingCreate) SetUpdatedAt(v time.Time) *ElementBindingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ElementBindingCreate) SetNillableUpdatedAt(v *time.Time) *ElementBindingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetElementType sets the "element_type" field.
func (_c *ElementBindingCreate) SetElementType(v string) *ElementBindingCreate {
	_c.mutation.SetElementType(v)
	return _c
}

// SetElementID sets the "element_id" field.
func (_c *ElementBindingCreate) SetElementID(v string) *ElementBindingCreate {
	_c.mutation.SetElementID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ElementBindingCreate) SetID(v string) *ElementBindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPropertySetID sets the "property_set" edge to the PropertySet entity by ID.
func (_c *ElementBindingCreate) SetPropertySetID(id string) *ElementBindingCreate {
	_c.mutation.SetPropertySetID(id)
	return _c
}

// SetPropertySet sets the "property_set" edge to the PropertySet entity.
func (_c *ElementBindingCreate) SetPropertySet(v *PropertySet) *ElementBindingCreate {
	return _c.SetPropertySetID(v.ID)
}

// Mutation returns the ElementBindingMutation object of the builder.
func (_c *ElementBindingCreate) Mutation() *ElementBindingMutation {
	return _c.mutation
}

// Save creates the ElementBinding in the database.
func (_c *ElementBindingCreate) Save(ctx context.Context) (*ElementBinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ElementBindingCreate) SaveX(ctx context.Context) *ElementBinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElementBindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElementBindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ElementBindingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := elementbinding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := elementbinding.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ElementBindingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ElementBinding.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ElementBinding.updated_at"`)}
	}
	if _, ok := _c.mutation.ElementType(); !ok {
		return &ValidationError{Name: "element_type", err: errors.New(`ent: missing required field "ElementBinding.element_type"`)}
	}
	if v, ok := _c.mutation.ElementType(); ok {
		if err := elementbinding.ElementTypeValidator(v); err != nil {
			return &ValidationError{Name: "element_type", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ElementID(); !ok {
		return &ValidationError{Name: "element_id", err: errors.New(`ent: missing required field "ElementBinding.element_id"`)}
	}
	if v, ok := _c.mutation.ElementID(); ok {
		if err := elementbinding.ElementIDValidator(v); err != nil {
			return &ValidationError{Name: "element_id", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_id": %w`, err)}
		}
	}
	if len(_c.mutation.PropertySetIDs()) == 0 {
		return &ValidationError{Name: "property_set", err: errors.New(`ent: missing required edge "ElementBinding.property_set"`)}
	}
	return nil
}

func (_c *ElementBindingCreate) sqlSave(ctx context.Context) (*ElementBinding, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ElementBinding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ElementBindingCreate) createSpec() (*ElementBinding, *sqlgraph.CreateSpec) {
	var (
		_node = &ElementBinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(elementbinding.Table, sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(elementbinding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(elementbinding.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ElementType(); ok {
		_spec.SetField(elementbinding.FieldElementType, field.TypeString, value)
		_node.ElementType = value
	}
	if value, ok := _c.mutation.ElementID(); ok {
		_spec.SetField(elementbinding.FieldElementID, field.TypeString, value)
		_node.ElementID = value
	}
	if nodes := _c.mutation.PropertySetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   elementbinding.PropertySetTable,
			Columns: []string{elementbinding.PropertySetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(propertyset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.property_set_bindings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ElementBindingCreateBulk is the builder for creating many ElementBinding entities in bulk.
type ElementBindingCreateBulk struct {
	config
	err      error
	builders []*ElementBindingCreate
}

// Save creates the ElementBinding entities in the database.
func (_c *ElementBindingCreateBulk) Save(ctx context.Context) ([]*ElementBinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ElementBinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ElementBindingMutation)
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
func (_c *ElementBindingCreateBulk) SaveX(ctx context.Context) []*ElementBinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElementBindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElementBindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
