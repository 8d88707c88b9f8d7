// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/propertyset"
)

// ElementBindingUpdate is the builder for updating ElementBinding entities.
type ElementBindingUpdate struct {
	config
	hooks    []Hook
	mutation *ElementBindingMutation
}

// Where appends a list predicates to the ElementBindingUpdate builder.
func (_u *ElementBindingUpdate) Where(ps ...predicate.ElementBinding) *ElementBindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ElementBindingUpdate) SetUpdatedAt(v time.Time) *ElementBindingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetElementType sets the "element_type" field.
func (_u *ElementBindingUpdate) SetElementType(v string) *ElementBindingUpdate {
	_u.mutation.SetElementType(v)
	return _u
}

// SetNillableElementType sets the "element_type" field if the given value is not nil.
func (_u *ElementBindingUpdate) SetNillableElementType(v *string) *ElementBindingUpdate {
	if v != nil {
		_u.SetElementType(*v)
	}
	return _u
}

// SetElementID sets the "element_id" field.
func (_u *ElementBindingUpdate) SetElementID(v string) *ElementBindingUpdate {
	_u.mutation.SetElementID(v)
	return _u
}

// SetNillableElementID sets the "element_id" field if the given value is not nil.
func (_u *ElementBindingUpdate) SetNillableElementID(v *string) *ElementBindingUpdate {
	if v != nil {
		_u.SetElementID(*v)
	}
	return _u
}

// SetPropertySetID sets the "property_set" edge to the PropertySet entity by ID.
func (_u *ElementBindingUpdate) SetPropertySetID(id string) *ElementBindingUpdate {
	_u.mutation.SetPropertySetID(id)
	return _u
}

// SetPropertySet sets the "property_set" edge to the PropertySet entity.
func (_u *ElementBindingUpdate) SetPropertySet(v *PropertySet) *ElementBindingUpdate {
	return _u.SetPropertySetID(v.ID)
}

// Mutation returns the ElementBindingMutation object of the builder.
func (_u *ElementBindingUpdate) Mutation() *ElementBindingMutation {
	return _u.mutation
}

// ClearPropertySet clears the "property_set" edge to the PropertySet entity.
func (_u *ElementBindingUpdate) ClearPropertySet() *ElementBindingUpdate {
	_u.mutation.ClearPropertySet()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ElementBindingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElementBindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ElementBindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElementBindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ElementBindingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := elementbinding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElementBindingUpdate) check() error {
	if v, ok := _u.mutation.ElementType(); ok {
		if err := elementbinding.ElementTypeValidator(v); err != nil {
			return &ValidationError{Name: "element_type", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElementID(); ok {
		if err := elementbinding.ElementIDValidator(v); err != nil {
			return &ValidationError{Name: "element_id", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_id": %w`, err)}
		}
	}
	if _u.mutation.PropertySetCleared() && len(_u.mutation.PropertySetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ElementBinding.property_set"`)
	}
	return nil
}

func (_u *ElementBindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(elementbinding.Table, elementbinding.Columns, sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(elementbinding.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ElementType(); ok {
		_spec.SetField(elementbinding.FieldElementType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElementID(); ok {
		_spec.SetField(elementbinding.FieldElementID, field.TypeString, value)
	}
	if _u.mutation.PropertySetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertySetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{elementbinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ElementBindingUpdateOne is the builder for updating a single ElementBinding entity.
type ElementBindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ElementBindingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ElementBindingUpdateOne) SetUpdatedAt(v time.Time) *ElementBindingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetElementType sets the "element_type" field.
func (_u *ElementBindingUpdateOne) SetElementType(v string) *ElementBindingUpdateOne {
	_u.mutation.SetElementType(v)
	return _u
}

// SetNillableElementType sets the "element_type" field if the given value is not nil.
func (_u *ElementBindingUpdateOne) SetNillableElementType(v *string) *ElementBindingUpdateOne {
	if v != nil {
		_u.SetElementType(*v)
	}
	return _u
}

// SetElementID sets the "element_id" field.
func (_u *ElementBindingUpdateOne) SetElementID(v string) *ElementBindingUpdateOne {
	_u.mutation.SetElementID(v)
	return _u
}

// SetNillableElementID sets the "element_id" field if the given value is not nil.
func (_u *ElementBindingUpdateOne) SetNillableElementID(v *string) *ElementBindingUpdateOne {
	if v != nil {
		_u.SetElementID(*v)
	}
	return _u
}

// SetPropertySetID sets the "property_set" edge to the PropertySet entity by ID.
func (_u *ElementBindingUpdateOne) SetPropertySetID(id string) *ElementBindingUpdateOne {
	_u.mutation.SetPropertySetID(id)
	return _u
}

// SetPropertySet sets the "property_set" edge to the PropertySet entity.
func (_u *ElementBindingUpdateOne) SetPropertySet(v *PropertySet) *ElementBindingUpdateOne {
	return _u.SetPropertySetID(v.ID)
}

// Mutation returns the ElementBindingMutation object of the builder.
func (_u *ElementBindingUpdateOne) Mutation() *ElementBindingMutation {
	return _u.mutation
}

// ClearPropertySet clears the "property_set" edge to the PropertySet entity.
func (_u *ElementBindingUpdateOne) ClearPropertySet() *ElementBindingUpdateOne {
	_u.mutation.ClearPropertySet()
	return _u
}

// Where appends a list predicates to the ElementBindingUpdate builder.
func (_u *ElementBindingUpdateOne) Where(ps ...predicate.ElementBinding) *ElementBindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ElementBindingUpdateOne) Select(field string, fields ...string) *ElementBindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ElementBinding entity.
func (_u *ElementBindingUpdateOne) Save(ctx context.Context) (*ElementBinding, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElementBindingUpdateOne) SaveX(ctx context.Context) *ElementBinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ElementBindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElementBindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ElementBindingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := elementbinding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElementBindingUpdateOne) check() error {
	if v, ok := _u.mutation.ElementType(); ok {
		if err := elementbinding.ElementTypeValidator(v); err != nil {
			return &ValidationError{Name: "element_type", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElementID(); ok {
		if err := elementbinding.ElementIDValidator(v); err != nil {
			return &ValidationError{Name: "element_id", err: fmt.Errorf(`ent: validator failed for field "ElementBinding.element_id": %w`, err)}
		}
	}
	if _u.mutation.PropertySetCleared() && len(_u.mutation.PropertySetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ElementBinding.property_set"`)
	}
	return nil
}

func (_u *ElementBindingUpdateOne) sqlSave(ctx context.Context) (_node *ElementBinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(elementbinding.Table, elementbinding.Columns, sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ElementBinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, elementbinding.FieldID)
		for _, f := range fields {
			if !elementbinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != elementbinding.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(elementbinding.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ElementType(); ok {
		_spec.SetField(elementbinding.FieldElementType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElementID(); ok {
		_spec.SetField(elementbinding.FieldElementID, field.TypeString, value)
	}
	if _u.mutation.PropertySetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertySetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ElementBinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{elementbinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
