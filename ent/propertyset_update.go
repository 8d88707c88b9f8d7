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
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/propertyset"
)

// PropertySetUpdate is the builder for updating PropertySet entities.
type PropertySetUpdate struct {
	config
	hooks    []Hook
	mutation *PropertySetMutation
}

// Where appends a list predicates to the PropertySetUpdate builder.
func (_u *PropertySetUpdate) Where(ps ...predicate.PropertySet) *PropertySetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertySetUpdate) SetUpdatedAt(v time.Time) *PropertySetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PropertySetUpdate) SetName(v string) *PropertySetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PropertySetUpdate) SetNillableName(v *string) *PropertySetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PropertySetUpdate) SetDescription(v string) *PropertySetUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PropertySetUpdate) SetNillableDescription(v *string) *PropertySetUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PropertySetUpdate) ClearDescription() *PropertySetUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *PropertySetUpdate) SetProperties(v map[string]interface{}) *PropertySetUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *PropertySetUpdate) ClearProperties() *PropertySetUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (_u *PropertySetUpdate) SetCategoryID(id string) *PropertySetUpdate {
	_u.mutation.SetCategoryID(id)
	return _u
}

// SetNillableCategoryID sets the "category" edge to the Category entity by ID if the given value is not nil.
func (_u *PropertySetUpdate) SetNillableCategoryID(id *string) *PropertySetUpdate {
	if id != nil {
		_u = _u.SetCategoryID(*id)
	}
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *PropertySetUpdate) SetCategory(v *Category) *PropertySetUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddBindingIDs adds the "bindings" edge to the ElementBinding entity by IDs.
func (_u *PropertySetUpdate) AddBindingIDs(ids ...string) *PropertySetUpdate {
	_u.mutation.AddBindingIDs(ids...)
	return _u
}

// AddBindings adds the "bindings" edges to the ElementBinding entity.
func (_u *PropertySetUpdate) AddBindings(v ...*ElementBinding) *PropertySetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBindingIDs(ids...)
}

// Mutation returns the PropertySetMutation object of the builder.
func (_u *PropertySetUpdate) Mutation() *PropertySetMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *PropertySetUpdate) ClearCategory() *PropertySetUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearBindings clears all "bindings" edges to the ElementBinding entity.
func (_u *PropertySetUpdate) ClearBindings() *PropertySetUpdate {
	_u.mutation.ClearBindings()
	return _u
}

// RemoveBindingIDs removes the "bindings" edge to ElementBinding entities by IDs.
func (_u *PropertySetUpdate) RemoveBindingIDs(ids ...string) *PropertySetUpdate {
	_u.mutation.RemoveBindingIDs(ids...)
	return _u
}

// RemoveBindings removes "bindings" edges to ElementBinding entities.
func (_u *PropertySetUpdate) RemoveBindings(v ...*ElementBinding) *PropertySetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBindingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertySetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertySetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertySetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertySetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertySetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertySetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := propertyset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PropertySet.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertySetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyset.Table, propertyset.Columns, sqlgraph.NewFieldSpec(propertyset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(propertyset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(propertyset.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(propertyset.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(propertyset.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(propertyset.FieldProperties, field.TypeJSON)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyset.CategoryTable,
			Columns: []string{propertyset.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyset.CategoryTable,
			Columns: []string{propertyset.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BindingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBindingsIDs(); len(nodes) > 0 && !_u.mutation.BindingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertySetUpdateOne is the builder for updating a single PropertySet entity.
type PropertySetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertySetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertySetUpdateOne) SetUpdatedAt(v time.Time) *PropertySetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PropertySetUpdateOne) SetName(v string) *PropertySetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PropertySetUpdateOne) SetNillableName(v *string) *PropertySetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PropertySetUpdateOne) SetDescription(v string) *PropertySetUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PropertySetUpdateOne) SetNillableDescription(v *string) *PropertySetUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PropertySetUpdateOne) ClearDescription() *PropertySetUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *PropertySetUpdateOne) SetProperties(v map[string]interface{}) *PropertySetUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *PropertySetUpdateOne) ClearProperties() *PropertySetUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (_u *PropertySetUpdateOne) SetCategoryID(id string) *PropertySetUpdateOne {
	_u.mutation.SetCategoryID(id)
	return _u
}

// SetNillableCategoryID sets the "category" edge to the Category entity by ID if the given value is not nil.
func (_u *PropertySetUpdateOne) SetNillableCategoryID(id *string) *PropertySetUpdateOne {
	if id != nil {
		_u = _u.SetCategoryID(*id)
	}
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *PropertySetUpdateOne) SetCategory(v *Category) *PropertySetUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddBindingIDs adds the "bindings" edge to the ElementBinding entity by IDs.
func (_u *PropertySetUpdateOne) AddBindingIDs(ids ...string) *PropertySetUpdateOne {
	_u.mutation.AddBindingIDs(ids...)
	return _u
}

// AddBindings adds the "bindings" edges to the ElementBinding entity.
func (_u *PropertySetUpdateOne) AddBindings(v ...*ElementBinding) *PropertySetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBindingIDs(ids...)
}

// Mutation returns the PropertySetMutation object of the builder.
func (_u *PropertySetUpdateOne) Mutation() *PropertySetMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *PropertySetUpdateOne) ClearCategory() *PropertySetUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearBindings clears all "bindings" edges to the ElementBinding entity.
func (_u *PropertySetUpdateOne) ClearBindings() *PropertySetUpdateOne {
	_u.mutation.ClearBindings()
	return _u
}

// RemoveBindingIDs removes the "bindings" edge to ElementBinding entities by IDs.
func (_u *PropertySetUpdateOne) RemoveBindingIDs(ids ...string) *PropertySetUpdateOne {
	_u.mutation.RemoveBindingIDs(ids...)
	return _u
}

// RemoveBindings removes "bindings" edges to ElementBinding entities.
func (_u *PropertySetUpdateOne) RemoveBindings(v ...*ElementBinding) *PropertySetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBindingIDs(ids...)
}

// Where appends a list predicates to the PropertySetUpdate builder.
func (_u *PropertySetUpdateOne) Where(ps ...predicate.PropertySet) *PropertySetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertySetUpdateOne) Select(field string, fields ...string) *PropertySetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PropertySet entity.
func (_u *PropertySetUpdateOne) Save(ctx context.Context) (*PropertySet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertySetUpdateOne) SaveX(ctx context.Context) *PropertySet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertySetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertySetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertySetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertySetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := propertyset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PropertySet.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertySetUpdateOne) sqlSave(ctx context.Context) (_node *PropertySet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyset.Table, propertyset.Columns, sqlgraph.NewFieldSpec(propertyset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PropertySet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, propertyset.FieldID)
		for _, f := range fields {
			if !propertyset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != propertyset.FieldID {
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
		_spec.SetField(propertyset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(propertyset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(propertyset.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(propertyset.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(propertyset.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(propertyset.FieldProperties, field.TypeJSON)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyset.CategoryTable,
			Columns: []string{propertyset.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyset.CategoryTable,
			Columns: []string{propertyset.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BindingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBindingsIDs(); len(nodes) > 0 && !_u.mutation.BindingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   propertyset.BindingsTable,
			Columns: []string{propertyset.BindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(elementbinding.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PropertySet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
