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
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/predicate"
)

// ContentTypeUpdate is the builder for updating ContentType entities.
type ContentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *ContentTypeMutation
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdate) Where(ps ...predicate.ContentType) *ContentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentTypeUpdate) SetUpdatedAt(v time.Time) *ContentTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ContentTypeUpdate) SetName(v string) *ContentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableName(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentTypeUpdate) SetDescription(v string) *ContentTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableDescription(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentTypeUpdate) ClearDescription() *ContentTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ContentTypeUpdate) SetMimeType(v string) *ContentTypeUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableMimeType(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileExtensions sets the "file_extensions" field.
func (_u *ContentTypeUpdate) SetFileExtensions(v string) *ContentTypeUpdate {
	_u.mutation.SetFileExtensions(v)
	return _u
}

// SetNillableFileExtensions sets the "file_extensions" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableFileExtensions(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetFileExtensions(*v)
	}
	return _u
}

// ClearFileExtensions clears the value of the "file_extensions" field.
func (_u *ContentTypeUpdate) ClearFileExtensions() *ContentTypeUpdate {
	_u.mutation.ClearFileExtensions()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *ContentTypeUpdate) SetHeaders(v []string) *ContentTypeUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// AppendHeaders appends value to the "headers" field.
func (_u *ContentTypeUpdate) AppendHeaders(v []string) *ContentTypeUpdate {
	_u.mutation.AppendHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ContentTypeUpdate) ClearHeaders() *ContentTypeUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetBinary sets the "binary" field.
func (_u *ContentTypeUpdate) SetBinary(v bool) *ContentTypeUpdate {
	_u.mutation.SetBinary(v)
	return _u
}

// SetNillableBinary sets the "binary" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableBinary(v *bool) *ContentTypeUpdate {
	if v != nil {
		_u.SetBinary(*v)
	}
	return _u
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdate) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContentType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(contenttype.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExtensions(); ok {
		_spec.SetField(contenttype.FieldFileExtensions, field.TypeString, value)
	}
	if _u.mutation.FileExtensionsCleared() {
		_spec.ClearField(contenttype.FieldFileExtensions, field.TypeString)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(contenttype.FieldHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHeaders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contenttype.FieldHeaders, value)
		})
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(contenttype.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Binary(); ok {
		_spec.SetField(contenttype.FieldBinary, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentTypeUpdateOne is the builder for updating a single ContentType entity.
type ContentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentTypeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentTypeUpdateOne) SetUpdatedAt(v time.Time) *ContentTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ContentTypeUpdateOne) SetName(v string) *ContentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableName(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentTypeUpdateOne) SetDescription(v string) *ContentTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableDescription(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentTypeUpdateOne) ClearDescription() *ContentTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ContentTypeUpdateOne) SetMimeType(v string) *ContentTypeUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableMimeType(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileExtensions sets the "file_extensions" field.
func (_u *ContentTypeUpdateOne) SetFileExtensions(v string) *ContentTypeUpdateOne {
	_u.mutation.SetFileExtensions(v)
	return _u
}

// SetNillableFileExtensions sets the "file_extensions" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableFileExtensions(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetFileExtensions(*v)
	}
	return _u
}

// ClearFileExtensions clears the value of the "file_extensions" field.
func (_u *ContentTypeUpdateOne) ClearFileExtensions() *ContentTypeUpdateOne {
	_u.mutation.ClearFileExtensions()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *ContentTypeUpdateOne) SetHeaders(v []string) *ContentTypeUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// AppendHeaders appends value to the "headers" field.
func (_u *ContentTypeUpdateOne) AppendHeaders(v []string) *ContentTypeUpdateOne {
	_u.mutation.AppendHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ContentTypeUpdateOne) ClearHeaders() *ContentTypeUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetBinary sets the "binary" field.
func (_u *ContentTypeUpdateOne) SetBinary(v bool) *ContentTypeUpdateOne {
	_u.mutation.SetBinary(v)
	return _u
}

// SetNillableBinary sets the "binary" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableBinary(v *bool) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetBinary(*v)
	}
	return _u
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdateOne) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdateOne) Where(ps ...predicate.ContentType) *ContentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentTypeUpdateOne) Select(field string, fields ...string) *ContentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentType entity.
func (_u *ContentTypeUpdateOne) Save(ctx context.Context) (*ContentType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) SaveX(ctx context.Context) *ContentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContentType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdateOne) sqlSave(ctx context.Context) (_node *ContentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contenttype.FieldID)
		for _, f := range fields {
			if !contenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contenttype.FieldID {
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
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(contenttype.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExtensions(); ok {
		_spec.SetField(contenttype.FieldFileExtensions, field.TypeString, value)
	}
	if _u.mutation.FileExtensionsCleared() {
		_spec.ClearField(contenttype.FieldFileExtensions, field.TypeString)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(contenttype.FieldHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHeaders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contenttype.FieldHeaders, value)
		})
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(contenttype.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Binary(); ok {
		_spec.SetField(contenttype.FieldBinary, field.TypeBool, value)
	}
	_node = &ContentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
