// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"lattice-cms.io/lattice/ent/contenttype"
)

// ContentTypeCreate is the builder for creating a ContentType entity.
type ContentTypeCreate struct {
	config
	mutation *ContentTypeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentTypeCreate) SetCreatedAt(v time.Time) *ContentTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableCreatedAt(v *time.Time) *ContentTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentTypeCreate) SetUpdatedAt(v time.Time) *ContentTypeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableUpdatedAt(v *time.Time) *ContentTypeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ContentTypeCreate) SetName(v string) *ContentTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ContentTypeCreate) SetDescription(v string) *ContentTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableDescription(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ContentTypeCreate) SetMimeType(v string) *ContentTypeCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableMimeType(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetFileExtensions sets the "file_extensions" field.
func (_c *ContentTypeCreate) SetFileExtensions(v string) *ContentTypeCreate {
	_c.mutation.SetFileExtensions(v)
	return _c
}

// SetNillableFileExtensions sets the "file_extensions" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableFileExtensions(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetFileExtensions(*v)
	}
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *ContentTypeCreate) SetHeaders(v []string) *ContentTypeCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetBinary sets the "binary" field.
func (_c *ContentTypeCreate) SetBinary(v bool) *ContentTypeCreate {
	_c.mutation.SetBinary(v)
	return _c
}

// SetNillableBinary sets the "binary" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableBinary(v *bool) *ContentTypeCreate {
	if v != nil {
		_c.SetBinary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentTypeCreate) SetID(v string) *ContentTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_c *ContentTypeCreate) Mutation() *ContentTypeMutation {
	return _c.mutation
}

// Save creates the ContentType in the database.
func (_c *ContentTypeCreate) Save(ctx context.Context) (*ContentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentTypeCreate) SaveX(ctx context.Context) *ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentTypeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contenttype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contenttype.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		v := contenttype.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.Binary(); !ok {
		v := contenttype.DefaultBinary
		_c.mutation.SetBinary(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentTypeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentType.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContentType.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ContentType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := contenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContentType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "ContentType.mime_type"`)}
	}
	if _, ok := _c.mutation.Binary(); !ok {
		return &ValidationError{Name: "binary", err: errors.New(`ent: missing required field "ContentType.binary"`)}
	}
	return nil
}

func (_c *ContentTypeCreate) sqlSave(ctx context.Context) (*ContentType, error) {
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
			return nil, fmt.Errorf("unexpected ContentType.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentTypeCreate) createSpec() (*ContentType, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contenttype.Table, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contenttype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(contenttype.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileExtensions(); ok {
		_spec.SetField(contenttype.FieldFileExtensions, field.TypeString, value)
		_node.FileExtensions = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(contenttype.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Binary(); ok {
		_spec.SetField(contenttype.FieldBinary, field.TypeBool, value)
		_node.Binary = value
	}
	return _node, _spec
}

// ContentTypeCreateBulk is the builder for creating many ContentType entities in bulk.
type ContentTypeCreateBulk struct {
	config
	err      error
	builders []*ContentTypeCreate
}

// Save creates the ContentType entities in the database.
func (_c *ContentTypeCreateBulk) Save(ctx context.Context) ([]*ContentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentTypeMutation)
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
func (_c *ContentTypeCreateBulk) SaveX(ctx context.Context) []*ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
