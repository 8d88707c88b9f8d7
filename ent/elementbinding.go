// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/propertyset"
)

// ElementBinding is the model entity for the ElementBinding schema.
type ElementBinding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ElementType holds the value of the "element_type" field.
	ElementType string `json:"element_type,omitempty"`
	// ElementID holds the value of the "element_id" field.
	ElementID string `json:"element_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ElementBindingQuery when eager-loading is set.
	Edges                 ElementBindingEdges `json:"edges"`
	property_set_bindings *string
	selectValues          sql.SelectValues
}

// ElementBindingEdges holds the relations/edges for other nodes in the graph.
type ElementBindingEdges struct {
	// PropertySet holds the value of the property_set edge.
	PropertySet *PropertySet `json:"property_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PropertySetOrErr returns the PropertySet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ElementBindingEdges) PropertySetOrErr() (*PropertySet, error) {
	if e.PropertySet != nil {
		return e.PropertySet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: propertyset.Label}
	}
	return nil, &NotLoadedError{edge: "property_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ElementBinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case elementbinding.FieldID, elementbinding.FieldElementType, elementbinding.FieldElementID:
			values[i] = new(sql.NullString)
		case elementbinding.FieldCreatedAt, elementbinding.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case elementbinding.ForeignKeys[0]: // property_set_bindings
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ElementBinding fields.
func (_m *ElementBinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case elementbinding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case elementbinding.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case elementbinding.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case elementbinding.FieldElementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element_type", values[i])
			} else if value.Valid {
				_m.ElementType = value.String
			}
		case elementbinding.FieldElementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element_id", values[i])
			} else if value.Valid {
				_m.ElementID = value.String
			}
		case elementbinding.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_set_bindings", values[i])
			} else if value.Valid {
				_m.property_set_bindings = new(string)
				*_m.property_set_bindings = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ElementBinding.
// This includes values selected through modifiers, order, etc.
func (_m *ElementBinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPropertySet queries the "property_set" edge of the ElementBinding entity.
func (_m *ElementBinding) QueryPropertySet() *PropertySetQuery {
	return NewElementBindingClient(_m.config).QueryPropertySet(_m)
}

// Update returns a builder for updating this ElementBinding.
// Note that you need to call ElementBinding.Unwrap() before calling this method if this ElementBinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ElementBinding) Update() *ElementBindingUpdateOne {
	return NewElementBindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ElementBinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ElementBinding) Unwrap() *ElementBinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ElementBinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ElementBinding) String() string {
	var builder strings.Builder
	builder.WriteString("ElementBinding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("element_type=")
	builder.WriteString(_m.ElementType)
	builder.WriteString(", ")
	builder.WriteString("element_id=")
	builder.WriteString(_m.ElementID)
	builder.WriteByte(')')
	return builder.String()
}

// ElementBindings is a parsable slice of ElementBinding.
type ElementBindings []*ElementBinding
