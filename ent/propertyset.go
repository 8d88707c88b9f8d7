// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/propertyset"
)

// PropertySet is the model entity for the PropertySet schema.
type PropertySet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Properties holds the value of the "properties" field.
	Properties map[string]interface{} `json:"properties,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PropertySetQuery when eager-loading is set.
	Edges                  PropertySetEdges `json:"edges"`
	category_property_sets *string
	selectValues           sql.SelectValues
}

// PropertySetEdges holds the relations/edges for other nodes in the graph.
type PropertySetEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// Bindings holds the value of the bindings edge.
	Bindings []*ElementBinding `json:"bindings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PropertySetEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// BindingsOrErr returns the Bindings value or an error if the edge
// was not loaded in eager-loading.
func (e PropertySetEdges) BindingsOrErr() ([]*ElementBinding, error) {
	if e.loadedTypes[1] {
		return e.Bindings, nil
	}
	return nil, &NotLoadedError{edge: "bindings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PropertySet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case propertyset.FieldProperties:
			values[i] = new([]byte)
		case propertyset.FieldID, propertyset.FieldName, propertyset.FieldDescription:
			values[i] = new(sql.NullString)
		case propertyset.FieldCreatedAt, propertyset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case propertyset.ForeignKeys[0]: // category_property_sets
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PropertySet fields.
func (_m *PropertySet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case propertyset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case propertyset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case propertyset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case propertyset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case propertyset.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case propertyset.FieldProperties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field properties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Properties); err != nil {
					return fmt.Errorf("unmarshal field properties: %w", err)
				}
			}
		case propertyset.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_property_sets", values[i])
			} else if value.Valid {
				_m.category_property_sets = new(string)
				*_m.category_property_sets = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PropertySet.
// This includes values selected through modifiers, order, etc.
func (_m *PropertySet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the PropertySet entity.
func (_m *PropertySet) QueryCategory() *CategoryQuery {
	return NewPropertySetClient(_m.config).QueryCategory(_m)
}

// QueryBindings queries the "bindings" edge of the PropertySet entity.
func (_m *PropertySet) QueryBindings() *ElementBindingQuery {
	return NewPropertySetClient(_m.config).QueryBindings(_m)
}

// Update returns a builder for updating this PropertySet.
// Note that you need to call PropertySet.Unwrap() before calling this method if this PropertySet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PropertySet) Update() *PropertySetUpdateOne {
	return NewPropertySetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PropertySet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PropertySet) Unwrap() *PropertySet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PropertySet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PropertySet) String() string {
	var builder strings.Builder
	builder.WriteString("PropertySet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("properties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Properties))
	builder.WriteByte(')')
	return builder.String()
}

// PropertySets is a parsable slice of PropertySet.
type PropertySets []*PropertySet
