// Code generated by ent, DO NOT EDIT.

package elementbinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the elementbinding type in the database.
	Label = "element_binding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldElementType holds the string denoting the element_type field in the database.
	FieldElementType = "element_type"
	// FieldElementID holds the string denoting the element_id field in the database.
	FieldElementID = "element_id"
	// EdgePropertySet holds the string denoting the property_set edge name in mutations.
	EdgePropertySet = "property_set"
	// Table holds the table name of the elementbinding in the database.
	Table = "element_bindings"
	// PropertySetTable is the table that holds the property_set relation/edge.
	PropertySetTable = "element_bindings"
	// PropertySetInverseTable is the table name for the PropertySet entity.
	// It exists in this package in order to avoid circular dependency with the "propertyset" package.
	PropertySetInverseTable = "property_sets"
	// PropertySetColumn is the table column denoting the property_set relation/edge.
	PropertySetColumn = "property_set_bindings"
)

// Columns holds all SQL columns for elementbinding fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldElementType,
	FieldElementID,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "element_bindings"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"property_set_bindings",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ElementTypeValidator is a validator for the "element_type" field. It is called by the builders before save.
	ElementTypeValidator func(string) error
	// ElementIDValidator is a validator for the "element_id" field. It is called by the builders before save.
	ElementIDValidator func(string) error
)

// OrderOption defines the ordering options for the ElementBinding queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByElementType orders the results by the element_type field.
func ByElementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElementType, opts...).ToFunc()
}

// ByElementID orders the results by the element_id field.
func ByElementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElementID, opts...).ToFunc()
}

// ByPropertySetField orders the results by property_set field.
func ByPropertySetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPropertySetStep(), sql.OrderByField(field, opts...))
	}
}
func newPropertySetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PropertySetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PropertySetTable, PropertySetColumn),
	)
}
