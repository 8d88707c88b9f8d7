// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// ContentType is the predicate function for contenttype builders.
type ContentType func(*sql.Selector)

// ElementBinding is the predicate function for elementbinding builders.
type ElementBinding func(*sql.Selector)

// PropertySet is the predicate function for propertyset builders.
type PropertySet func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
