// Code generated by ent, DO NOT EDIT.

package elementbinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldUpdatedAt, v))
}

// ElementType applies equality check predicate on the "element_type" field. It's identical to ElementTypeEQ.
func ElementType(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldElementType, v))
}

// ElementID applies equality check predicate on the "element_id" field. It's identical to ElementIDEQ.
func ElementID(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldElementID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLTE(FieldUpdatedAt, v))
}

// ElementTypeEQ applies the EQ predicate on the "element_type" field.
func ElementTypeEQ(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldElementType, v))
}

// ElementTypeNEQ applies the NEQ predicate on the "element_type" field.
func ElementTypeNEQ(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNEQ(FieldElementType, v))
}

// ElementTypeIn applies the In predicate on the "element_type" field.
func ElementTypeIn(vs ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldIn(FieldElementType, vs...))
}

// ElementTypeNotIn applies the NotIn predicate on the "element_type" field.
func ElementTypeNotIn(vs ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNotIn(FieldElementType, vs...))
}

// ElementTypeGT applies the GT predicate on the "element_type" field.
func ElementTypeGT(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGT(FieldElementType, v))
}

// ElementTypeGTE applies the GTE predicate on the "element_type" field.
func ElementTypeGTE(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGTE(FieldElementType, v))
}

// ElementTypeLT applies the LT predicate on the "element_type" field.
func ElementTypeLT(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLT(FieldElementType, v))
}

// ElementTypeLTE applies the LTE predicate on the "element_type" field.
func ElementTypeLTE(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLTE(FieldElementType, v))
}

// ElementTypeContains applies the Contains predicate on the "element_type" field.
func ElementTypeContains(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldContains(FieldElementType, v))
}

// ElementTypeHasPrefix applies the HasPrefix predicate on the "element_type" field.
func ElementTypeHasPrefix(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldHasPrefix(FieldElementType, v))
}

// ElementTypeHasSuffix applies the HasSuffix predicate on the "element_type" field.
func ElementTypeHasSuffix(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldHasSuffix(FieldElementType, v))
}

// ElementTypeEqualFold applies the EqualFold predicate on the "element_type" field.
func ElementTypeEqualFold(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEqualFold(FieldElementType, v))
}

// ElementTypeContainsFold applies the ContainsFold predicate on the "element_type" field.
func ElementTypeContainsFold(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldContainsFold(FieldElementType, v))
}

// ElementIDEQ applies the EQ predicate on the "element_id" field.
func ElementIDEQ(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEQ(FieldElementID, v))
}

// ElementIDNEQ applies the NEQ predicate on the "element_id" field.
func ElementIDNEQ(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNEQ(FieldElementID, v))
}

// ElementIDIn applies the In predicate on the "element_id" field.
func ElementIDIn(vs ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldIn(FieldElementID, vs...))
}

// ElementIDNotIn applies the NotIn predicate on the "element_id" field.
func ElementIDNotIn(vs ...string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldNotIn(FieldElementID, vs...))
}

// ElementIDGT applies the GT predicate on the "element_id" field.
func ElementIDGT(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGT(FieldElementID, v))
}

// ElementIDGTE applies the GTE predicate on the "element_id" field.
func ElementIDGTE(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldGTE(FieldElementID, v))
}

// ElementIDLT applies the LT predicate on the "element_id" field.
func ElementIDLT(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLT(FieldElementID, v))
}

// ElementIDLTE applies the LTE predicate on the "element_id" field.
func ElementIDLTE(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldLTE(FieldElementID, v))
}

// ElementIDContains applies the Contains predicate on the "element_id" field.
func ElementIDContains(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldContains(FieldElementID, v))
}

// ElementIDHasPrefix applies the HasPrefix predicate on the "element_id" field.
func ElementIDHasPrefix(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldHasPrefix(FieldElementID, v))
}

// ElementIDHasSuffix applies the HasSuffix predicate on the "element_id" field.
func ElementIDHasSuffix(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldHasSuffix(FieldElementID, v))
}

// ElementIDEqualFold applies the EqualFold predicate on the "element_id" field.
func ElementIDEqualFold(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldEqualFold(FieldElementID, v))
}

// ElementIDContainsFold applies the ContainsFold predicate on the "element_id" field.
func ElementIDContainsFold(v string) predicate.ElementBinding {
	return predicate.ElementBinding(sql.FieldContainsFold(FieldElementID, v))
}

// HasPropertySet applies the HasEdge predicate on the "property_set" edge.
func HasPropertySet() predicate.ElementBinding {
	return predicate.ElementBinding(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PropertySetTable, PropertySetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPropertySetWith applies the HasEdge predicate on the "property_set" edge with a given conditions (other predicates).
func HasPropertySetWith(preds ...predicate.PropertySet) predicate.ElementBinding {
	return predicate.ElementBinding(func(s *sql.Selector) {
		step := newPropertySetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ElementBinding) predicate.ElementBinding {
	return predicate.ElementBinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ElementBinding) predicate.ElementBinding {
	return predicate.ElementBinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ElementBinding) predicate.ElementBinding {
	return predicate.ElementBinding(sql.NotPredicates(p))
}
