// Code generated by ent, DO NOT EDIT.

package contenttype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDescription, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldMimeType, v))
}

// FileExtensions applies equality check predicate on the "file_extensions" field. It's identical to FileExtensionsEQ.
func FileExtensions(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldFileExtensions, v))
}

// Binary applies equality check predicate on the "binary" field. It's identical to BinaryEQ.
func Binary(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldBinary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldDescription, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldMimeType, v))
}

// FileExtensionsEQ applies the EQ predicate on the "file_extensions" field.
func FileExtensionsEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldFileExtensions, v))
}

// FileExtensionsNEQ applies the NEQ predicate on the "file_extensions" field.
func FileExtensionsNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldFileExtensions, v))
}

// FileExtensionsIn applies the In predicate on the "file_extensions" field.
func FileExtensionsIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldFileExtensions, vs...))
}

// FileExtensionsNotIn applies the NotIn predicate on the "file_extensions" field.
func FileExtensionsNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldFileExtensions, vs...))
}

// FileExtensionsGT applies the GT predicate on the "file_extensions" field.
func FileExtensionsGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldFileExtensions, v))
}

// FileExtensionsGTE applies the GTE predicate on the "file_extensions" field.
func FileExtensionsGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldFileExtensions, v))
}

// FileExtensionsLT applies the LT predicate on the "file_extensions" field.
func FileExtensionsLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldFileExtensions, v))
}

// FileExtensionsLTE applies the LTE predicate on the "file_extensions" field.
func FileExtensionsLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldFileExtensions, v))
}

// FileExtensionsContains applies the Contains predicate on the "file_extensions" field.
func FileExtensionsContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldFileExtensions, v))
}

// FileExtensionsHasPrefix applies the HasPrefix predicate on the "file_extensions" field.
func FileExtensionsHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldFileExtensions, v))
}

// FileExtensionsHasSuffix applies the HasSuffix predicate on the "file_extensions" field.
func FileExtensionsHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldFileExtensions, v))
}

// FileExtensionsIsNil applies the IsNil predicate on the "file_extensions" field.
func FileExtensionsIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldFileExtensions))
}

// FileExtensionsNotNil applies the NotNil predicate on the "file_extensions" field.
func FileExtensionsNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldFileExtensions))
}

// FileExtensionsEqualFold applies the EqualFold predicate on the "file_extensions" field.
func FileExtensionsEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldFileExtensions, v))
}

// FileExtensionsContainsFold applies the ContainsFold predicate on the "file_extensions" field.
func FileExtensionsContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldFileExtensions, v))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldHeaders))
}

// BinaryEQ applies the EQ predicate on the "binary" field.
func BinaryEQ(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldBinary, v))
}

// BinaryNEQ applies the NEQ predicate on the "binary" field.
func BinaryNEQ(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldBinary, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.NotPredicates(p))
}
